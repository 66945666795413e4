package entity

import "time"

// Location representa una ubicación física de bodega (muelle, estantería,
// posición de picking). La jerarquía padre/hijo se modela solo por
// ParentLocationID y se resuelve vía repositorio, nunca con punteros en
// memoria, para evitar ciclos de referencia.
type Location struct {
	ID               string
	Code             string // código único, ej. Z001-A3
	Name             string
	ParentLocationID string // vacío = ubicación raíz
	IsPickable       bool
	IsReceivable     bool
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EntityID implementa IdentityComparable.
func (l *Location) EntityID() string { return l.ID }
