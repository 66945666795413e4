package entity

import "time"

// Item representa un artículo o SKU almacenable. El core de movimientos solo
// lee ID, SKU e IsActive; el resto son atributos de catálogo.
type Item struct {
	ID          string
	SKU         string // código único
	Barcode     string
	Name        string
	Description string
	UnitMeasure string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EntityID implementa IdentityComparable.
func (i *Item) EntityID() string { return i.ID }
