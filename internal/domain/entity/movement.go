package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeRECEIVE = "RECEIVE" // entrada a bodega (muelle de recepción)
	MovementTypePUTAWAY = "PUTAWAY" // reubicación interna entre ubicaciones
	MovementTypePICK    = "PICK"    // salida para despacho de una orden
	MovementTypeADJUST  = "ADJUST"  // corrección por conteo físico
)

// Movement es el asiento inmutable del libro de movimientos: un hecho de
// inventario registrado exactamente una vez por operación exitosa. El libro es
// append-only; nunca se actualiza ni se borra un asiento.
//
// Quantity es la magnitud movida (positiva) salvo en ADJUST, donde registra el
// delta firmado (nueva cantidad menos anterior).
type Movement struct {
	ID             string
	Type           string // RECEIVE | PUTAWAY | PICK | ADJUST
	ItemID         string
	FromLocationID string // vacío en RECEIVE y ADJUST
	ToLocationID   string // vacío en PICK; en ADJUST es la ubicación ajustada
	Quantity       decimal.Decimal
	LotID          string
	SerialNumber   string
	Reference      string // orden, recepción o nota que originó el movimiento
	Notes          string // en ADJUST lleva el motivo obligatorio
	Date           time.Time
	CreatedAt      time.Time
	CreatedBy      string // UserID
}

// EntityID implementa IdentityComparable.
func (m *Movement) EntityID() string { return m.ID }
