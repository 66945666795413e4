package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/souhailwaf/wareho/internal/domain/entity"
)

// ReceiveRequest body para POST /api/movements/receive.
type ReceiveRequest struct {
	ItemID       string          `json:"item_id"`
	LocationID   string          `json:"location_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	LotID        string          `json:"lot_id,omitempty"`
	SerialNumber string          `json:"serial_number,omitempty"`
	Reference    string          `json:"reference,omitempty"`
}

// PutawayRequest body para POST /api/movements/putaway.
type PutawayRequest struct {
	ItemID         string          `json:"item_id"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	LotID          string          `json:"lot_id,omitempty"`
	SerialNumber   string          `json:"serial_number,omitempty"`
}

// PickRequest body para POST /api/movements/pick.
type PickRequest struct {
	ItemID       string          `json:"item_id"`
	LocationID   string          `json:"location_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	LotID        string          `json:"lot_id,omitempty"`
	SerialNumber string          `json:"serial_number,omitempty"`
	OrderNumber  string          `json:"order_number,omitempty"`
}

// AdjustRequest body para POST /api/movements/adjust.
type AdjustRequest struct {
	ItemID       string          `json:"item_id"`
	LocationID   string          `json:"location_id"`
	NewQuantity  decimal.Decimal `json:"new_quantity"`
	LotID        string          `json:"lot_id,omitempty"`
	SerialNumber string          `json:"serial_number,omitempty"`
	Reason       string          `json:"reason"`
}

// MovementResponse representa un asiento del libro en respuestas HTTP.
type MovementResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	ItemID         string          `json:"item_id"`
	FromLocationID string          `json:"from_location_id,omitempty"`
	ToLocationID   string          `json:"to_location_id,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	LotID          string          `json:"lot_id,omitempty"`
	SerialNumber   string          `json:"serial_number,omitempty"`
	Reference      string          `json:"reference,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Date           time.Time       `json:"date"`
	CreatedBy      string          `json:"created_by"`
}

// ToMovementResponse mapea la entidad al DTO de respuesta.
func ToMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		Type:           m.Type,
		ItemID:         m.ItemID,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		Quantity:       m.Quantity,
		LotID:          m.LotID,
		SerialNumber:   m.SerialNumber,
		Reference:      m.Reference,
		Notes:          m.Notes,
		Date:           m.Date,
		CreatedBy:      m.CreatedBy,
	}
}

// StockLevelResponse nivel de stock de una fila en respuestas HTTP.
type StockLevelResponse struct {
	ItemID       string          `json:"item_id"`
	LocationID   string          `json:"location_id"`
	LotID        string          `json:"lot_id,omitempty"`
	SerialNumber string          `json:"serial_number,omitempty"`
	Available    decimal.Decimal `json:"quantity_available"`
	Reserved     decimal.Decimal `json:"quantity_reserved"`
	Net          decimal.Decimal `json:"available_quantity"` // en mano menos reservado
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToStockLevelResponse mapea la fila de stock al DTO de respuesta.
func ToStockLevelResponse(s *entity.Stock) StockLevelResponse {
	return StockLevelResponse{
		ItemID:       s.Key.ItemID,
		LocationID:   s.Key.LocationID,
		LotID:        s.Key.LotID,
		SerialNumber: s.Key.SerialNumber,
		Available:    s.QuantityAvailable.Decimal(),
		Reserved:     s.QuantityReserved.Decimal(),
		Net:          s.AvailableQuantity().Decimal(),
		UpdatedAt:    s.UpdatedAt,
	}
}
