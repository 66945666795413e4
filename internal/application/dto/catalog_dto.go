package dto

import "github.com/souhailwaf/wareho/internal/domain/entity"

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	SKU         string `json:"sku"`
	Barcode     string `json:"barcode,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UnitMeasure string `json:"unit_measure,omitempty"`
}

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Code             string `json:"code"`
	Name             string `json:"name,omitempty"`
	ParentLocationID string `json:"parent_location_id,omitempty"`
	IsPickable       *bool  `json:"is_pickable,omitempty"`   // default true
	IsReceivable     *bool  `json:"is_receivable,omitempty"` // default true
}

// ItemResponse artículo en respuestas HTTP.
type ItemResponse struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Barcode     string `json:"barcode,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UnitMeasure string `json:"unit_measure"`
	IsActive    bool   `json:"is_active"`
}

// ToItemResponse mapea la entidad al DTO de respuesta.
func ToItemResponse(i *entity.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		SKU:         i.SKU,
		Barcode:     i.Barcode,
		Name:        i.Name,
		Description: i.Description,
		UnitMeasure: i.UnitMeasure,
		IsActive:    i.IsActive,
	}
}

// LocationResponse ubicación en respuestas HTTP.
type LocationResponse struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	Name             string `json:"name,omitempty"`
	ParentLocationID string `json:"parent_location_id,omitempty"`
	IsPickable       bool   `json:"is_pickable"`
	IsReceivable     bool   `json:"is_receivable"`
	IsActive         bool   `json:"is_active"`
}

// ToLocationResponse mapea la entidad al DTO de respuesta.
func ToLocationResponse(l *entity.Location) LocationResponse {
	return LocationResponse{
		ID:               l.ID,
		Code:             l.Code,
		Name:             l.Name,
		ParentLocationID: l.ParentLocationID,
		IsPickable:       l.IsPickable,
		IsReceivable:     l.IsReceivable,
		IsActive:         l.IsActive,
	}
}
