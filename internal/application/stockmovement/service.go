// Package stockmovement implementa el motor de movimientos de inventario:
// el servicio que orquesta transiciones validadas y atómicas entre filas de
// stock y el libro append-only de movimientos.
package stockmovement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/souhailwaf/wareho/internal/domain"
	"github.com/souhailwaf/wareho/internal/domain/entity"
	"github.com/souhailwaf/wareho/internal/domain/quantity"
)

// ReceiveInput entrada de bodega: qty unidades de un artículo llegan a una
// ubicación receivable.
type ReceiveInput struct {
	ItemID       string
	LocationID   string
	Quantity     quantity.Quantity
	LotID        string
	SerialNumber string
	Reference    string // recepción, orden de compra
	UserID       string
}

// PutawayInput reubicación interna: mueve qty disponibles de una ubicación a otra.
type PutawayInput struct {
	ItemID         string
	FromLocationID string
	ToLocationID   string
	Quantity       quantity.Quantity
	LotID          string
	SerialNumber   string
	UserID         string
}

// PickInput salida para despacho: qty disponibles salen de una ubicación pickable.
type PickInput struct {
	ItemID       string
	LocationID   string
	Quantity     quantity.Quantity
	LotID        string
	SerialNumber string
	OrderNumber  string // se registra como Reference del movimiento
	UserID       string
}

// AdjustInput corrección por conteo: fija la cantidad en mano de la fila.
type AdjustInput struct {
	ItemID       string
	LocationID   string
	NewQuantity  quantity.Quantity
	LotID        string
	SerialNumber string
	Reason       string // obligatorio; se registra en Notes
	UserID       string
}

// Service orquesta los cuatro tipos de movimiento contra el agregado Stock y
// el libro de movimientos. Cada operación valida precondiciones, muta una o
// dos filas de stock y anota exactamente un movimiento; si una precondición
// falla no queda ningún efecto parcial.
//
// El servicio NO abre transacciones: recibe Repos ya atados a la transacción
// del caller (TxRunner), que confirma o revierte la secuencia completa.
type Service struct{}

// NewService construye el servicio (sin estado).
func NewService() *Service { return &Service{} }

// Receive registra la entrada de qty unidades a una ubicación receivable.
// Crea la fila de stock si es la primera unidad del artículo en la ubicación.
func (s *Service) Receive(ctx context.Context, r Repos, in ReceiveInput) (*entity.Movement, error) {
	item, err := s.activeItem(ctx, r, in.ItemID)
	if err != nil {
		return nil, err
	}
	loc, err := s.location(ctx, r, in.LocationID)
	if err != nil {
		return nil, err
	}
	if !loc.IsReceivable {
		return nil, domain.ErrInactiveResource
	}

	key := entity.StockKey{ItemID: item.ID, LocationID: loc.ID, LotID: in.LotID, SerialNumber: in.SerialNumber}
	stock, err := r.Stocks.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		stock = entity.NewStock(key, quantity.Zero)
	}
	stock.Receive(in.Quantity)
	if err := r.Stocks.Save(ctx, stock); err != nil {
		return nil, err
	}

	mv := s.newMovement(entity.MovementTypeRECEIVE, key, in.Quantity.Decimal(), in.UserID)
	mv.ToLocationID = loc.ID
	mv.Reference = in.Reference
	if err := r.Movements.Create(ctx, mv); err != nil {
		return nil, err
	}
	return mv, nil
}

// Putaway reubica qty disponibles desde una ubicación origen a una destino.
// Solo mueve cantidad disponible: las reservas del origen no se tocan.
// Origen y destino deben ser ubicaciones distintas.
func (s *Service) Putaway(ctx context.Context, r Repos, in PutawayInput) (*entity.Movement, error) {
	if in.FromLocationID == in.ToLocationID {
		return nil, domain.ErrInvalidInput
	}
	dest, err := s.location(ctx, r, in.ToLocationID)
	if err != nil {
		return nil, err
	}
	if !dest.IsActive {
		return nil, domain.ErrInactiveResource
	}

	srcKey := entity.StockKey{ItemID: in.ItemID, LocationID: in.FromLocationID, LotID: in.LotID, SerialNumber: in.SerialNumber}
	src, err := r.Stocks.Get(ctx, srcKey)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, domain.ErrNotFound
	}
	if err := src.Withdraw(in.Quantity); err != nil {
		return nil, err
	}

	destKey := entity.StockKey{ItemID: in.ItemID, LocationID: dest.ID, LotID: in.LotID, SerialNumber: in.SerialNumber}
	dst, err := r.Stocks.Get(ctx, destKey)
	if err != nil {
		return nil, err
	}
	if dst == nil {
		dst = entity.NewStock(destKey, quantity.Zero)
	}
	dst.Receive(in.Quantity)

	if err := r.Stocks.Save(ctx, src); err != nil {
		return nil, err
	}
	if err := r.Stocks.Save(ctx, dst); err != nil {
		return nil, err
	}

	mv := s.newMovement(entity.MovementTypePUTAWAY, srcKey, in.Quantity.Decimal(), in.UserID)
	mv.FromLocationID = in.FromLocationID
	mv.ToLocationID = dest.ID
	if err := r.Movements.Create(ctx, mv); err != nil {
		return nil, err
	}
	return mv, nil
}

// Pick despacha qty unidades desde una ubicación pickable: reserva y consume
// dentro de la misma operación (efecto neto: baja en mano, reservado igual).
func (s *Service) Pick(ctx context.Context, r Repos, in PickInput) (*entity.Movement, error) {
	if _, err := s.activeItem(ctx, r, in.ItemID); err != nil {
		return nil, err
	}
	loc, err := s.location(ctx, r, in.LocationID)
	if err != nil {
		return nil, err
	}
	if !loc.IsActive || !loc.IsPickable {
		return nil, domain.ErrInactiveResource
	}

	key := entity.StockKey{ItemID: in.ItemID, LocationID: loc.ID, LotID: in.LotID, SerialNumber: in.SerialNumber}
	stock, err := r.Stocks.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	if err := stock.Reserve(in.Quantity); err != nil {
		return nil, err
	}
	if err := stock.Consume(in.Quantity); err != nil {
		return nil, err
	}
	if err := r.Stocks.Save(ctx, stock); err != nil {
		return nil, err
	}

	mv := s.newMovement(entity.MovementTypePICK, key, in.Quantity.Decimal(), in.UserID)
	mv.FromLocationID = loc.ID
	mv.Reference = in.OrderNumber
	if err := r.Movements.Create(ctx, mv); err != nil {
		return nil, err
	}
	return mv, nil
}

// Adjust fija la cantidad en mano de la fila (corrección por conteo físico).
// El movimiento registra el delta firmado (nueva menos anterior) y exige un
// motivo no vacío.
func (s *Service) Adjust(ctx context.Context, r Repos, in AdjustInput) (*entity.Movement, error) {
	if in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := r.Items.GetByID(ctx, in.ItemID); err != nil {
		return nil, err
	}
	loc, err := s.location(ctx, r, in.LocationID)
	if err != nil {
		return nil, err
	}

	key := entity.StockKey{ItemID: in.ItemID, LocationID: loc.ID, LotID: in.LotID, SerialNumber: in.SerialNumber}
	stock, err := r.Stocks.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		stock = entity.NewStock(key, quantity.Zero)
	}
	previous := stock.QuantityAvailable
	if err := stock.AdjustTo(in.NewQuantity); err != nil {
		return nil, err
	}
	if err := r.Stocks.Save(ctx, stock); err != nil {
		return nil, err
	}

	delta := in.NewQuantity.Decimal().Sub(previous.Decimal())
	mv := s.newMovement(entity.MovementTypeADJUST, key, delta, in.UserID)
	mv.ToLocationID = loc.ID
	mv.Notes = in.Reason
	if err := r.Movements.Create(ctx, mv); err != nil {
		return nil, err
	}
	return mv, nil
}

// activeItem resuelve el artículo y exige IsActive.
func (s *Service) activeItem(ctx context.Context, r Repos, itemID string) (*entity.Item, error) {
	item, err := r.Items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsActive {
		return nil, domain.ErrInactiveResource
	}
	return item, nil
}

// location resuelve la ubicación por ID.
func (s *Service) location(ctx context.Context, r Repos, locationID string) (*entity.Location, error) {
	return r.Locations.GetByID(ctx, locationID)
}

func (s *Service) newMovement(movType string, key entity.StockKey, qty decimal.Decimal, userID string) *entity.Movement {
	now := time.Now()
	return &entity.Movement{
		ID:           uuid.New().String(),
		Type:         movType,
		ItemID:       key.ItemID,
		Quantity:     qty,
		LotID:        key.LotID,
		SerialNumber: key.SerialNumber,
		Date:         now,
		CreatedAt:    now,
		CreatedBy:    userID,
	}
}
