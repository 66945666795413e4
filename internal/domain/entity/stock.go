package entity

import (
	"time"

	"github.com/souhailwaf/wareho/internal/domain"
	"github.com/souhailwaf/wareho/internal/domain/quantity"
)

// StockKey identifica una fila de stock: artículo + ubicación, opcionalmente
// lote y número de serie. Lote y serie vacíos significan "sin lote/serie".
// Es un value object comparable por campos (se puede usar como clave de mapa).
type StockKey struct {
	ItemID       string
	LocationID   string
	LotID        string
	SerialNumber string
}

// Stock es la fila de inventario por (item, ubicación, lote?, serie?).
// Invariante: QuantityReserved <= QuantityAvailable en todo momento; ambas son
// no negativas por construcción de Quantity.
//
// Version es el token de concurrencia optimista: 0 en filas aún no
// persistidas; el repositorio lo incrementa en cada Save y reporta
// ErrConcurrencyConflict si otra transacción ganó la escritura.
type Stock struct {
	Key               StockKey
	QuantityAvailable quantity.Quantity // total en mano
	QuantityReserved  quantity.Quantity // apartado para picks en curso
	Version           int64
	UpdatedAt         time.Time
}

// NewStock crea la fila cuando entra la primera unidad de un artículo a una
// ubicación (vía Receive). Reserved inicia en cero.
func NewStock(key StockKey, qty quantity.Quantity) *Stock {
	return &Stock{
		Key:               key,
		QuantityAvailable: qty,
		QuantityReserved:  quantity.Zero,
	}
}

// AvailableQuantity devuelve lo disponible para comprometer en nuevos picks:
// en mano menos reservado. Lectura derivada pura.
func (s *Stock) AvailableQuantity() quantity.Quantity {
	avail, err := s.QuantityAvailable.Sub(s.QuantityReserved)
	if err != nil {
		// Solo alcanzable si se violó el invariante reserved <= available.
		return quantity.Zero
	}
	return avail
}

// Receive suma qty a la cantidad en mano. Nunca falla: qty es no negativa
// por construcción.
func (s *Stock) Receive(qty quantity.Quantity) {
	s.QuantityAvailable = s.QuantityAvailable.Add(qty)
}

// Reserve aparta qty para un pick en curso. Falla con ErrInsufficientStock si
// qty excede lo disponible (en mano menos ya reservado).
func (s *Stock) Reserve(qty quantity.Quantity) error {
	if s.AvailableQuantity().LessThan(qty) {
		return domain.ErrInsufficientStock
	}
	s.QuantityReserved = s.QuantityReserved.Add(qty)
	return nil
}

// Release libera una reserva. Liberar más de lo reservado es una violación de
// contrato del caller, no un error de usuario: ErrInvalidState.
func (s *Stock) Release(qty quantity.Quantity) error {
	r, err := s.QuantityReserved.Sub(qty)
	if err != nil {
		return domain.ErrInvalidState
	}
	s.QuantityReserved = r
	return nil
}

// Consume descuenta qty previamente reservada: baja en mano y reservado a la
// vez. Requiere qty <= QuantityReserved (el caller reserva y consume dentro de
// la misma operación orquestada).
func (s *Stock) Consume(qty quantity.Quantity) error {
	if s.QuantityReserved.LessThan(qty) {
		return domain.ErrInvalidState
	}
	a, err := s.QuantityAvailable.Sub(qty)
	if err != nil {
		return domain.ErrInvalidState
	}
	r, err := s.QuantityReserved.Sub(qty)
	if err != nil {
		return domain.ErrInvalidState
	}
	s.QuantityAvailable = a
	s.QuantityReserved = r
	return nil
}

// Withdraw descuenta qty de la cantidad en mano sin tocar reservas (origen de
// un putaway: reubicación interna, no liberación de reserva). Falla con
// ErrInsufficientStock si qty excede lo disponible no reservado.
func (s *Stock) Withdraw(qty quantity.Quantity) error {
	if s.AvailableQuantity().LessThan(qty) {
		return domain.ErrInsufficientStock
	}
	a, err := s.QuantityAvailable.Sub(qty)
	if err != nil {
		return domain.ErrInsufficientStock
	}
	s.QuantityAvailable = a
	return nil
}

// AdjustTo fija la cantidad en mano directamente (corrección por conteo
// físico). Falla con ErrInvalidInput si newQty < QuantityReserved: no se puede
// ajustar por debajo de lo ya comprometido a picks pendientes.
func (s *Stock) AdjustTo(newQty quantity.Quantity) error {
	if newQty.LessThan(s.QuantityReserved) {
		return domain.ErrInvalidInput
	}
	s.QuantityAvailable = newQty
	return nil
}
