package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souhailwaf/wareho/internal/domain"
	"github.com/souhailwaf/wareho/internal/domain/entity"
	"github.com/souhailwaf/wareho/internal/domain/quantity"
)

func qty(t *testing.T, s string) quantity.Quantity {
	t.Helper()
	q, err := quantity.FromString(s)
	require.NoError(t, err)
	return q
}

func newStock(t *testing.T, available string) *entity.Stock {
	t.Helper()
	return entity.NewStock(entity.StockKey{ItemID: "item-1", LocationID: "loc-1"}, qty(t, available))
}

// checkInvariant verifica reserved <= available después de cada operación.
func checkInvariant(t *testing.T, s *entity.Stock) {
	t.Helper()
	assert.True(t, s.QuantityReserved.Cmp(s.QuantityAvailable) <= 0,
		"invariante violado: reserved=%s > available=%s", s.QuantityReserved, s.QuantityAvailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción y lecturas derivadas
// ──────────────────────────────────────────────────────────────────────────────

func TestNewStock_ReservadoInicialCero(t *testing.T) {
	s := newStock(t, "10")

	assert.Equal(t, "10", s.QuantityAvailable.String())
	assert.True(t, s.QuantityReserved.IsZero())
	assert.Equal(t, int64(0), s.Version, "una fila aún no persistida tiene version 0")
	checkInvariant(t, s)
}

func TestAvailableQuantity_DescuentaReservado(t *testing.T) {
	s := newStock(t, "10")
	require.NoError(t, s.Reserve(qty(t, "4")))

	assert.Equal(t, "6", s.AvailableQuantity().String())
	assert.Equal(t, "10", s.QuantityAvailable.String(), "en mano no cambia al reservar")
	checkInvariant(t, s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Receive
// ──────────────────────────────────────────────────────────────────────────────

func TestReceive_Acumula(t *testing.T) {
	s := newStock(t, "10")
	s.Receive(qty(t, "2.5"))

	assert.Equal(t, "12.5", s.QuantityAvailable.String())
	checkInvariant(t, s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reserve / Release / Consume
// ──────────────────────────────────────────────────────────────────────────────

func TestReserve_ExcedeDisponible(t *testing.T) {
	s := newStock(t, "5")

	err := s.Reserve(qty(t, "8"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, s.QuantityReserved.IsZero(), "un reserve fallido no debe dejar rastro")
	assert.Equal(t, "5", s.QuantityAvailable.String())
	checkInvariant(t, s)
}

func TestReserve_CuentaLoYaReservado(t *testing.T) {
	s := newStock(t, "10")
	require.NoError(t, s.Reserve(qty(t, "7")))

	// quedan 3 disponibles; reservar 4 más debe fallar
	err := s.Reserve(qty(t, "4"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "7", s.QuantityReserved.String())
	checkInvariant(t, s)
}

func TestRelease_MasDeLoReservado(t *testing.T) {
	s := newStock(t, "10")
	require.NoError(t, s.Reserve(qty(t, "2")))

	err := s.Release(qty(t, "3"))
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, "2", s.QuantityReserved.String(), "un release fallido no modifica la fila")
	checkInvariant(t, s)
}

func TestConsume_BajaEnManoYReservado(t *testing.T) {
	s := newStock(t, "10")
	require.NoError(t, s.Reserve(qty(t, "3")))
	require.NoError(t, s.Consume(qty(t, "3")))

	assert.Equal(t, "7", s.QuantityAvailable.String())
	assert.True(t, s.QuantityReserved.IsZero())
	checkInvariant(t, s)
}

func TestConsume_SinReservaPrevia(t *testing.T) {
	s := newStock(t, "10")

	err := s.Consume(qty(t, "1"))
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, "10", s.QuantityAvailable.String())
	checkInvariant(t, s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Withdraw (origen de putaway)
// ──────────────────────────────────────────────────────────────────────────────

func TestWithdraw_NoTocaReservas(t *testing.T) {
	s := newStock(t, "10")
	require.NoError(t, s.Reserve(qty(t, "4")))
	require.NoError(t, s.Withdraw(qty(t, "5")))

	assert.Equal(t, "5", s.QuantityAvailable.String())
	assert.Equal(t, "4", s.QuantityReserved.String())
	checkInvariant(t, s)
}

func TestWithdraw_NoPuedeTomarLoReservado(t *testing.T) {
	s := newStock(t, "10")
	require.NoError(t, s.Reserve(qty(t, "4")))

	// solo hay 6 no reservadas; mover 7 debe fallar
	err := s.Withdraw(qty(t, "7"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "10", s.QuantityAvailable.String())
	checkInvariant(t, s)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustTo
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustTo_FijaEnMano(t *testing.T) {
	s := newStock(t, "10")
	require.NoError(t, s.AdjustTo(qty(t, "3")))

	assert.Equal(t, "3", s.QuantityAvailable.String())
	checkInvariant(t, s)
}

func TestAdjustTo_PorDebajoDeLoReservado(t *testing.T) {
	s := newStock(t, "10")
	require.NoError(t, s.Reserve(qty(t, "6")))

	err := s.AdjustTo(qty(t, "5"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "10", s.QuantityAvailable.String(), "un ajuste rechazado no modifica la fila")
	checkInvariant(t, s)
}

func TestAdjustTo_ExactamenteLoReservado(t *testing.T) {
	s := newStock(t, "10")
	require.NoError(t, s.Reserve(qty(t, "6")))
	require.NoError(t, s.AdjustTo(qty(t, "6")))

	assert.True(t, s.AvailableQuantity().IsZero())
	checkInvariant(t, s)
}
