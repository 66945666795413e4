package reports_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souhailwaf/wareho/internal/application/reports"
	"github.com/souhailwaf/wareho/internal/domain"
	"github.com/souhailwaf/wareho/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type stubItemRepo struct {
	item *entity.Item
}

func (s *stubItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	if s.item == nil || s.item.ID != id {
		return nil, domain.ErrNotFound
	}
	return s.item, nil
}

func (s *stubItemRepo) GetBySKU(_ context.Context, _ string) (*entity.Item, error) {
	return nil, domain.ErrNotFound
}

func (s *stubItemRepo) GetByBarcode(_ context.Context, _ string) (*entity.Item, error) {
	return nil, domain.ErrNotFound
}

func (s *stubItemRepo) Create(_ context.Context, _ *entity.Item) error { return nil }

func (s *stubItemRepo) List(_ context.Context, _, _ int) ([]*entity.Item, error) {
	return nil, nil
}

// stubMovementRepo devuelve los movimientos en orden descendente por fecha,
// igual que el repositorio real.
type stubMovementRepo struct {
	movements []*entity.Movement
}

func (s *stubMovementRepo) Create(_ context.Context, _ *entity.Movement) error { return nil }

func (s *stubMovementRepo) GetByID(_ context.Context, _ string) (*entity.Movement, error) {
	return nil, domain.ErrNotFound
}

func (s *stubMovementRepo) ListByItem(_ context.Context, _ string, _, _ *time.Time, limit, offset int) ([]*entity.Movement, error) {
	if offset >= len(s.movements) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.movements) {
		end = len(s.movements)
	}
	return s.movements[offset:end], nil
}

func (s *stubMovementRepo) ListByLocation(_ context.Context, _ string, _, _ *time.Time, _, _ int) ([]*entity.Movement, error) {
	return s.movements, nil
}

// captureGenerator captura las filas recibidas en vez de renderizar.
type captureGenerator struct {
	rows []reports.KardexRow
}

func (g *captureGenerator) GenerateKardexPDF(_ context.Context, _ *entity.Item, rows []reports.KardexRow) ([]byte, error) {
	g.rows = rows
	return []byte("%PDF-fake"), nil
}

func mov(movType, qtyStr string, day int) *entity.Movement {
	q, _ := decimal.NewFromString(qtyStr)
	return &entity.Movement{
		ID:       movType + "-" + qtyStr,
		Type:     movType,
		ItemID:   "item-1",
		Quantity: q,
		Date:     time.Date(2025, 8, day, 0, 0, 0, 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestKardex_SaldoCorrido(t *testing.T) {
	// El repositorio entrega descendente: el más reciente primero.
	movements := []*entity.Movement{
		mov(entity.MovementTypeADJUST, "-2", 4), // corrección
		mov(entity.MovementTypePICK, "3", 3),    // salida
		mov(entity.MovementTypePUTAWAY, "5", 2), // reubicación, neutro
		mov(entity.MovementTypeRECEIVE, "10", 1),
	}
	gen := &captureGenerator{}
	uc := reports.NewKardexUseCase(
		&stubItemRepo{item: &entity.Item{ID: "item-1", SKU: "SKU-1", Name: "Tornillo M4"}},
		&stubMovementRepo{movements: movements},
		gen,
	)

	pdf, err := uc.GenerateKardexPDF(context.Background(), "item-1", nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	require.Len(t, gen.rows, 4)
	// cronológico: receive 10 → putaway (neutro) → pick -3 → adjust -2
	assert.Equal(t, entity.MovementTypeRECEIVE, gen.rows[0].Movement.Type)
	assert.Equal(t, "10", gen.rows[0].Balance.String())
	assert.Equal(t, "10", gen.rows[1].Balance.String(), "putaway no cambia el total del artículo")
	assert.Equal(t, "7", gen.rows[2].Balance.String())
	assert.Equal(t, "5", gen.rows[3].Balance.String())
}

func TestKardex_HistorialMasLargoQueUnaPagina(t *testing.T) {
	// 2500 recepciones de 1: el saldo corrido debe arrancar desde el primer
	// asiento del libro, no desde la página más reciente.
	total := 2500
	movements := make([]*entity.Movement, 0, total)
	for i := total; i >= 1; i-- { // descendente, el más reciente primero
		m := mov(entity.MovementTypeRECEIVE, "1", 1)
		m.ID = fmt.Sprintf("receive-%d", i)
		movements = append(movements, m)
	}
	gen := &captureGenerator{}
	uc := reports.NewKardexUseCase(
		&stubItemRepo{item: &entity.Item{ID: "item-1"}},
		&stubMovementRepo{movements: movements},
		gen,
	)

	_, err := uc.GenerateKardexPDF(context.Background(), "item-1", nil, nil)
	require.NoError(t, err)

	require.Len(t, gen.rows, total)
	assert.Equal(t, "1", gen.rows[0].Balance.String(), "el primer asiento parte de cero")
	assert.Equal(t, "2500", gen.rows[total-1].Balance.String())
}

func TestKardex_ArticuloInexistente(t *testing.T) {
	uc := reports.NewKardexUseCase(&stubItemRepo{}, &stubMovementRepo{}, &captureGenerator{})

	_, err := uc.GenerateKardexPDF(context.Background(), "no-existe", nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestKardex_SinMovimientos(t *testing.T) {
	gen := &captureGenerator{}
	uc := reports.NewKardexUseCase(
		&stubItemRepo{item: &entity.Item{ID: "item-1"}},
		&stubMovementRepo{},
		gen,
	)

	pdf, err := uc.GenerateKardexPDF(context.Background(), "item-1", nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf, "un kardex vacío sigue siendo un PDF válido")
	assert.Empty(t, gen.rows)
}
