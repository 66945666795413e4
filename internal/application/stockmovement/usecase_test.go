package stockmovement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souhailwaf/wareho/internal/application/stockmovement"
	"github.com/souhailwaf/wareho/internal/domain"
	"github.com/souhailwaf/wareho/pkg/logger"
)

// fakeTxRunner ejecuta fn directamente sobre los fakes (sin transacción real)
// y permite inyectar errores de conflicto en los primeros N intentos.
type fakeTxRunner struct {
	repos        stockmovement.Repos
	failuresLeft int
	failWith     error
	runs         int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(r stockmovement.Repos) error) error {
	f.runs++
	if f.failuresLeft > 0 {
		f.failuresLeft--
		return f.failWith
	}
	return fn(f.repos)
}

func newUseCaseFixture(t *testing.T, failuresLeft int, failWith error) (*stockmovement.UseCase, *fixture, *fakeTxRunner) {
	t.Helper()
	f := newFixture(t)
	runner := &fakeTxRunner{repos: f.repos, failuresLeft: failuresLeft, failWith: failWith}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := stockmovement.NewUseCase(runner, stockmovement.NewService(), log)
	return uc, f, runner
}

func TestUseCase_Receive_SinConflicto(t *testing.T) {
	uc, f, runner := newUseCaseFixture(t, 0, nil)

	mv, err := uc.Receive(context.Background(), stockmovement.ReceiveInput{
		ItemID: "item-1", LocationID: "dock", Quantity: qtyFrom(t, "5"), UserID: "u1",
	})
	require.NoError(t, err)
	require.NotNil(t, mv)
	assert.Equal(t, 1, runner.runs)
	assert.Equal(t, "5", f.stockAt("item-1", "dock").QuantityAvailable.String())
}

func TestUseCase_ReintentaSoloConflictos(t *testing.T) {
	// dos conflictos seguidos y el tercero pasa
	uc, f, runner := newUseCaseFixture(t, 2, domain.ErrConcurrencyConflict)

	mv, err := uc.Receive(context.Background(), stockmovement.ReceiveInput{
		ItemID: "item-1", LocationID: "dock", Quantity: qtyFrom(t, "5"),
	})
	require.NoError(t, err)
	require.NotNil(t, mv)
	assert.Equal(t, 3, runner.runs, "debe reintentar hasta lograr el commit")
	assert.Equal(t, "5", f.stockAt("item-1", "dock").QuantityAvailable.String())
}

func TestUseCase_ConflictoPersistente(t *testing.T) {
	// más conflictos que el máximo de intentos: se propaga el conflicto
	uc, _, runner := newUseCaseFixture(t, 10, domain.ErrConcurrencyConflict)

	_, err := uc.Receive(context.Background(), stockmovement.ReceiveInput{
		ItemID: "item-1", LocationID: "dock", Quantity: qtyFrom(t, "5"),
	})
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
	assert.Equal(t, 3, runner.runs, "el reintento es acotado")
}

func TestUseCase_NoReintentaErroresDeNegocio(t *testing.T) {
	uc, _, runner := newUseCaseFixture(t, 0, nil)

	// pick sin fila de stock: ErrNotFound, sin reintentos
	_, err := uc.Pick(context.Background(), stockmovement.PickInput{
		ItemID: "item-1", LocationID: "shelf", Quantity: qtyFrom(t, "1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, runner.runs, "los errores de negocio no se reintentan")
}

func TestUseCase_ContextoCancelado(t *testing.T) {
	uc, _, _ := newUseCaseFixture(t, 10, domain.ErrConcurrencyConflict)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Receive(ctx, stockmovement.ReceiveInput{
		ItemID: "item-1", LocationID: "dock", Quantity: qtyFrom(t, "5"),
	})
	assert.ErrorIs(t, err, context.Canceled)
}
