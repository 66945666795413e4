package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/souhailwaf/wareho/internal/application/stockmovement"
	"github.com/souhailwaf/wareho/internal/domain"
)

var _ stockmovement.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL,
// pasando repositorios atados a la tx (unidad de trabajo del motor de
// movimientos).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Un fallo de serialización en el commit se reporta como
// ErrConcurrencyConflict para que el caller lo distinga de un error de negocio.
func (r *TxRunner) Run(ctx context.Context, fn func(repos stockmovement.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := stockmovement.Repos{
		Items:     NewItemRepository(tx),
		Locations: NewLocationRepository(tx),
		Stocks:    NewStockRepository(tx),
		Movements: NewMovementRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return domain.ErrConcurrencyConflict
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
