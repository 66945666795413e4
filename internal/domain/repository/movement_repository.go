package repository

import (
	"context"
	"time"

	"github.com/souhailwaf/wareho/internal/domain/entity"
)

// MovementRepository define el puerto del libro de movimientos. El libro es
// append-only: solo Create y lecturas; no hay update ni delete.
// GetByID devuelve ErrNotFound si el asiento no existe.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	ListByItem(ctx context.Context, itemID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	ListByLocation(ctx context.Context, locationID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
}
