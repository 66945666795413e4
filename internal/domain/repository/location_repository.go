package repository

import (
	"context"

	"github.com/souhailwaf/wareho/internal/domain/entity"
)

// LocationRepository define el puerto de ubicaciones. La jerarquía padre/hijo
// se resuelve aquí (ListChildren), nunca con punteros en memoria.
// Los Get devuelven ErrNotFound si la ubicación no existe.
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	GetByCode(ctx context.Context, code string) (*entity.Location, error)
	Create(ctx context.Context, location *entity.Location) error
	List(ctx context.Context, limit, offset int) ([]*entity.Location, error)
	ListChildren(ctx context.Context, parentID string) ([]*entity.Location, error)
}
