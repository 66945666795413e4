package repository

import (
	"context"

	"github.com/souhailwaf/wareho/internal/domain/entity"
)

// ItemRepository define el puerto de consulta/persistencia de artículos.
// Los Get devuelven ErrNotFound si el artículo no existe.
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Item, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Item, error)
	Create(ctx context.Context, item *entity.Item) error
	List(ctx context.Context, limit, offset int) ([]*entity.Item, error)
}
