package repository

import (
	"context"

	"github.com/souhailwaf/wareho/internal/domain/entity"
)

// StockFilter filtra el listado de niveles de stock (lado de lectura).
type StockFilter struct {
	ItemID     string
	LocationID string
}

// StockRepository define el puerto de filas de stock. Se usa dentro de
// transacciones para garantizar consistencia.
//
// Get devuelve (nil, nil) si la fila no existe: el caller decide si eso es
// find-or-create (Receive, destino de Putaway) o ErrNotFound (Pick, Adjust).
//
// Save aplica concurrencia optimista: inserta cuando Version == 0 y actualiza
// con WHERE version = <anterior> en caso contrario; devuelve
// ErrConcurrencyConflict si otra transacción ganó la escritura.
type StockRepository interface {
	Get(ctx context.Context, key entity.StockKey) (*entity.Stock, error)
	Save(ctx context.Context, stock *entity.Stock) error
	List(ctx context.Context, filter StockFilter, limit, offset int) ([]*entity.Stock, error)
}
