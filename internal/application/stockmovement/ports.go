package stockmovement

import (
	"context"

	"github.com/souhailwaf/wareho/internal/domain/repository"
)

// Repos es el conjunto explícito de capacidades de persistencia que el
// servicio recibe ya atadas a la transacción del caller (en vez de inyección
// por constructor de cada repositorio).
type Repos struct {
	Items     repository.ItemRepository
	Locations repository.LocationRepository
	Stocks    repository.StockRepository
	Movements repository.MovementRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Commit si fn devuelve nil, Rollback en caso contrario:
// la mutación de stock y el asiento del movimiento persisten ambos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
