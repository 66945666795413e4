package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/souhailwaf/wareho/internal/domain"
	"github.com/souhailwaf/wareho/internal/domain/entity"
	"github.com/souhailwaf/wareho/internal/domain/quantity"
	"github.com/souhailwaf/wareho/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// La columna version es el token de concurrencia optimista: no hay SELECT FOR
// UPDATE; quien pierda la carrera de versión recibe ErrConcurrencyConflict.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `item_id, location_id, lot_id, serial_number, quantity_available, quantity_reserved, version, updated_at`

// Get obtiene la fila de stock por su clave compuesta. Devuelve (nil, nil) si
// no existe; el caller decide si aplica find-or-create o ErrNotFound.
func (r *StockRepo) Get(ctx context.Context, key entity.StockKey) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock
		WHERE item_id = $1 AND location_id = $2 AND lot_id = $3 AND serial_number = $4`
	row := r.q.QueryRow(ctx, query, key.ItemID, key.LocationID, key.LotID, key.SerialNumber)
	s, err := scanStock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// Save persiste la fila con chequeo de versión. Version == 0 inserta (y una
// violación de unicidad significa que otro worker creó la fila primero);
// Version > 0 actualiza con WHERE version = anterior. En ambos casos de
// carrera perdida devuelve ErrConcurrencyConflict y el caller debe releer.
func (r *StockRepo) Save(ctx context.Context, stock *entity.Stock) error {
	if stock.Version == 0 {
		query := `
			INSERT INTO stock (item_id, location_id, lot_id, serial_number, quantity_available, quantity_reserved, version, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, 1, now())`
		_, err := r.q.Exec(ctx, query,
			stock.Key.ItemID, stock.Key.LocationID, stock.Key.LotID, stock.Key.SerialNumber,
			stock.QuantityAvailable.Decimal(), stock.QuantityReserved.Decimal(),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrConcurrencyConflict
			}
			return fmt.Errorf("insert stock: %w", err)
		}
		stock.Version = 1
		return nil
	}

	query := `
		UPDATE stock
		SET quantity_available = $5, quantity_reserved = $6, version = version + 1, updated_at = now()
		WHERE item_id = $1 AND location_id = $2 AND lot_id = $3 AND serial_number = $4
		  AND version = $7`
	tag, err := r.q.Exec(ctx, query,
		stock.Key.ItemID, stock.Key.LocationID, stock.Key.LotID, stock.Key.SerialNumber,
		stock.QuantityAvailable.Decimal(), stock.QuantityReserved.Decimal(),
		stock.Version,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrencyConflict
	}
	stock.Version++
	return nil
}

// List devuelve niveles de stock filtrados por item y/o ubicación (lado de lectura).
func (r *StockRepo) List(ctx context.Context, filter repository.StockFilter, limit, offset int) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, filter.LocationID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY item_id, location_id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// scanStock mapea una fila a la entidad, reconstruyendo los Quantity validados.
func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	var available, reserved decimal.Decimal
	if err := row.Scan(
		&s.Key.ItemID, &s.Key.LocationID, &s.Key.LotID, &s.Key.SerialNumber,
		&available, &reserved, &s.Version, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	qa, err := quantity.New(available)
	if err != nil {
		return nil, fmt.Errorf("quantity_available inválida: %w", err)
	}
	qr, err := quantity.New(reserved)
	if err != nil {
		return nil, fmt.Errorf("quantity_reserved inválida: %w", err)
	}
	s.QuantityAvailable = qa
	s.QuantityReserved = qr
	return &s, nil
}
