package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/souhailwaf/wareho/internal/domain"
	"github.com/souhailwaf/wareho/internal/domain/entity"
	"github.com/souhailwaf/wareho/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, sku, barcode, name, description, unit_measure, is_active, created_at, updated_at`

// GetByID obtiene un artículo por ID. ErrNotFound si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	return r.getBy(ctx, "id", id)
}

// GetBySKU obtiene un artículo por SKU. ErrNotFound si no existe.
func (r *ItemRepo) GetBySKU(ctx context.Context, sku string) (*entity.Item, error) {
	return r.getBy(ctx, "sku", sku)
}

// GetByBarcode obtiene un artículo por código de barras. ErrNotFound si no existe.
func (r *ItemRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Item, error) {
	return r.getBy(ctx, "barcode", barcode)
}

func (r *ItemRepo) getBy(ctx context.Context, column, value string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE ` + column + ` = $1`
	var i entity.Item
	err := r.q.QueryRow(ctx, query, value).Scan(
		&i.ID, &i.SKU, &i.Barcode, &i.Name, &i.Description, &i.UnitMeasure,
		&i.IsActive, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// Create persiste un artículo nuevo. ErrDuplicate si el SKU ya existe.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.SKU, item.Barcode, item.Name, item.Description,
		item.UnitMeasure, item.IsActive, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// List devuelve artículos paginados por SKU.
func (r *ItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY sku LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.SKU, &i.Barcode, &i.Name, &i.Description,
			&i.UnitMeasure, &i.IsActive, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
