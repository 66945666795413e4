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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColumns = `id, code, name, parent_location_id, is_pickable, is_receivable, is_active, created_at, updated_at`

// GetByID obtiene una ubicación por ID. ErrNotFound si no existe.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	return r.getBy(ctx, "id", id)
}

// GetByCode obtiene una ubicación por código. ErrNotFound si no existe.
func (r *LocationRepo) GetByCode(ctx context.Context, code string) (*entity.Location, error) {
	return r.getBy(ctx, "code", code)
}

func (r *LocationRepo) getBy(ctx context.Context, column, value string) (*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE ` + column + ` = $1`
	l, err := scanLocation(r.q.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// Create persiste una ubicación nueva. ErrDuplicate si el código ya existe.
func (r *LocationRepo) Create(ctx context.Context, loc *entity.Location) error {
	if loc.ID == "" {
		loc.ID = uuid.New().String()
	}
	now := time.Now()
	loc.CreatedAt = now
	loc.UpdatedAt = now
	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		loc.ID, loc.Code, loc.Name, nullable(loc.ParentLocationID),
		loc.IsPickable, loc.IsReceivable, loc.IsActive, loc.CreatedAt, loc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create location: %w", err)
	}
	return nil
}

// List devuelve ubicaciones paginadas por código.
func (r *LocationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return collectLocations(rows)
}

// ListChildren devuelve las ubicaciones hijas directas de parentID
// (la jerarquía es una relación dirigida por id, sin punteros en memoria).
func (r *LocationRepo) ListChildren(ctx context.Context, parentID string) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE parent_location_id = $1 ORDER BY code`
	rows, err := r.q.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	return collectLocations(rows)
}

func collectLocations(rows pgx.Rows) ([]*entity.Location, error) {
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	var parent *string
	if err := row.Scan(
		&l.ID, &l.Code, &l.Name, &parent,
		&l.IsPickable, &l.IsReceivable, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if parent != nil {
		l.ParentLocationID = *parent
	}
	return &l, nil
}
