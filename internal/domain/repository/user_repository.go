package repository

import (
	"context"

	"github.com/souhailwaf/wareho/internal/domain/entity"
)

// UserRepository define el puerto de persistencia de usuarios.
// FindByEmail devuelve (nil, nil) si el email no está registrado.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
