package entity

import "time"

// Roles de usuario para RBAC.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleOperario   = "operario"
)

// User representa un usuario del sistema (operario de bodega, supervisor o
// administrador). Los movimientos registran su ID como CreatedBy.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | supervisor | operario
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EntityID implementa IdentityComparable.
func (u *User) EntityID() string { return u.ID }

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RoleOperario:
		return true
	}
	return false
}
