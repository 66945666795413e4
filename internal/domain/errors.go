package domain

import "errors"

// Errores de dominio (sin dependencias externas). Se comparan con errors.Is.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInactiveResource    = errors.New("recurso inactivo o no habilitado para la operación")
	ErrInsufficientStock   = errors.New("stock disponible insuficiente")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidState        = errors.New("estado de stock inconsistente con la operación")
	ErrConcurrencyConflict = errors.New("conflicto de concurrencia: la fila cambió de versión")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
)
