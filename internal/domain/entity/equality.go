package entity

// IdentityComparable lo implementan las entidades que se comparan por
// identidad (su ID surrogado), nunca por el valor de sus campos.
type IdentityComparable interface {
	EntityID() string
}

// SameEntity reporta si a y b son la misma entidad. Dos entidades sin ID
// asignado (aún no persistidas) nunca son iguales.
func SameEntity(a, b IdentityComparable) bool {
	if a == nil || b == nil {
		return false
	}
	if a.EntityID() == "" || b.EntityID() == "" {
		return false
	}
	return a.EntityID() == b.EntityID()
}
