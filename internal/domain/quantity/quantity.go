// Package quantity define el value object Quantity: un decimal no negativo
// con 4 dígitos fraccionarios, usado para todas las cantidades de inventario.
package quantity

import (
	"github.com/shopspring/decimal"

	"github.com/souhailwaf/wareho/internal/domain"
)

// Escala fija de las cantidades (4 decimales).
const scale = 4

// Quantity es un decimal no negativo e inmutable. Toda operación devuelve una
// instancia nueva; las que producirían un valor negativo fallan en vez de
// truncar. El redondeo a 4 decimales es "half away from zero" (decimal.Round).
type Quantity struct {
	value decimal.Decimal
}

// Zero es la cantidad cero canónica.
var Zero = Quantity{value: decimal.Zero}

// New construye una Quantity validada. Devuelve ErrInvalidInput si value < 0.
func New(value decimal.Decimal) (Quantity, error) {
	if value.IsNegative() {
		return Zero, domain.ErrInvalidInput
	}
	return Quantity{value: value.Round(scale)}, nil
}

// FromString construye una Quantity desde su representación decimal en texto.
func FromString(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, domain.ErrInvalidInput
	}
	return New(d)
}

// Add suma dos cantidades. Nunca falla: la suma de no negativos es no negativa.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value.Add(other.value)}
}

// Sub resta other de q. Devuelve ErrInvalidInput si el resultado sería
// negativo; el caller debe verificar disponibilidad antes de restar.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	r := q.value.Sub(other.value)
	if r.IsNegative() {
		return Zero, domain.ErrInvalidInput
	}
	return Quantity{value: r}, nil
}

// MulScalar multiplica por un escalar. Devuelve ErrInvalidInput si el escalar
// es negativo.
func (q Quantity) MulScalar(factor decimal.Decimal) (Quantity, error) {
	if factor.IsNegative() {
		return Zero, domain.ErrInvalidInput
	}
	return Quantity{value: q.value.Mul(factor).Round(scale)}, nil
}

// Cmp devuelve -1, 0 o 1 según el orden total por valor decimal.
func (q Quantity) Cmp(other Quantity) int {
	return q.value.Cmp(other.value)
}

// LessThan reporta q < other.
func (q Quantity) LessThan(other Quantity) bool {
	return q.value.LessThan(other.value)
}

// GreaterThan reporta q > other.
func (q Quantity) GreaterThan(other Quantity) bool {
	return q.value.GreaterThan(other.value)
}

// GreaterThanOrEqual reporta q >= other.
func (q Quantity) GreaterThanOrEqual(other Quantity) bool {
	return q.value.GreaterThanOrEqual(other.value)
}

// Equal compara por valor (igualdad estructural del value object).
func (q Quantity) Equal(other Quantity) bool {
	return q.value.Equal(other.value)
}

// IsZero reporta si la cantidad es cero.
func (q Quantity) IsZero() bool {
	return q.value.IsZero()
}

// Decimal devuelve el valor decimal subyacente.
func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

// String devuelve la representación decimal.
func (q Quantity) String() string {
	return q.value.String()
}
