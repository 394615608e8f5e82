// Package money define el tipo de valor monetario del sistema.
//
// Todos los cálculos financieros (costos estimados, subtotales, impuestos,
// totales) usan decimal exacto en base 10; nunca float binario, para evitar
// errores de redondeo acumulados en el cálculo de IVA y totales.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrencyCode moneda fija para todo el sistema (sin multi-moneda).
const CurrencyCode = "MXN"

// Money representa un monto monetario con precisión decimal exacta.
// Es un tipo de valor inmutable: toda operación devuelve un Money nuevo.
type Money struct {
	amount decimal.Decimal
}

// Zero es el monto cero.
var Zero = Money{}

// New construye un Money a partir de un decimal.
func New(d decimal.Decimal) Money {
	return Money{amount: d}
}

// FromString parsea un monto decimal en texto ("1500.00").
// Devuelve error si el texto no es un decimal válido.
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("money: monto inválido %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

// RequireNonNegative devuelve el Money o error si el monto es negativo.
func (m Money) RequireNonNegative() (Money, error) {
	if m.IsNegative() {
		return Money{}, fmt.Errorf("money: el monto %s no puede ser negativo", m.amount)
	}
	return m, nil
}

// Decimal devuelve el valor decimal interno.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add suma dos montos.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub resta un monto de otro.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulRate multiplica el monto por una tasa escalar (ej. 0.16 para IVA 16%).
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate)}
}

// RoundCents redondea el monto a dos decimales, la escala con la que se
// persiste. Redondeo mitad-lejos-de-cero.
func (m Money) RoundCents() Money {
	return Money{amount: m.amount.Round(2)}
}

// Cmp compara dos montos: -1 si m < other, 0 si son iguales, 1 si m > other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Equal indica si dos montos representan el mismo valor.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan indica si m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan indica si m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsNegative indica si el monto es menor que cero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero indica si el monto es cero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// StringFixed devuelve el monto con dos decimales ("1740.00").
func (m Money) StringFixed() string {
	return m.amount.StringFixed(2)
}

// Formatted devuelve el monto para mostrar, ej. "$1740.00 MXN".
func (m Money) Formatted() string {
	return "$" + m.amount.StringFixed(2) + " " + CurrencyCode
}

// String implementa fmt.Stringer (valor crudo, sin redondear).
func (m Money) String() string {
	return m.amount.String()
}
