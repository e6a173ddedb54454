package organizer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Money represents a USD monetary value with exact decimal arithmetic.
// The organizer tracks a single reporting currency; formatting is the only
// place the currency shows up.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from any common numeric type.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	default:
		return decimal.Zero
	}
}

// ParseMoney parses a decimal string into a Money. Anything unparseable is
// coerced to zero: numeric ingestion never fails.
func ParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}
	}
	return Money{value: d}
}

// String formats the amount as USD, e.g. "$1,234.56".
func (m Money) String() string {
	cur := *money.New(0, money.USD).Currency()
	shifted := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(shifted.IntPart())
}

func (m Money) Equal(n Money) bool            { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                  { return m.value.IsZero() }
func (m Money) IsPositive() bool              { return m.value.IsPositive() }
func (m Money) IsNegative() bool              { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool         { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool      { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money             { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money             { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money                    { return Money{value: m.value.Neg()} }
func (m Money) MulInt(n int64) Money          { return Money{value: m.value.Mul(decimal.NewFromInt(n))} }
func (m Money) DivInt(n int64) Money          { return Money{value: m.value.Div(decimal.NewFromInt(n))} }
func (m Money) Mul(d decimal.Decimal) Money   { return Money{value: m.value.Mul(d)} }
func (m Money) Decimal() decimal.Decimal      { return m.value }
func (m Money) InexactFloat64() float64       { return m.value.InexactFloat64() }

// Round rounds to the nearest whole unit, half away from zero.
func (m Money) Round() Money { return Money{value: m.value.Round(0)} }

// Max returns the greater of m and n.
func (m Money) Max(n Money) Money {
	if m.LessThan(n) {
		return n
	}
	return m
}

// SignedString is like String but prefixes positive amounts with "+" and
// renders zero as "-", for compact report tables.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(2).MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		// Numeric fields are coerced, never rejected.
		m.value = decimal.Zero
		return nil
	}
	m.value = d
	return nil
}
