package stockfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// reportingCurrency is the single currency the ledger reports in.
// The persistence format stores bare decimal amounts, so the currency
// only matters for display formatting.
const reportingCurrency = money.USD

// Money represents a monetary value with exact decimal arithmetic.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from a numeric constant or a decimal.
func M[T float32 | float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a bare decimal amount, as stored in portfolio files.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money     { return Money{value: m.value.Mul(q.value)} }

// DivPrice divides a money amount by a unit price, yielding a quantity of shares.
func (m Money) DivPrice(price Money) Quantity { return Quantity{value: m.value.Div(price.value)} }

// Pct returns the given percentage of the amount. Percentages above 100
// or below 0 are applied as-is.
func (m Money) Pct(p Percent) Money {
	return Money{value: m.value.Mul(decimal.NewFromFloat(float64(p))).Div(decimal.NewFromInt(100))}
}

// Decimal exposes the raw decimal value, used by the codecs.
func (m Money) Decimal() decimal.Decimal { return m.value }

// String formats the amount in the reporting currency, e.g. "$3,471.85".
func (m Money) String() string {
	cur := money.GetCurrency(reportingCurrency)
	shifted := m.value.Shift(int32(cur.Fraction))
	return money.New(shifted.IntPart(), reportingCurrency).Display()
}

// newDecimal is a convenience factory for decimal.Decimal.
func newDecimal[T float32 | float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}
