package stockfolio

import "github.com/shopspring/decimal"

// Quantity represents a number of shares. Manual trades deal in whole
// shares; strategy-generated lots may hold fractional quantities.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from a numeric constant or a decimal.
func Q[T float32 | float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseQuantity parses a decimal share count, as stored in portfolio files.
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: d}, nil
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }

// IsWholePositive reports whether the quantity is a positive integer,
// the contract for manual buy and sell orders.
func (q Quantity) IsWholePositive() bool {
	return q.value.IsPositive() && q.value.IsInteger()
}

// Decimal exposes the raw decimal value, used by the codecs.
func (q Quantity) Decimal() decimal.Decimal { return q.value }

func (q Quantity) String() string { return q.value.String() }
