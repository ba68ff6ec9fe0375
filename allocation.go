package stockfolio

import (
	"fmt"
	"strings"
)

// Weight is one entry of an allocation plan: a ticker and the share of
// the invested amount it receives.
type Weight struct {
	Ticker  string
	Percent Percent
}

// Allocation is an ordered percentage-weighted plan. Percentages are
// applied directly against the invested amount without normalization;
// plans summing over or under 100 are accepted as-is.
type Allocation []Weight

// NewAllocation builds an allocation, rejecting empty plans, blank
// tickers and duplicated tickers.
func NewAllocation(weights ...Weight) (Allocation, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("allocation needs at least one entry: %w", ErrInvalidArgument)
	}
	seen := make(map[string]bool, len(weights))
	for _, w := range weights {
		if w.Ticker == "" {
			return nil, fmt.Errorf("allocation entry without ticker: %w", ErrInvalidArgument)
		}
		if seen[w.Ticker] {
			return nil, fmt.Errorf("duplicate ticker %q in allocation: %w", w.Ticker, ErrInvalidArgument)
		}
		seen[w.Ticker] = true
	}
	return Allocation(weights), nil
}

// Split applies each raw percentage against the amount, preserving
// entry order. A negative amount yields negative shares, the valid
// degenerate case mirroring negative manual positions.
func (a Allocation) Split(amount Money) []Money {
	shares := make([]Money, len(a))
	for i, w := range a {
		shares[i] = amount.Pct(w.Percent)
	}
	return shares
}

// String serializes the plan in its persisted cell form,
// "[GOOG:50; VZ:30; AAAU:20]".
func (a Allocation) String() string {
	parts := make([]string, len(a))
	for i, w := range a {
		parts[i] = fmt.Sprintf("%s:%g", w.Ticker, float64(w.Percent))
	}
	return "[" + strings.Join(parts, "; ") + "]"
}

// ParseAllocation parses the persisted cell form produced by String.
// Both ends validate: the serializer only emits well-formed cells, and
// the parser rejects anything else.
func ParseAllocation(s string) (Allocation, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return nil, fmt.Errorf("allocation %q is not bracketed: %w", s, ErrInvalidArgument)
	}
	body := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if body == "" {
		return nil, fmt.Errorf("allocation %q is empty: %w", s, ErrInvalidArgument)
	}

	var weights []Weight
	for _, part := range strings.Split(body, ";") {
		ticker, pct, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("allocation entry %q wants ticker:percent: %w", part, ErrInvalidArgument)
		}
		p, err := ParsePercent(strings.TrimSpace(pct))
		if err != nil {
			return nil, fmt.Errorf("allocation entry %q: %w", part, ErrInvalidArgument)
		}
		weights = append(weights, Weight{Ticker: strings.TrimSpace(ticker), Percent: p})
	}
	return NewAllocation(weights...)
}
