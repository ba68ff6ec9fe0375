package stockfolio

import (
	"fmt"
	"strconv"
)

// Percent represents a percentage value, where 50 means 50%.
//
// Allocation percentages are not constrained to sum to 100: each raw
// percentage applies directly against the invested amount, so over- or
// under-allocated plans are accepted.
type Percent float64

// ParsePercent parses a bare number, as stored in strategy files.
func ParsePercent(s string) (Percent, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	return Percent(v), nil
}

// Equal compares two percentages with a small tolerance.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
