package stockfolio

import (
	"slices"

	"github.com/avigne/stockfolio/date"
)

// PricePoint is one daily bar of a price series. Points for past dates
// are immutable once fetched.
type PricePoint struct {
	Date   date.Date
	Open   Money
	Close  Money
	Volume int64
}

// PriceSeries is the chronologically ordered daily price history of one
// ticker. The external provider is the source of truth; a series is
// mirrored to a local cache file keyed by its fetch date.
type PriceSeries struct {
	Ticker string
	points []PricePoint
}

// NewPriceSeries builds a series for a ticker from unordered points.
// Duplicate dates keep the last point seen.
func NewPriceSeries(ticker string, points []PricePoint) *PriceSeries {
	s := &PriceSeries{Ticker: ticker}
	for _, p := range points {
		s.Append(p)
	}
	return s
}

// Append adds a point, keeping the series sorted. An existing point at
// the same date is overwritten, the latest data wins.
func (s *PriceSeries) Append(p PricePoint) {
	i, found := slices.BinarySearchFunc(s.points, p.Date, comparePoint)
	if found {
		s.points[i] = p
		return
	}
	s.points = slices.Insert(s.points, i, p)
}

func comparePoint(p PricePoint, d date.Date) int {
	if p.Date.After(d) {
		return 1
	}
	if p.Date.Before(d) {
		return -1
	}
	return 0
}

// Len returns the number of daily bars in the series.
func (s *PriceSeries) Len() int { return len(s.points) }

// Points returns the ordered daily bars.
func (s *PriceSeries) Points() []PricePoint { return s.points }

// First returns the earliest bar and whether the series is non-empty.
func (s *PriceSeries) First() (PricePoint, bool) {
	if len(s.points) == 0 {
		return PricePoint{}, false
	}
	return s.points[0], true
}

// Last returns the most recent bar and whether the series is non-empty.
func (s *PriceSeries) Last() (PricePoint, bool) {
	if len(s.points) == 0 {
		return PricePoint{}, false
	}
	return s.points[len(s.points)-1], true
}

// At returns the bar for the exact calendar date.
// It reports false when the date is not a trading day in the series.
func (s *PriceSeries) At(on date.Date) (PricePoint, bool) {
	i, found := slices.BinarySearchFunc(s.points, on, comparePoint)
	if !found {
		return PricePoint{}, false
	}
	return s.points[i], true
}

// AsOf returns the bar for the date or the nearest prior trading day.
// It reports false when the series has no bar on or before the date.
func (s *PriceSeries) AsOf(on date.Date) (PricePoint, bool) {
	i, found := slices.BinarySearchFunc(s.points, on, comparePoint)
	if found {
		return s.points[i], true
	}
	if i == 0 {
		return PricePoint{}, false
	}
	return s.points[i-1], true
}

// UpTo returns the bars dated on or before the given date, most recent last.
func (s *PriceSeries) UpTo(on date.Date) []PricePoint {
	i, found := slices.BinarySearchFunc(s.points, on, comparePoint)
	if found {
		i++
	}
	return s.points[:i]
}

// Between returns the bars whose date lies within the range, boundaries included.
func (s *PriceSeries) Between(r date.Range) []PricePoint {
	lo, _ := slices.BinarySearchFunc(s.points, r.From, comparePoint)
	hi, found := slices.BinarySearchFunc(s.points, r.To, comparePoint)
	if found {
		hi++
	}
	if lo > hi {
		return nil
	}
	return s.points[lo:hi]
}
