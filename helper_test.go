package stockfolio

import (
	"fmt"

	"github.com/avigne/stockfolio/date"
)

// stubPricer serves bars from in-memory series, so ledger and strategy
// tests never touch the cache or the network.
type stubPricer struct {
	series map[string]*PriceSeries
}

func newStubPricer(series ...*PriceSeries) stubPricer {
	m := make(map[string]*PriceSeries, len(series))
	for _, s := range series {
		m[s.Ticker] = s
	}
	return stubPricer{series: m}
}

func (s stubPricer) PointOn(ticker string, on date.Date) (PricePoint, error) {
	ser, ok := s.series[ticker]
	if !ok {
		return PricePoint{}, fmt.Errorf("unknown ticker %q: %w", ticker, ErrNotFound)
	}
	point, ok := ser.At(on)
	if !ok {
		return PricePoint{}, fmt.Errorf("no price for %q on %s: %w", ticker, on, ErrNotFound)
	}
	return point, nil
}

func (s stubPricer) PointAsOf(ticker string, on date.Date) (PricePoint, error) {
	ser, ok := s.series[ticker]
	if !ok {
		return PricePoint{}, fmt.Errorf("unknown ticker %q: %w", ticker, ErrNotFound)
	}
	point, ok := ser.AsOf(on)
	if !ok {
		return PricePoint{}, fmt.Errorf("no price for %q on or before %s: %w", ticker, on, ErrNotFound)
	}
	return point, nil
}

// bar is a terse PricePoint factory for tests.
func bar(day string, open, close float64, volume int64) PricePoint {
	return PricePoint{
		Date:   date.MustParse(day),
		Open:   M(open),
		Close:  M(close),
		Volume: volume,
	}
}

// flatSeries builds a series of consecutive days at one constant price.
func flatSeries(ticker, from string, days int, price float64) *PriceSeries {
	s := NewPriceSeries(ticker, nil)
	start := date.MustParse(from)
	for i := 0; i < days; i++ {
		s.Append(PricePoint{Date: start.Add(i), Open: M(price), Close: M(price), Volume: 1000})
	}
	return s
}
