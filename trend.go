package stockfolio

import (
	"fmt"

	"github.com/avigne/stockfolio/date"
	"github.com/shopspring/decimal"
)

// Trend analytics are stateless functions over a PriceSeries. They
// never touch the cache or the provider; callers resolve the series
// first.

// defaultCrossoverWindow is the moving average a raw price crossover
// is measured against.
const defaultCrossoverWindow = 30

// DayChange returns close minus open for a single bar.
func DayChange(p PricePoint) Money { return p.Close.Sub(p.Open) }

// PeriodChange returns the close-to-close change between two bars.
func PeriodChange(start, end PricePoint) Money { return end.Close.Sub(start.Close) }

// MovingAverage returns the average close of the window most recent
// trading days at or before the date. The window is lenient: when
// fewer bars exist, the average covers whatever bars are available
// rather than failing. A date before the whole series is ErrNotFound.
func MovingAverage(s *PriceSeries, on date.Date, window int) (Money, error) {
	if window <= 0 {
		return Money{}, fmt.Errorf("%d-day moving average: %w", window, ErrInvalidArgument)
	}
	bars := s.UpTo(on)
	if len(bars) == 0 {
		return Money{}, fmt.Errorf("no price for %q on or before %s: %w", s.Ticker, on, ErrNotFound)
	}
	if len(bars) > window {
		bars = bars[len(bars)-window:]
	}
	sum := decimal.Zero
	for _, b := range bars {
		sum = sum.Add(b.Close.Decimal())
	}
	return M(sum.Div(decimal.NewFromInt(int64(len(bars))))), nil
}

// CrossoverReport lists the dates where a signal fired within the
// queried range. Positives are buy signals (crossed from below to
// above), Negatives are sell signals. The lists are chronological and
// disjoint.
type CrossoverReport struct {
	Positives []date.Date
	Negatives []date.Date
}

// Crossovers scans the range for days where the closing price crossed
// the short-window moving average relative to the previous trading
// day. Crossing from below to above signals a buy, the opposite a
// sell.
func Crossovers(s *PriceSeries, r date.Range) (*CrossoverReport, error) {
	return crossovers(s, r, func(on date.Date) (above bool, err error) {
		point, ok := s.At(on)
		if !ok {
			// only trading days are scanned, so this cannot miss
			return false, fmt.Errorf("no bar for %q on %s: %w", s.Ticker, on, ErrNotFound)
		}
		avg, err := MovingAverage(s, on, defaultCrossoverWindow)
		if err != nil {
			return false, err
		}
		return point.Close.GreaterThan(avg), nil
	})
}

// MovingCrossovers scans the range for days where the x-day moving
// average crossed the y-day moving average relative to the previous
// trading day. The x window is the faster one; x above y signals a
// buy.
func MovingCrossovers(s *PriceSeries, r date.Range, x, y int) (*CrossoverReport, error) {
	if x <= 0 || y <= 0 {
		return nil, fmt.Errorf("%d/%d-day moving crossover: %w", x, y, ErrInvalidArgument)
	}
	return crossovers(s, r, func(on date.Date) (above bool, err error) {
		fast, err := MovingAverage(s, on, x)
		if err != nil {
			return false, err
		}
		slow, err := MovingAverage(s, on, y)
		if err != nil {
			return false, err
		}
		return fast.GreaterThan(slow), nil
	})
}

// crossovers walks the trading days of the range in order, comparing
// each day's side of the signal line with the previous trading day's.
func crossovers(s *PriceSeries, r date.Range, above func(date.Date) (bool, error)) (*CrossoverReport, error) {
	report := &CrossoverReport{}
	bars := s.Between(r)
	for _, bar := range bars {
		prev, ok := previousTradingDay(s, bar.Date)
		if !ok {
			continue // first bar of the whole series has no reference day
		}
		wasAbove, err := above(prev)
		if err != nil {
			return nil, err
		}
		isAbove, err := above(bar.Date)
		if err != nil {
			return nil, err
		}
		switch {
		case !wasAbove && isAbove:
			report.Positives = append(report.Positives, bar.Date)
		case wasAbove && !isAbove:
			report.Negatives = append(report.Negatives, bar.Date)
		}
	}
	return report, nil
}

// previousTradingDay returns the series date immediately before the
// given trading day.
func previousTradingDay(s *PriceSeries, on date.Date) (date.Date, bool) {
	bars := s.UpTo(on.Add(-1))
	if len(bars) == 0 {
		return date.Date{}, false
	}
	return bars[len(bars)-1].Date, true
}
