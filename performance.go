package stockfolio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avigne/stockfolio/date"
	"github.com/shopspring/decimal"
)

// PerformanceSample is one point of a performance chart. Samples are
// computed on demand and never persisted.
type PerformanceSample struct {
	Date  date.Date
	Label string
	Value Money
}

// chartWidth is the maximum number of markers on a chart row.
const chartWidth = 50

// chartMarker is the bar character of the chart.
const chartMarker = "*"

// bucket thresholds, in days.
const (
	dailySpan   = 45   // up to this span every day is sampled
	monthlySpan = 1095 // beyond this span samples are monthly
	mediumCount = 18   // target sample count for medium spans
)

// SampleDates partitions the range into a bounded number of sampling
// points. Short ranges sample every day, medium ranges sample at
// roughly even intervals, and multi-year ranges sample monthly. An
// inverted range yields no samples.
func SampleDates(r date.Range) []PerformanceSample {
	span := r.Days()
	if span == 0 {
		return nil
	}

	var samples []PerformanceSample
	switch {
	case span <= dailySpan:
		for d := range r.All() {
			samples = append(samples, PerformanceSample{Date: d, Label: d.String()})
		}
	case span <= monthlySpan:
		step := span / mediumCount
		if step < 1 {
			step = 1
		}
		for d := r.From; !d.After(r.To); d = d.Add(step) {
			samples = append(samples, PerformanceSample{Date: d, Label: d.Format("02 Jan 2006")})
		}
	default:
		for d := r.From; !d.After(r.To); d = d.AddMonths(1) {
			samples = append(samples, PerformanceSample{Date: d, Label: d.Format("Jan 2006")})
		}
	}
	return samples
}

// Performance computes the portfolio value at each sampling point of
// the range. Dates the pricer cannot value at all (before any trade or
// price history) chart as zero rather than failing the whole report.
func Performance(r date.Range, valueAt func(date.Date) (Money, error)) ([]PerformanceSample, error) {
	samples := SampleDates(r)
	for i := range samples {
		value, err := valueAt(samples[i].Date)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("performance sample on %s: %w", samples[i].Date, err)
		}
		samples[i].Value = value
	}
	return samples, nil
}

// Chart renders samples as a scaled ASCII bar chart: one row per
// sample, one marker per scale unit, and the scale factor printed
// below. An empty sample list renders an empty chart.
func Chart(samples []PerformanceSample) string {
	var b strings.Builder
	if len(samples) == 0 {
		return b.String()
	}

	scale := chartScale(samples)
	width := 0
	for _, s := range samples {
		if n := len(s.Label); n > width {
			width = n
		}
	}
	for _, s := range samples {
		n := int(s.Value.Decimal().Div(scale).IntPart())
		if n < 0 {
			n = 0
		}
		fmt.Fprintf(&b, "%-*s: %s\n", width, s.Label, strings.Repeat(chartMarker, n))
	}
	fmt.Fprintf(&b, "\nScale: %s = %s\n", chartMarker, M(scale))
	return b.String()
}

// chartScale returns the value of one marker so the tallest row fits
// chartWidth markers. A flat-zero chart keeps a scale of one.
func chartScale(samples []PerformanceSample) decimal.Decimal {
	max := decimal.Zero
	for _, s := range samples {
		if v := s.Value.Decimal(); v.GreaterThan(max) {
			max = v
		}
	}
	scale := max.Div(decimal.NewFromInt(chartWidth))
	if !scale.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return scale
}
