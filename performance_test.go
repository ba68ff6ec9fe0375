package stockfolio

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/avigne/stockfolio/date"
)

func TestSampleDates_short_range_samples_every_day(t *testing.T) {
	r := date.NewRange(date.MustParse("2024-01-01"), date.MustParse("2024-02-14"))
	if r.Days() != 45 {
		t.Fatalf("Days() = %d, want 45", r.Days())
	}
	samples := SampleDates(r)
	if len(samples) != 45 {
		t.Fatalf("len(samples) = %d, want 45", len(samples))
	}
	if samples[0].Date != r.From || samples[44].Date != r.To {
		t.Errorf("samples span %s..%s, want %s..%s", samples[0].Date, samples[44].Date, r.From, r.To)
	}
	if samples[0].Label != "2024-01-01" {
		t.Errorf("Label = %q, want the plain date", samples[0].Label)
	}
}

func TestSampleDates_medium_range_samples_evenly(t *testing.T) {
	// 180 days steps every 180/18 = 10 days.
	r := date.NewRange(date.MustParse("2024-01-01"), date.MustParse("2024-06-28"))
	if r.Days() != 180 {
		t.Fatalf("Days() = %d, want 180", r.Days())
	}
	samples := SampleDates(r)
	if len(samples) != 18 {
		t.Fatalf("len(samples) = %d, want 18", len(samples))
	}
	for i := 1; i < len(samples); i++ {
		if got := samples[i].Date.DaysSince(samples[i-1].Date); got != 10 {
			t.Fatalf("step %d = %d days, want 10", i, got)
		}
	}
	if samples[0].Label != "01 Jan 2024" {
		t.Errorf("Label = %q, want %q", samples[0].Label, "01 Jan 2024")
	}
}

func TestSampleDates_long_range_samples_monthly(t *testing.T) {
	r := date.NewRange(date.MustParse("2020-01-01"), date.MustParse("2023-06-30"))
	samples := SampleDates(r)
	if len(samples) != 42 {
		t.Fatalf("len(samples) = %d, want 42 months", len(samples))
	}
	if samples[0].Label != "Jan 2020" || samples[41].Label != "Jun 2023" {
		t.Errorf("labels %q..%q, want Jan 2020..Jun 2023", samples[0].Label, samples[41].Label)
	}
}

func TestSampleDates_inverted_range_is_empty(t *testing.T) {
	r := date.NewRange(date.MustParse("2024-06-01"), date.MustParse("2024-01-01"))
	if samples := SampleDates(r); samples != nil {
		t.Errorf("SampleDates = %v, want nil", samples)
	}
}

func TestPerformance_values_each_sample(t *testing.T) {
	r := date.NewRange(date.MustParse("2024-01-01"), date.MustParse("2024-01-03"))
	samples, err := Performance(r, func(on date.Date) (Money, error) {
		return M(100 * (on.DaysSince(r.From) + 1)), nil
	})
	if err != nil {
		t.Fatalf("Performance: %v", err)
	}
	want := []Money{M(100), M(200), M(300)}
	for i, s := range samples {
		if !s.Value.Equal(want[i]) {
			t.Errorf("sample %d = %s, want %s", i, s.Value, want[i])
		}
	}
}

func TestPerformance_unpriced_dates_chart_as_zero(t *testing.T) {
	r := date.NewRange(date.MustParse("2024-01-01"), date.MustParse("2024-01-03"))
	samples, err := Performance(r, func(on date.Date) (Money, error) {
		if on.Before(date.MustParse("2024-01-03")) {
			return Money{}, fmt.Errorf("no history: %w", ErrNotFound)
		}
		return M(300), nil
	})
	if err != nil {
		t.Fatalf("Performance: %v", err)
	}
	if !samples[0].Value.IsZero() || !samples[1].Value.IsZero() {
		t.Errorf("early samples = %s, %s, want zero", samples[0].Value, samples[1].Value)
	}
	if !samples[2].Value.Equal(M(300)) {
		t.Errorf("last sample = %s, want $300.00", samples[2].Value)
	}
}

func TestPerformance_propagates_other_errors(t *testing.T) {
	r := date.NewRange(date.MustParse("2024-01-01"), date.MustParse("2024-01-03"))
	boom := errors.New("provider down")
	if _, err := Performance(r, func(date.Date) (Money, error) {
		return Money{}, boom
	}); !errors.Is(err, boom) {
		t.Errorf("Performance error = %v, want wrapped provider error", err)
	}
}

func TestChart(t *testing.T) {
	samples := []PerformanceSample{
		{Label: "Jan 2024", Value: M(500)},
		{Label: "Feb 2024", Value: M(250)},
		{Label: "Mar 2024", Value: M(0)},
	}
	chart := Chart(samples)

	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("chart has %d lines, want 5:\n%s", len(lines), chart)
	}

	// scale is 500/50 = $10, so the tallest row fills the full width
	for i, want := range []int{50, 25, 0} {
		if got := strings.Count(lines[i], chartMarker); got != want {
			t.Errorf("row %d has %d markers, want %d", i, got, want)
		}
	}
	if want := "Scale: * = $10.00"; lines[4] != want {
		t.Errorf("footer = %q, want %q", lines[4], want)
	}
}

func TestChart_empty(t *testing.T) {
	if got := Chart(nil); got != "" {
		t.Errorf("Chart(nil) = %q, want empty", got)
	}
}

func TestChart_flat_zero_keeps_unit_scale(t *testing.T) {
	samples := []PerformanceSample{
		{Label: "Jan 2024", Value: M(0)},
		{Label: "Feb 2024", Value: M(0)},
	}
	chart := Chart(samples)
	if !strings.Contains(chart, "Scale: * = $1.00") {
		t.Errorf("chart scale:\n%s", chart)
	}
	if strings.Contains(chart, chartMarker+chartMarker) {
		t.Errorf("flat-zero chart should render no bars:\n%s", chart)
	}
}
