package stockfolio

import (
	"errors"
	"testing"

	"github.com/avigne/stockfolio/date"
)

func TestDayChange(t *testing.T) {
	got := DayChange(bar("2024-03-25", 150.95, 153.20, 100))
	if !got.Equal(M(2.25)) {
		t.Errorf("DayChange = %s, want 2.25", got.Decimal())
	}
}

func TestPeriodChange(t *testing.T) {
	start := bar("2024-03-01", 140, 141, 100)
	end := bar("2024-03-25", 150, 148, 100)
	if got := PeriodChange(start, end); !got.Equal(M(7)) {
		t.Errorf("PeriodChange = %s, want 7", got.Decimal())
	}
}

func TestMovingAverage_constant_series(t *testing.T) {
	// Over a constant-price series the average equals the price for
	// any window.
	s := flatSeries("GOOG", "2024-01-01", 60, 123.45)
	for _, window := range []int{1, 5, 30, 60} {
		got, err := MovingAverage(s, date.MustParse("2024-02-29"), window)
		if err != nil {
			t.Fatalf("MovingAverage window %d: %v", window, err)
		}
		if !got.Equal(M(123.45)) {
			t.Errorf("MovingAverage window %d = %s, want 123.45", window, got.Decimal())
		}
	}
}

func TestMovingAverage_lenient_window(t *testing.T) {
	// Fewer points than the window averages whatever exists instead of
	// failing.
	s := NewPriceSeries("GOOG", []PricePoint{
		bar("2024-03-20", 100, 100, 100),
		bar("2024-03-21", 100, 110, 100),
	})
	got, err := MovingAverage(s, date.MustParse("2024-03-21"), 30)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}
	if !got.Equal(M(105)) {
		t.Errorf("MovingAverage = %s, want 105", got.Decimal())
	}
}

func TestMovingAverage_windows_only_recent_points(t *testing.T) {
	s := NewPriceSeries("GOOG", []PricePoint{
		bar("2024-03-19", 100, 10, 100), // outside the 2-day window
		bar("2024-03-20", 100, 100, 100),
		bar("2024-03-21", 100, 110, 100),
	})
	got, err := MovingAverage(s, date.MustParse("2024-03-21"), 2)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}
	if !got.Equal(M(105)) {
		t.Errorf("MovingAverage = %s, want 105", got.Decimal())
	}
}

func TestMovingAverage_errors(t *testing.T) {
	s := flatSeries("GOOG", "2024-03-01", 5, 100)

	if _, err := MovingAverage(s, date.MustParse("2024-03-03"), 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero window error = %v, want ErrInvalidArgument", err)
	}
	if _, err := MovingAverage(s, date.MustParse("2024-02-28"), 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("before-series error = %v, want ErrNotFound", err)
	}
}

// vSeries builds a series that rises above, dips below, then rises
// back above its own moving average, producing one sell then one buy
// signal after the opening climb.
func vSeries() *PriceSeries {
	s := NewPriceSeries("GOOG", nil)
	start := date.MustParse("2024-01-01")
	prices := []float64{100, 102, 104, 106, 108, 80, 80, 80, 120, 120}
	for i, p := range prices {
		s.Append(PricePoint{Date: start.Add(i), Open: M(p), Close: M(p), Volume: 100})
	}
	return s
}

func TestCrossovers(t *testing.T) {
	s := vSeries()
	r := date.NewRange(date.MustParse("2024-01-03"), date.MustParse("2024-01-10"))
	report, err := Crossovers(s, r)
	if err != nil {
		t.Fatalf("Crossovers: %v", err)
	}

	// the drop to 80 crosses below the average, the jump to 120 above
	if len(report.Negatives) != 1 || report.Negatives[0] != date.MustParse("2024-01-06") {
		t.Errorf("Negatives = %v, want [2024-01-06]", report.Negatives)
	}
	if len(report.Positives) != 1 || report.Positives[0] != date.MustParse("2024-01-09") {
		t.Errorf("Positives = %v, want [2024-01-09]", report.Positives)
	}

	assertReportWithin(t, report, r)
}

func TestMovingCrossovers(t *testing.T) {
	s := vSeries()
	r := date.NewRange(date.MustParse("2024-01-03"), date.MustParse("2024-01-10"))
	report, err := MovingCrossovers(s, r, 1, 5)
	if err != nil {
		t.Fatalf("MovingCrossovers: %v", err)
	}

	if len(report.Negatives) != 1 || report.Negatives[0] != date.MustParse("2024-01-06") {
		t.Errorf("Negatives = %v, want [2024-01-06]", report.Negatives)
	}
	if len(report.Positives) != 1 || report.Positives[0] != date.MustParse("2024-01-09") {
		t.Errorf("Positives = %v, want [2024-01-09]", report.Positives)
	}

	assertReportWithin(t, report, r)
}

func TestMovingCrossovers_invalid_windows(t *testing.T) {
	s := vSeries()
	r := date.NewRange(date.MustParse("2024-01-03"), date.MustParse("2024-01-10"))
	for _, windows := range [][2]int{{0, 5}, {5, 0}, {-1, 5}} {
		if _, err := MovingCrossovers(s, r, windows[0], windows[1]); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("MovingCrossovers(%v) error = %v, want ErrInvalidArgument", windows, err)
		}
	}
}

func TestCrossovers_flat_series_has_no_signals(t *testing.T) {
	s := flatSeries("GOOG", "2024-01-01", 20, 100)
	r := date.NewRange(date.MustParse("2024-01-01"), date.MustParse("2024-01-20"))
	report, err := Crossovers(s, r)
	if err != nil {
		t.Fatalf("Crossovers: %v", err)
	}
	if len(report.Positives) != 0 || len(report.Negatives) != 0 {
		t.Errorf("flat series signals = %v / %v, want none", report.Positives, report.Negatives)
	}
}

// assertReportWithin checks the invariant that the two signal lists
// are disjoint and both contained in the queried range.
func assertReportWithin(t *testing.T, report *CrossoverReport, r date.Range) {
	t.Helper()
	seen := map[date.Date]bool{}
	for _, d := range report.Positives {
		if !r.Contains(d) {
			t.Errorf("positive %s outside range", d)
		}
		seen[d] = true
	}
	for _, d := range report.Negatives {
		if !r.Contains(d) {
			t.Errorf("negative %s outside range", d)
		}
		if seen[d] {
			t.Errorf("date %s in both lists", d)
		}
	}
}
