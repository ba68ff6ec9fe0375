package stockfolio

import (
	"errors"
	"testing"
)

func TestAllocation_round_trip(t *testing.T) {
	alloc, err := NewAllocation(
		Weight{Ticker: "GOOG", Percent: 50},
		Weight{Ticker: "VZ", Percent: 30},
		Weight{Ticker: "AAAU", Percent: 20},
	)
	if err != nil {
		t.Fatalf("NewAllocation: %v", err)
	}

	cell := alloc.String()
	if want := "[GOOG:50; VZ:30; AAAU:20]"; cell != want {
		t.Errorf("String() = %q, want %q", cell, want)
	}

	parsed, err := ParseAllocation(cell)
	if err != nil {
		t.Fatalf("ParseAllocation(%q): %v", cell, err)
	}
	if len(parsed) != 3 {
		t.Fatalf("parsed %d entries, want 3", len(parsed))
	}
	for i := range alloc {
		if parsed[i].Ticker != alloc[i].Ticker || !parsed[i].Percent.Equal(alloc[i].Percent) {
			t.Errorf("entry %d = %+v, want %+v", i, parsed[i], alloc[i])
		}
	}
}

func TestParseAllocation_rejects_malformed_cells(t *testing.T) {
	testCases := []string{
		"",
		"GOOG:50",
		"[]",
		"[GOOG]",
		"[GOOG:fifty]",
		"[GOOG:50; GOOG:50]", // duplicate ticker
		"[:50]",
	}
	for _, in := range testCases {
		if _, err := ParseAllocation(in); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseAllocation(%q) error = %v, want ErrInvalidArgument", in, err)
		}
	}
}

func TestAllocation_Split_applies_raw_percentages(t *testing.T) {
	// Over-allocated plans are applied as-is, no normalization.
	alloc, err := NewAllocation(
		Weight{Ticker: "GOOG", Percent: 80},
		Weight{Ticker: "VZ", Percent: 80},
	)
	if err != nil {
		t.Fatalf("NewAllocation: %v", err)
	}

	shares := alloc.Split(M(1000))
	if !shares[0].Equal(M(800)) || !shares[1].Equal(M(800)) {
		t.Errorf("Split = %s, %s, want 800 and 800", shares[0].Decimal(), shares[1].Decimal())
	}
}

func TestAllocation_Split_negative_amount(t *testing.T) {
	alloc, err := NewAllocation(Weight{Ticker: "GOOG", Percent: 50})
	if err != nil {
		t.Fatalf("NewAllocation: %v", err)
	}
	shares := alloc.Split(M(-2000))
	if !shares[0].Equal(M(-1000)) {
		t.Errorf("Split(-2000) = %s, want -1000", shares[0].Decimal())
	}
}
