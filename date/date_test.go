package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-03-25", want: New(2024, time.March, 25)},
		{in: "2024-3-5", want: New(2024, time.March, 5)},
		{in: "2024-13-01", wantErr: true},
		{in: "yesterday", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_Add_normalizes(t *testing.T) {
	d := MustParse("2024-02-28").Add(2)
	if got, want := d.String(), "2024-03-01"; got != want {
		t.Errorf("Add(2) = %s, want %s", got, want)
	}
}

func TestDate_DaysSince(t *testing.T) {
	a := MustParse("2024-03-01")
	b := MustParse("2024-03-31")
	if got := b.DaysSince(a); got != 30 {
		t.Errorf("DaysSince = %d, want 30", got)
	}
	if got := a.DaysSince(b); got != -30 {
		t.Errorf("DaysSince reversed = %d, want -30", got)
	}
}

func TestRange(t *testing.T) {
	r := NewRange(MustParse("2024-01-01"), MustParse("2024-01-05"))
	if got := r.Days(); got != 5 {
		t.Errorf("Days = %d, want 5", got)
	}
	if !r.Contains(MustParse("2024-01-01")) || !r.Contains(MustParse("2024-01-05")) {
		t.Error("range boundaries must be included")
	}
	if r.Contains(MustParse("2024-01-06")) {
		t.Error("range must not contain dates after To")
	}

	var n int
	for range r.All() {
		n++
	}
	if n != 5 {
		t.Errorf("All yielded %d dates, want 5", n)
	}

	inverted := NewRange(MustParse("2024-01-05"), MustParse("2024-01-01"))
	if got := inverted.Days(); got != 0 {
		t.Errorf("inverted range Days = %d, want 0", got)
	}
	for range inverted.All() {
		t.Fatal("inverted range must yield nothing")
	}
}
