package date

import "iter"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range [from, to]. The bounds are not reordered;
// an inverted range is simply empty.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains reports whether the date lies in the range, boundaries included.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// Days returns the number of days the range spans, boundaries included.
// An inverted range spans zero days.
func (r Range) Days() int {
	if r.To.Before(r.From) {
		return 0
	}
	return r.To.DaysSince(r.From) + 1
}

// All returns an iterator over every date in the range, in chronological order.
func (r Range) All() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}
