package date

import "fmt"

// Range represents a half-open range of dates: From is included, To is not.
//
// Market-data providers differ on whether their bounds are inclusive; keeping
// the exclusive end here pushes that translation into each provider.
type Range struct{ From, To Date }

// NewRange returns the range [from, to).
func NewRange(from, to Date) (Range, error) {
	if to.Before(from) {
		return Range{}, fmt.Errorf("invalid range: %s is after %s", from, to)
	}
	return Range{From: from, To: to}, nil
}

// Contains reports whether date is included in the range.
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && date.Before(r.To) }

// Days returns the number of calendar days in the range.
func (r Range) Days() int {
	n := 0
	for on := r.From; on.Before(r.To); on = on.Add(1) {
		n++
	}
	return n
}

// String formats the range in its standard "from..to" form.
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
