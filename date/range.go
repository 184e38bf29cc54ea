package date

// Range represents an inclusive range of dates. A zero boundary leaves
// that side unbounded.
type Range struct{ From, To Date }

// NewRange returns the range between two dates, boundaries included.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// IsZero reports whether both boundaries are unset.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains reports whether the date is within the range, boundaries
// included. Unset boundaries match everything on that side.
func (r Range) Contains(d Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}
