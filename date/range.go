package date

import "fmt"

// Range represents an inclusive range of dates. A zero From or To leaves that
// side of the range open.
type Range struct{ From, To Date }

// NewRange return a well known period around d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// IsZero reports whether both bounds are open, i.e. the range matches everything.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains return true if date is included in the range (boundaries included).
// An open boundary matches any date on that side.
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// Identifier computes a short unique identifier for the Range.
func (r Range) Identifier() string {
	switch {
	case r.IsZero():
		return "all"
	case r.From == r.To:
		return r.From.String()
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return r.From.Format(MonthKey)
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return r.From.Format("2006")
	default:
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
}
