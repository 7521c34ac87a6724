package cmd

import (
	"flag"
	"fmt"

	"github.com/Go2Engle/EtsyTrackr/date"
)

// rangeFlags is the date range selection shared by the reporting commands.
type rangeFlags struct {
	month string
	year  string
	from  string
	to    string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.month, "month", "", `Limit to a calendar month, "YYYY-MM".`)
	f.StringVar(&r.year, "year", "", `Limit to a calendar year, "YYYY".`)
	f.StringVar(&r.from, "from", "", `Start date, "YYYY-MM-DD". Open by default.`)
	f.StringVar(&r.to, "to", "", `End date, "YYYY-MM-DD". Open by default.`)
}

// Range interprets the flags. Month and year win over from/to; no flag at all
// means everything.
func (r *rangeFlags) Range() (date.Range, error) {
	switch {
	case r.month != "":
		d, err := date.Parse(r.month + "-01")
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid -month %q: %w", r.month, err)
		}
		return date.NewRange(d, date.Monthly), nil
	case r.year != "":
		d, err := date.Parse(r.year + "-01-01")
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid -year %q: %w", r.year, err)
		}
		return date.NewRange(d, date.Yearly), nil
	}

	var rng date.Range
	if r.from != "" {
		d, err := date.Parse(r.from)
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid -from %q: %w", r.from, err)
		}
		rng.From = d
	}
	if r.to != "" {
		d, err := date.Parse(r.to)
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid -to %q: %w", r.to, err)
		}
		rng.To = d
	}
	return rng, nil
}
