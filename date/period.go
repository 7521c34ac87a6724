package date

import (
	"fmt"
	"strings"
	"time"
)

type Period int

const (
	Daily Period = iota
	Monthly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "daily", "day":
		return Daily, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}

// StartOf returns the date of begining of a given period
func (d Date) StartOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Monthly:
		return New(d.Year(), d.Month(), 1)
	case Yearly:
		return New(d.Year(), time.January, 1)
	default:
		panic("unknown period")
	}
}

// EndOf returns the date of end of a given period
func (d Date) EndOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Monthly:
		return New(d.Year(), d.Month()+1, 0)
	case Yearly:
		return New(d.Year(), time.December, 31)
	default:
		panic("unknown period")
	}
}
