package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is a resolved report scope: either a specific calendar month or
// the unbounded all-time selector (the zero value).
type Period struct {
	Month int // 1-12, 0 for all time
	Year  int
}

// ResolvePeriod parses a period selector. The empty string and "all"
// resolve to the all-time period; anything else must be a YYYY-MM token
// with a month between 1 and 12.
func ResolvePeriod(selector string) (Period, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" || selector == "all" {
		return Period{}, nil
	}

	parts := strings.SplitN(selector, "-", 2)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, selector)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, selector)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, selector)
	}
	return Period{Month: month, Year: year}, nil
}

// All reports whether the period is the unbounded all-time selector.
func (p Period) All() bool {
	return p.Month == 0
}

// Range returns the inclusive first and last day of the month. Day zero of
// the following month yields the actual month length, leap years included.
func (p Period) Range() (start, end Date) {
	start = NewDate(p.Year, p.Month, 1)
	end = Date{Time: time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC)}
	return start, end
}

func (p Period) String() string {
	if p.All() {
		return "all"
	}
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
