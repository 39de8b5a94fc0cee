package actions

import (
	"fmt"
	"strings"
	"time"
)

const readMonthFormat = "2006-1" // Permissive read format (allows single-digit month).

// MonthFormat is the format used to represent months as strings (ISO-8601 year-month).
const MonthFormat = "2006-01"

// Month represents a calendar year-month bucket, the reporting period of an
// actions report.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	m := Month{year, month}
	m.y, m.m, _ = m.time().Date()
	return m
}

// MonthOf returns the Month containing the instant t, observed in loc.
func MonthOf(t time.Time, loc *time.Location) Month {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return NewMonth(local.Year(), local.Month())
}

// time returns a canonical representation of the month (first day, midnight UTC).
func (m Month) time() time.Time { return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.time().Month() }

// IsZero returns true if the month is the zero value, i.e. no period could be
// derived for the record.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// Before reports whether the month m is before x.
func (m Month) Before(x Month) bool { return m.time().Before(x.time()) }

// After reports whether the month m is after x.
func (m Month) After(x Month) bool { return m.time().After(x.time()) }

// Compare orders months chronologically, returning -1, 0 or +1.
func (m Month) Compare(x Month) int { return m.time().Compare(x.time()) }

// String formats the month in its standard "2006-01" form.
func (m Month) String() string { return m.time().Format(MonthFormat) }

// ParseMonth parses a Month from a string. It is lenient and accepts "2025-7"
// as well as "2025-07".
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse(readMonthFormat, strings.TrimSpace(str))
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return NewMonth(on.Year(), on.Month()), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}
