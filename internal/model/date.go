package model

import (
	"fmt"
	"time"
)

// Layouts used across the app.
const (
	FileLayout = "02-01-2006"      // dd-MM-yyyy, as stored on disk
	LongLayout = "January 2, 2006" // detail pane
	isoLayout  = "2006-01-02"      // JSON export
)

// Date is a calendar day with no time of day and no zone.
// The zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day t falls on in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today is DateOf in the local zone.
func Today(now time.Time) Date { return DateOf(now.Local()) }

// ParseDate parses a dd-MM-yyyy string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(FileLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) midnight() time.Time { return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC) }

// String formats the date as dd-MM-yyyy.
func (d Date) String() string { return d.midnight().Format(FileLayout) }

// Long formats the date as "Month D, YYYY".
func (d Date) Long() string { return d.midnight().Format(LongLayout) }

// AddDays returns d shifted by n days, normalizing month and year overflow.
func (d Date) AddDays(n int) Date { return DateOf(d.midnight().AddDate(0, 0, n)) }

// AddMonths returns d shifted by n months; days past the month end roll over like time.AddDate.
func (d Date) AddMonths(n int) Date { return DateOf(d.midnight().AddDate(0, n, 0)) }

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.midnight().Format(isoLayout)), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	t, err := time.Parse(isoLayout, string(b))
	if err != nil {
		return fmt.Errorf("parse date %q: %w", b, err)
	}
	*d = DateOf(t)
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
