// Package calendar is the date service the picker views are built on.
//
// Views never call time.Now or read locale data directly; they go through a
// Service so tests can pin "today", the locale and the week layout.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Date is a calendar day with no time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ErrInvalidDate is returned when date components do not name a real day.
var ErrInvalidDate = errors.New("invalid calendar date")

// Service is the calendar capability consumed by the navigator and the grid.
type Service interface {
	Today() Date
	AddMonths(d Date, n int) Date
	DaysInMonth(d Date) int
	Weekday(d Date) time.Weekday
	LastWeekday() time.Weekday
	ShortWeekdaySymbols() []string
	FormatMonthYear(d Date) string
}

// Make validates the components and returns the corresponding Date.
func Make(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if n := daysIn(year, month); day < 1 || day > n {
		return Date{}, fmt.Errorf("%w: day %d of %04d-%02d", ErrInvalidDate, day, year, int(month))
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustMake is Make for literals known to be valid.
func MustMake(year int, month time.Month, day int) Date {
	d, err := Make(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar day of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ToTime returns midnight of d in loc.
func ToTime(d Date, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Valid reports whether d names a real day.
func Valid(d Date) bool {
	_, err := Make(d.Year, d.Month, d.Day)
	return err == nil
}

// Format renders d as YYYY-MM-DD.
func Format(d Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Parse reads a YYYY-MM-DD date.
func Parse(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// addMonths shifts d by n months, clamping the day to the target month's
// length instead of overflowing into the month after it.
func addMonths(d Date, n int) Date {
	total := d.Year*12 + int(d.Month-1) + n
	year, month := total/12, total%12
	if month < 0 {
		month += 12
		year--
	}
	m := time.Month(month + 1)
	return Date{Year: year, Month: m, Day: min(d.Day, daysIn(year, m))}
}

func daysIn(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}
