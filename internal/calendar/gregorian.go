package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// Gregorian is the production Service.
type Gregorian struct {
	locale  Locale
	loc     *time.Location
	now     func() time.Time
	lastDay time.Weekday
}

type Option func(*Gregorian)

func WithLocale(l Locale) Option {
	return func(g *Gregorian) { g.locale = l }
}

func WithLocation(loc *time.Location) Option {
	return func(g *Gregorian) {
		if loc != nil {
			g.loc = loc
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Gregorian) {
		if now != nil {
			g.now = now
		}
	}
}

func WithLastWeekday(d time.Weekday) Option {
	return func(g *Gregorian) { g.lastDay = d }
}

func NewGregorian(opts ...Option) *Gregorian {
	g := &Gregorian{
		locale:  English(),
		loc:     time.Local,
		now:     time.Now,
		lastDay: time.Saturday,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *Gregorian) Today() Date {
	return FromTime(g.now().In(g.loc))
}

func (g *Gregorian) AddMonths(d Date, n int) Date {
	return addMonths(d, n)
}

func (g *Gregorian) DaysInMonth(d Date) int {
	return daysIn(d.Year, d.Month)
}

func (g *Gregorian) Weekday(d Date) time.Weekday {
	return ToTime(d, time.UTC).Weekday()
}

func (g *Gregorian) LastWeekday() time.Weekday { return g.lastDay }

// referenceSunday anchors the weekday symbol lookup.
var referenceSunday = time.Date(2024, time.April, 14, 12, 0, 0, 0, time.UTC)

// ShortWeekdaySymbols returns abbreviated day names indexed by time.Weekday.
func (g *Gregorian) ShortWeekdaySymbols() []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = monday.Format(referenceSunday.AddDate(0, 0, i), "Mon", g.locale.Code)
	}
	return out
}

func (g *Gregorian) FormatMonthYear(d Date) string {
	return monday.Format(ToTime(d, time.UTC), "January 2006", g.locale.Code)
}

// Locale returns the active locale.
func (g *Gregorian) Locale() Locale { return g.locale }

// ParseWeekday maps an English weekday name ("saturday", "sat") to its value.
func ParseWeekday(s string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || (len(v) >= 3 && strings.HasPrefix(name, v)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
