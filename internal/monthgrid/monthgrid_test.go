package monthgrid

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/calendar/internal/calendar"
)

func TestBuildApril2024(t *testing.T) {
	cal := calendar.NewGregorian()
	grid, err := Build(cal, calendar.MustMake(2024, time.April, 15))
	require.NoError(t, err)
	require.Len(t, grid, 5)

	first := grid[0]
	require.Len(t, first, 6)
	require.Equal(t, calendar.MustMake(2024, time.April, 1), first[0])
	require.Equal(t, calendar.MustMake(2024, time.April, 6), first[5])

	last := grid[len(grid)-1]
	require.Equal(t, calendar.MustMake(2024, time.April, 30), last[len(last)-1])
	require.Len(t, last, 3)
}

func TestBuildInvariantsEveryMonth(t *testing.T) {
	for _, lastDay := range []time.Weekday{time.Saturday, time.Sunday, time.Wednesday} {
		cal := calendar.NewGregorian(calendar.WithLastWeekday(lastDay))
		for year := 2023; year <= 2025; year++ {
			for m := time.January; m <= time.December; m++ {
				sel := calendar.MustMake(year, m, 1)
				grid, err := Build(cal, sel)
				if err != nil {
					t.Fatalf("Build(%s): %v", calendar.Format(sel), err)
				}
				assertGridInvariants(t, cal, sel, grid)
			}
		}
	}
}

func assertGridInvariants(t *testing.T, cal calendar.Service, sel calendar.Date, grid MonthGrid) {
	t.Helper()
	n := cal.DaysInMonth(sel)
	dates := grid.Dates()
	if len(dates) != n {
		t.Fatalf("%s: %d dates, want %d", calendar.Format(sel), len(dates), n)
	}
	for i, d := range dates {
		if d.Year != sel.Year || d.Month != sel.Month || d.Day != i+1 {
			t.Fatalf("%s: dates[%d] = %s", calendar.Format(sel), i, calendar.Format(d))
		}
	}
	for r, row := range grid {
		if len(row) < 1 || len(row) > 7 {
			t.Fatalf("%s: row %d has %d dates", calendar.Format(sel), r, len(row))
		}
		if len(row) < 7 && r != 0 && r != len(grid)-1 {
			t.Fatalf("%s: inner row %d is short (%d)", calendar.Format(sel), r, len(row))
		}
		end := row[len(row)-1]
		closes := cal.Weekday(end) == cal.LastWeekday() || end.Day == n
		if !closes {
			t.Fatalf("%s: row %d closed on %s", calendar.Format(sel), r, calendar.Format(end))
		}
		for _, d := range row[:len(row)-1] {
			if cal.Weekday(d) == cal.LastWeekday() {
				t.Fatalf("%s: row %d did not close after %s", calendar.Format(sel), r, calendar.Format(d))
			}
		}
	}
}

func TestBuildLeapFebruary(t *testing.T) {
	cal := calendar.NewGregorian()
	grid, err := Build(cal, calendar.MustMake(2024, time.February, 10))
	require.NoError(t, err)
	require.Len(t, grid.Dates(), 29)

	grid, err = Build(cal, calendar.MustMake(2023, time.February, 10))
	require.NoError(t, err)
	require.Len(t, grid.Dates(), 28)
}

// brokenCalendar claims more days than the month has.
type brokenCalendar struct {
	*calendar.Gregorian
}

func (brokenCalendar) DaysInMonth(calendar.Date) int { return 32 }

func TestBuildAbortsOnInvalidDate(t *testing.T) {
	cal := brokenCalendar{calendar.NewGregorian()}
	grid, err := Build(cal, calendar.MustMake(2024, time.January, 1))
	require.Nil(t, grid)
	require.True(t, errors.Is(err, calendar.ErrInvalidDate), "err = %v", err)
}

func TestLocateAndAt(t *testing.T) {
	cal := calendar.NewGregorian()
	grid, err := Build(cal, calendar.MustMake(2024, time.April, 15))
	require.NoError(t, err)

	row, col, ok := grid.Locate(calendar.MustMake(2024, time.April, 20))
	require.True(t, ok)
	require.Equal(t, 2, row)
	require.Equal(t, 6, col)

	_, _, ok = grid.Locate(calendar.MustMake(2024, time.May, 1))
	require.False(t, ok)

	d, ok := grid.At(0, 0)
	require.True(t, ok)
	require.Equal(t, 1, d.Day)
	_, ok = grid.At(0, 6)
	require.False(t, ok, "first row has only six cells")
	_, ok = grid.At(9, 0)
	require.False(t, ok)
}

func TestWeekdayHeaderRotation(t *testing.T) {
	got := WeekdayHeader(calendar.NewGregorian())
	require.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, got)
}

type shortSymbols struct {
	*calendar.Gregorian
}

func (shortSymbols) ShortWeekdaySymbols() []string { return []string{"A", "B", "C"} }

func TestWeekdayHeaderWrapsShortTables(t *testing.T) {
	got := WeekdayHeader(shortSymbols{calendar.NewGregorian()})
	require.Equal(t, []string{"B", "C", "A", "B", "C", "A", "B"}, got)
}
