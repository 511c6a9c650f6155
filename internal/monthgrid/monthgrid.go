// Package monthgrid lays a month out as rows of weeks.
package monthgrid

import (
	"fmt"
	"time"

	"github.com/jask/calendar/internal/calendar"
)

// WeekRow is one displayed week: 1 to 7 dates, never padded with days from
// neighbouring months.
type WeekRow []calendar.Date

// MonthGrid covers days 1..N of a single month.
type MonthGrid []WeekRow

// Build returns the grid for the month containing selected. A row is closed
// after the calendar's last weekday and after the month's final day.
func Build(cal calendar.Service, selected calendar.Date) (MonthGrid, error) {
	days := cal.DaysInMonth(selected)
	grid := make(MonthGrid, 0, 6)
	week := make(WeekRow, 0, 7)
	for day := 1; day <= days; day++ {
		d, err := calendar.Make(selected.Year, time.Month(selected.Month), day)
		if err != nil {
			return nil, fmt.Errorf("build month grid %04d-%02d: %w", selected.Year, selected.Month, err)
		}
		week = append(week, d)
		if cal.Weekday(d) == cal.LastWeekday() || day == days {
			grid = append(grid, week)
			week = make(WeekRow, 0, 7)
		}
	}
	return grid, nil
}

// Dates flattens the grid back into day order.
func (g MonthGrid) Dates() []calendar.Date {
	var out []calendar.Date
	for _, row := range g {
		out = append(out, row...)
	}
	return out
}

// Locate returns the row and column holding d.
func (g MonthGrid) Locate(d calendar.Date) (row, col int, ok bool) {
	for r, week := range g {
		for c, cell := range week {
			if cell == d {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// At returns the date at row, col if that cell exists.
func (g MonthGrid) At(row, col int) (calendar.Date, bool) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return calendar.Date{}, false
	}
	return g[row][col], true
}

// WeekdayHeader returns seven labels read from the short weekday symbols at
// indexes 1..7 modulo the table length. On a Sunday-first table that puts
// Sunday last.
func WeekdayHeader(cal calendar.Service) []string {
	symbols := cal.ShortWeekdaySymbols()
	if len(symbols) == 0 {
		return nil
	}
	out := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		out = append(out, symbols[i%len(symbols)])
	}
	return out
}
