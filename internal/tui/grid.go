package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/calendar/internal/calendar"
	"github.com/jask/calendar/internal/monthgrid"
	"github.com/jask/calendar/internal/state"
)

// cellWidth is the column pitch of the grid, gap included.
const cellWidth = 5

// gridHeaderLines is the weekday header plus the divider above the rows.
const gridHeaderLines = 2

type cellKind int

const (
	cellPlain cellKind = iota
	cellFocused
	cellSelected
)

// GridView renders the month grid and tracks the keyboard focus.
type GridView struct {
	cal      calendar.Service
	dispatch Dispatch
	grid     monthgrid.MonthGrid
	header   []string
	focus    int // day of month, 0 when there is no grid
}

func NewGridView(cal calendar.Service, dispatch Dispatch) *GridView {
	return &GridView{
		cal:      cal,
		dispatch: dispatch,
		header:   monthgrid.WeekdayHeader(cal),
	}
}

// Sync rebuilds the grid for selected's month and moves the focus onto
// selected. On error the previous grid is kept.
func (g *GridView) Sync(selected calendar.Date) error {
	grid, err := monthgrid.Build(g.cal, selected)
	if err != nil {
		return err
	}
	g.grid = grid
	g.focus = selected.Day
	return nil
}

func (g *GridView) Grid() monthgrid.MonthGrid { return g.grid }

// Focused returns the date under the keyboard focus.
func (g *GridView) Focused() (calendar.Date, bool) {
	dates := g.grid.Dates()
	if g.focus < 1 || g.focus > len(dates) {
		return calendar.Date{}, false
	}
	return dates[g.focus-1], true
}

// MoveFocus shifts the focus by delta days. Moves that would leave the
// month are ignored.
func (g *GridView) MoveFocus(delta int) bool {
	next := g.focus + delta
	if next < 1 || next > len(g.grid.Dates()) {
		return false
	}
	g.focus = next
	return true
}

// MoveFocusRow moves the focus to the same column of the displayed row delta
// rows away. Rows are not padded, so a column past the end of a short row
// lands on that row's last cell. Moves off the grid are ignored.
func (g *GridView) MoveFocusRow(delta int) bool {
	d, ok := g.Focused()
	if !ok {
		return false
	}
	row, col, ok := g.grid.Locate(d)
	if !ok {
		return false
	}
	row += delta
	if row < 0 || row >= len(g.grid) {
		return false
	}
	col = min(col, len(g.grid[row])-1)
	next, ok := g.grid.At(row, col)
	if !ok {
		return false
	}
	g.focus = next.Day
	return true
}

// SelectFocused activates the focused cell.
func (g *GridView) SelectFocused() bool {
	d, ok := g.Focused()
	if !ok {
		return false
	}
	return g.dispatch(state.SelectDate{Date: d})
}

// SelectAt activates the cell at row, col. Positions without a cell, such as
// the missing days of a short first week, do nothing.
func (g *GridView) SelectAt(row, col int) (calendar.Date, bool) {
	d, ok := g.grid.At(row, col)
	if !ok {
		return calendar.Date{}, false
	}
	g.focus = d.Day
	g.dispatch(state.SelectDate{Date: d})
	return d, true
}

func (g *GridView) kindOf(d, selected calendar.Date) cellKind {
	switch {
	case d == selected:
		return cellSelected
	case d.Day == g.focus:
		return cellFocused
	default:
		return cellPlain
	}
}

// Height is the number of lines View produces.
func (g *GridView) Height() int {
	return gridHeaderLines + len(g.grid)
}

func (g *GridView) View(selected calendar.Date) string {
	var b strings.Builder
	for i, label := range g.header {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(weekdayStyle.Width(cellWidth - 1).Align(lipgloss.Center).Render(ansi.Truncate(label, cellWidth-1, "")))
	}
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", 7*cellWidth-1)))
	for _, week := range g.grid {
		b.WriteString("\n")
		cells := make([]string, 0, len(week))
		for _, d := range week {
			cells = append(cells, g.renderCell(d, g.kindOf(d, selected)))
		}
		b.WriteString(strings.Join(cells, " "))
	}
	return b.String()
}

func (g *GridView) renderCell(d calendar.Date, kind cellKind) string {
	text := fmt.Sprintf(" %2d ", d.Day)
	switch kind {
	case cellSelected:
		return selectedStyle.Render(text)
	case cellFocused:
		return focusedStyle.Render(text)
	default:
		return dayStyle.Render(text)
	}
}
