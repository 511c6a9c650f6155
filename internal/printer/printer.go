// Package printer writes a month as plain text, in the spirit of cal(1).
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/jask/calendar/internal/calendar"
	"github.com/jask/calendar/internal/monthgrid"
)

const cellWidth = 4

// Printer renders the month containing the selected date.
type Printer struct {
	Title     string
	highlight *color.Color
	heading   *color.Color
}

// New returns a Printer. Colour output follows fatih/color's terminal
// detection unless NoColor is set on the package.
func New(title string) *Printer {
	return &Printer{
		Title:     title,
		highlight: color.New(color.FgBlack, color.BgCyan, color.Bold),
		heading:   color.New(color.FgCyan, color.Bold),
	}
}

func (p *Printer) Print(w io.Writer, cal calendar.Service, selected calendar.Date) error {
	grid, err := monthgrid.Build(cal, selected)
	if err != nil {
		return err
	}
	width := 7*cellWidth - 1

	var b strings.Builder
	if p.Title != "" {
		b.WriteString(center(p.Title, width))
		b.WriteString("\n")
	}
	b.WriteString(p.heading.Sprint(center(cal.FormatMonthYear(selected), width)))
	b.WriteString("\n")

	labels := monthgrid.WeekdayHeader(cal)
	for i, l := range labels {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%3s", truncate(l, cellWidth-1)))
	}
	b.WriteString("\n")

	for _, week := range grid {
		for i, d := range week {
			if i > 0 {
				b.WriteString(" ")
			}
			cell := fmt.Sprintf("%3d", d.Day)
			if d == selected {
				if color.NoColor {
					// Without colour the selection needs a visible mark.
					cell = fmt.Sprintf("%3s", "*"+strconv.Itoa(d.Day))
				} else {
					cell = p.highlight.Sprint(cell)
				}
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write month: %w", err)
	}
	return nil
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
