package tui

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/calendar/internal/calendar"
	"github.com/jask/calendar/internal/state"
)

const (
	prevChevron = " ‹ "
	nextChevron = " › "
	labelGap    = "  "
)

// Dispatch hands an action to the state holder and reports whether the
// selection changed.
type Dispatch func(state.Action) bool

// Navigator is the month header: a label between previous and next buttons.
type Navigator struct {
	cal      calendar.Service
	dispatch Dispatch
}

func NewNavigator(cal calendar.Service, dispatch Dispatch) Navigator {
	return Navigator{cal: cal, dispatch: dispatch}
}

// GoToPreviousMonth moves the selection back one calendar month.
func (n Navigator) GoToPreviousMonth() bool {
	return n.dispatch(state.ShiftMonth{Months: -1})
}

// GoToNextMonth moves the selection forward one calendar month.
func (n Navigator) GoToNextMonth() bool {
	return n.dispatch(state.ShiftMonth{Months: 1})
}

func (n Navigator) FormatMonthYear(d calendar.Date) string {
	return n.cal.FormatMonthYear(d)
}

func (n Navigator) View(selected calendar.Date) string {
	return chevronStyle.Render(prevChevron) +
		labelGap +
		monthLabelStyle.Render(n.FormatMonthYear(selected)) +
		labelGap +
		chevronStyle.Render(nextChevron)
}

// HitTest maps a column on the header line to -1 (previous), +1 (next) or 0.
func (n Navigator) HitTest(selected calendar.Date, x int) int {
	prevW := ansi.StringWidth(prevChevron)
	if x >= 0 && x < prevW {
		return -1
	}
	nextStart := prevW + 2*ansi.StringWidth(labelGap) + ansi.StringWidth(n.FormatMonthYear(selected))
	if x >= nextStart && x < nextStart+ansi.StringWidth(nextChevron) {
		return 1
	}
	return 0
}
