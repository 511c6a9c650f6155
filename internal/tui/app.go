package tui

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/calendar/internal/calendar"
	"github.com/jask/calendar/internal/state"
)

// Screen layout, in lines from the top and columns from the left.
const (
	marginX  = 2
	navLine  = 2
	gridLine = 4
)

type Options struct {
	Title    string
	Bindings []KeyBinding
	Mouse    bool
}

// App is the single calendar screen. It owns the selected date store and
// re-renders the navigator and the grid from its snapshot.
type App struct {
	cal         calendar.Service
	store       *state.Store
	keys        *KeyRegistry
	nav         Navigator
	grid        *GridView
	title       string
	mouse       bool
	status      string
	statusErr   bool
	syncErr     error
	width       int
	height      int
	unsubscribe func()
}

func New(cal calendar.Service, store *state.Store, opts Options) *App {
	bindings := opts.Bindings
	if len(bindings) == 0 {
		bindings = DefaultKeyBindings()
	}
	a := &App{
		cal:   cal,
		store: store,
		keys:  NewKeyRegistry(bindings),
		nav:   NewNavigator(cal, store.Dispatch),
		grid:  NewGridView(cal, store.Dispatch),
		title: opts.Title,
		mouse: opts.Mouse,
		width: 60,
	}
	if err := a.grid.Sync(store.Snapshot()); err != nil {
		log.Printf("grid: %v", err)
		a.setError(err)
	}
	a.unsubscribe = store.Subscribe(a.onDateChanged)
	return a
}

func (a *App) onDateChanged(old, next calendar.Date) {
	log.Printf("selected %s -> %s", calendar.Format(old), calendar.Format(next))
	if err := a.grid.Sync(next); err != nil {
		log.Printf("grid: %v", err)
		a.syncErr = err
	}
}

func (a *App) setError(err error) {
	if err == nil {
		a.status = ""
		a.statusErr = false
		return
	}
	a.status = err.Error()
	a.statusErr = true
}

// Selected returns the current snapshot of the selected date.
func (a *App) Selected() calendar.Date { return a.store.Snapshot() }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil
	case StatusMsg:
		a.status = m.Text
		a.statusErr = m.IsErr
		return a, nil
	case tea.KeyMsg:
		return a, a.afterDispatch(a.handleKey(m))
	case tea.MouseMsg:
		if !a.mouse || m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
			return a, nil
		}
		return a, a.afterDispatch(a.handleClick(m.X, m.Y))
	}
	return a, nil
}

// afterDispatch surfaces a grid error raised by the last state change in
// place of the normal status update.
func (a *App) afterDispatch(cmd tea.Cmd) tea.Cmd {
	if a.syncErr == nil {
		return cmd
	}
	err := a.syncErr
	a.syncErr = nil
	return ErrorCmd(err)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch a.keys.Action(msg, scopeCalendar) {
	case actionQuit:
		if a.unsubscribe != nil {
			a.unsubscribe()
			a.unsubscribe = nil
		}
		return tea.Quit
	case actionPreviousMonth:
		a.nav.GoToPreviousMonth()
		return a.monthStatus()
	case actionNextMonth:
		a.nav.GoToNextMonth()
		return a.monthStatus()
	case actionToday:
		a.store.Dispatch(state.GoToday{})
		return StatusCmd("Today is " + calendar.Format(a.store.Snapshot()))
	case actionFocusLeft:
		a.grid.MoveFocus(-1)
	case actionFocusRight:
		a.grid.MoveFocus(1)
	case actionFocusUp:
		a.grid.MoveFocusRow(-1)
	case actionFocusDown:
		a.grid.MoveFocusRow(1)
	case actionSelect:
		if a.grid.SelectFocused() {
			return a.selectedStatus()
		}
	}
	return nil
}

func (a *App) handleClick(x, y int) tea.Cmd {
	col := x - marginX
	if col < 0 {
		return nil
	}
	if y == navLine {
		switch a.nav.HitTest(a.store.Snapshot(), col) {
		case -1:
			a.nav.GoToPreviousMonth()
			return a.monthStatus()
		case 1:
			a.nav.GoToNextMonth()
			return a.monthStatus()
		}
		return nil
	}
	row := y - gridLine - gridHeaderLines
	if row < 0 {
		return nil
	}
	// The last column of each cell is the gap before the next one.
	if col%cellWidth == cellWidth-1 {
		return nil
	}
	if _, ok := a.grid.SelectAt(row, col/cellWidth); ok {
		return a.selectedStatus()
	}
	return nil
}

func (a *App) monthStatus() tea.Cmd {
	return StatusCmd(a.nav.FormatMonthYear(a.store.Snapshot()))
}

func (a *App) selectedStatus() tea.Cmd {
	return StatusCmd("Selected " + calendar.Format(a.store.Snapshot()))
}

// selectedLabel is the date chip shown at the right of the status bar.
func (a *App) selectedLabel(d calendar.Date) string {
	label := calendar.Format(d)
	if symbols := a.cal.ShortWeekdaySymbols(); len(symbols) == 7 {
		label += " " + symbols[a.cal.Weekday(d)]
	}
	return label
}

func (a *App) View() string {
	selected := a.store.Snapshot()
	body := []string{
		titleStyle.Render(a.title),
		"",
		a.nav.View(selected),
		"",
	}
	body = append(body, strings.Split(a.grid.View(selected), "\n")...)

	margin := strings.Repeat(" ", marginX)
	lines := make([]string, 0, len(body)+3)
	for _, l := range body {
		lines = append(lines, margin+l)
	}
	lines = append(lines, "",
		renderStatusBar(a.status, a.statusErr, a.selectedLabel(selected), a.width),
		renderFooter(a.keys.BindingsForScope(scopeCalendar), a.width),
	)
	out := strings.Join(lines, "\n")
	if a.height > 0 {
		out = clipHeight(out, a.height)
	}
	return out
}
