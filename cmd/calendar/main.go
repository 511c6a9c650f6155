package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jask/calendar/internal/calendar"
	"github.com/jask/calendar/internal/config"
	"github.com/jask/calendar/internal/printer"
	"github.com/jask/calendar/internal/state"
	"github.com/jask/calendar/internal/tui"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "init-config" {
		if err := initConfig(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "init-config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	closeLog, err := setupLogging(cfg.Log.File)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	cal := newCalendar(cfg)
	store := state.NewStore(cal)

	if cfg.UI.Print || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := printer.New(cfg.UI.Title).Print(os.Stdout, cal, store.Snapshot()); err != nil {
			fmt.Fprintf(os.Stderr, "print: %v\n", err)
			os.Exit(1)
		}
		return
	}

	bindings := tui.ApplyActionKeybindings(tui.DefaultKeyBindings(), cfg.Keys)
	app := tui.New(cal, store, tui.Options{
		Title:    cfg.UI.Title,
		Bindings: bindings,
		Mouse:    cfg.UI.Mouse,
	})

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// initConfig writes the default config file and reports where it went.
func initConfig(w io.Writer) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "wrote %s\n", path)
	return err
}

func newCalendar(cfg config.Config) *calendar.Gregorian {
	loc, err := cfg.Location()
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}
	return calendar.NewGregorian(
		calendar.WithLocale(calendar.MatchLocale(cfg.UI.Locale)),
		calendar.WithLocation(loc),
		calendar.WithLastWeekday(cfg.LastWeekday()),
	)
}

// setupLogging sends the standard logger to path, or nowhere when path is
// empty so log lines never land on the terminal UI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "calendar")
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return func() { _ = f.Close() }, nil
}
