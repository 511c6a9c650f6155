package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const scopeCalendar = "calendar"

const (
	actionQuit          = "quit"
	actionPreviousMonth = "previous-month"
	actionNextMonth     = "next-month"
	actionToday         = "today"
	actionFocusLeft     = "focus-left"
	actionFocusRight    = "focus-right"
	actionFocusUp       = "focus-up"
	actionFocusDown     = "focus-down"
	actionSelect        = "select"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
	Hidden      bool
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Action returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	k = strings.ToLower(strings.TrimSpace(k))
	if k == "space" {
		return " "
	}
	return k
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"[", "pgup"}, Action: actionPreviousMonth, Description: "prev month", Scopes: []string{scopeCalendar}},
		{Keys: []string{"]", "pgdown"}, Action: actionNextMonth, Description: "next month", Scopes: []string{scopeCalendar}},
		{Keys: []string{"left", "h"}, Action: actionFocusLeft, Description: "day", Scopes: []string{scopeCalendar}, Hidden: true},
		{Keys: []string{"right", "l"}, Action: actionFocusRight, Description: "day", Scopes: []string{scopeCalendar}, Hidden: true},
		{Keys: []string{"up", "k"}, Action: actionFocusUp, Description: "row", Scopes: []string{scopeCalendar}, Hidden: true},
		{Keys: []string{"down", "j"}, Action: actionFocusDown, Description: "row", Scopes: []string{scopeCalendar}, Hidden: true},
		{Keys: []string{"enter", "space"}, Action: actionSelect, Description: "select", Scopes: []string{scopeCalendar}},
		{Keys: []string{"t"}, Action: actionToday, Description: "today", Scopes: []string{scopeCalendar}},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{"*"}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an override.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := b
		next.Keys = append([]string(nil), b.Keys...)
		next.Scopes = append([]string(nil), b.Scopes...)
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
