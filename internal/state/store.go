// Package state owns the selected date.
//
// Views read a Snapshot and request changes with Dispatch; nothing else
// writes the value. All dispatches happen on the UI event loop, so the store
// does no locking.
package state

import (
	"github.com/jask/calendar/internal/calendar"
)

// Action is a requested change to the selected date.
type Action interface {
	isAction()
}

// SelectDate replaces the selection with Date.
type SelectDate struct {
	Date calendar.Date
}

// ShiftMonth moves the selection by Months calendar months.
type ShiftMonth struct {
	Months int
}

// GoToday selects the calendar's current day.
type GoToday struct{}

func (SelectDate) isAction() {}
func (ShiftMonth) isAction() {}
func (GoToday) isAction()    {}

// Reduce applies a to current. Invalid SelectDate targets leave the
// selection unchanged.
func Reduce(cal calendar.Service, current calendar.Date, a Action) calendar.Date {
	switch a := a.(type) {
	case SelectDate:
		if !calendar.Valid(a.Date) {
			return current
		}
		return a.Date
	case ShiftMonth:
		if a.Months == 0 {
			return current
		}
		return cal.AddMonths(current, a.Months)
	case GoToday:
		return cal.Today()
	default:
		return current
	}
}

// Listener is told about every change to the selection.
type Listener func(old, next calendar.Date)

type subscription struct {
	id int
	fn Listener
}

// Store holds exactly one selected date.
type Store struct {
	cal       calendar.Service
	selected  calendar.Date
	listeners []subscription
	nextID    int
}

// NewStore starts on the calendar's today.
func NewStore(cal calendar.Service) *Store {
	return &Store{cal: cal, selected: cal.Today()}
}

// NewStoreAt starts on d.
func NewStoreAt(cal calendar.Service, d calendar.Date) *Store {
	return &Store{cal: cal, selected: d}
}

func (s *Store) Snapshot() calendar.Date { return s.selected }

// Dispatch reduces a and notifies listeners if the selection changed. It
// reports whether it did.
func (s *Store) Dispatch(a Action) bool {
	old := s.selected
	next := Reduce(s.cal, old, a)
	if next == old {
		return false
	}
	s.selected = next
	for _, sub := range append([]subscription(nil), s.listeners...) {
		sub.fn(old, next)
	}
	return true
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
