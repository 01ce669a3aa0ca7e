package command

import (
	"github.com/google/uuid"
	"github.com/kalendu/kalendu/pkg/calendar"
	"github.com/kalendu/kalendu/pkg/event"
	log "github.com/sirupsen/logrus"
)

// Exporter writes a calendar's events to a file and returns its absolute
// path.
type Exporter interface {
	Export(events []event.Event, filename string) (string, error)
}

// Session carries the state one command stream operates on: the calendar
// directory, the name of the active calendar, and the configured exporters.
// It is threaded explicitly through Dispatch so several sessions can share
// a process without sharing dispatcher state.
type Session struct {
	ID        string
	directory *calendar.Directory
	active    string
	csv       Exporter
	ical      Exporter
}

// NewSession returns a session over the given directory. The active
// calendar is unset until Use succeeds.
func NewSession(directory *calendar.Directory, csv, ical Exporter) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		directory: directory,
		csv:       csv,
		ical:      ical,
	}
	log.WithField("session", s.ID).Debug("session created")
	return s
}

// Directory exposes the calendar registry.
func (s *Session) Directory() *calendar.Directory {
	return s.directory
}

// Use makes the named calendar the one unqualified event commands target.
func (s *Session) Use(name string) error {
	if _, ok := s.directory.Get(name); !ok {
		return &calendar.NotFoundError{Name: name}
	}
	s.active = name
	log.WithField("session", s.ID).Debugf("active calendar is now %q", name)
	return nil
}

// ActiveName returns the name of the active calendar, or "" if none is set.
func (s *Session) ActiveName() string {
	return s.active
}

// Active resolves the active calendar. The second result is false when no
// calendar has been selected yet.
func (s *Session) Active() (*calendar.Calendar, bool) {
	if s.active == "" {
		return nil, false
	}
	return s.directory.Get(s.active)
}

// EditCalendar applies a calendar-level property edit. Renaming keeps the
// active reference pointing at the renamed calendar.
func (s *Session) EditCalendar(name, property, value string) error {
	switch property {
	case "name":
		if err := s.directory.Rename(name, value); err != nil {
			return err
		}
		if s.active == name {
			s.active = value
		}
		return nil
	case "timezone":
		return s.directory.SetTimezone(name, value)
	default:
		return &InvalidCommandError{Detail: "unknown calendar property: " + property}
	}
}
