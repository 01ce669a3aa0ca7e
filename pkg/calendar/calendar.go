package calendar

import (
	"errors"
	"time"

	"github.com/kalendu/kalendu/pkg/event"
	log "github.com/sirupsen/logrus"
)

// ErrConflict is returned when an auto-declined insert overlaps an existing
// event in the calendar.
var ErrConflict = errors.New("event conflict detected")

// Calendar holds the events of one named, timezone-labeled calendar in
// insertion order. The timezone is a label only; no arithmetic depends on
// it. Events have no identity beyond (name, start, end), so bulk edits
// deliberately touch every match.
type Calendar struct {
	name     string
	timezone string
	events   []event.Event
}

// New returns an empty calendar with the given name and timezone label.
func New(name, timezone string) *Calendar {
	return &Calendar{name: name, timezone: timezone}
}

func (c *Calendar) Name() string {
	return c.name
}

func (c *Calendar) Timezone() string {
	return c.timezone
}

func (c *Calendar) SetTimezone(timezone string) {
	c.timezone = timezone
}

// Events returns a copy of all events in insertion order.
func (c *Calendar) Events() []event.Event {
	out := make([]event.Event, len(c.events))
	copy(out, c.events)
	return out
}

// AddEvent appends an event. With autoDecline the calendar is scanned
// first and the insert is rejected with ErrConflict if any existing event
// overlaps the new one (touching endpoints count). Without autoDecline the
// event is always inserted, overlapping or not.
func (c *Calendar) AddEvent(e event.Event, autoDecline bool) error {
	if autoDecline {
		for _, existing := range c.events {
			if existing.Overlaps(e.Start, e.End) {
				log.Debugf("declined event %q in calendar %q: overlaps %q", e.Name, c.name, existing.Name)
				return ErrConflict
			}
		}
	}
	c.events = append(c.events, e)
	return nil
}

// EventsOn returns the events whose start date equals the given date, in
// insertion order.
func (c *Calendar) EventsOn(date time.Time) []event.Event {
	var out []event.Event
	for _, e := range c.events {
		if event.SameDate(e.Start, date) {
			out = append(out, e)
		}
	}
	return out
}

// EventsBetween returns the events whose interval overlaps [start, end],
// using the same overlap rule as conflict checking, in insertion order.
func (c *Calendar) EventsBetween(start, end time.Time) []event.Event {
	var out []event.Event
	for _, e := range c.events {
		if e.Overlaps(start, end) {
			out = append(out, e)
		}
	}
	return out
}

// IsBusy reports whether some event's interval contains the instant,
// endpoints inclusive.
func (c *Calendar) IsBusy(at time.Time) bool {
	for _, e := range c.events {
		if e.Covers(at) {
			return true
		}
	}
	return false
}

// FindByNameAndStart returns the first event matching name and start
// exactly.
func (c *Calendar) FindByNameAndStart(name string, start time.Time) (event.Event, bool) {
	for _, e := range c.events {
		if e.Name == name && e.Start.Equal(start) {
			return e, true
		}
	}
	return event.Event{}, false
}

// EditSingle sets the property on the first event matching (name, start,
// end) exactly and reports whether a match was found. An unrecognized
// property key still counts as an edit of the matched event; it just
// changes nothing.
func (c *Calendar) EditSingle(property, name string, start, end time.Time, value string) bool {
	p, known := event.ParseProperty(property)
	for i := range c.events {
		e := &c.events[i]
		if e.Name == name && e.Start.Equal(start) && e.End.Equal(end) {
			if known {
				e.Set(p, value)
			}
			return true
		}
	}
	return false
}

// EditFrom sets the property on every event matching (name, start) exactly
// and returns the number of matches.
func (c *Calendar) EditFrom(property, name string, start time.Time, value string) int {
	p, known := event.ParseProperty(property)
	count := 0
	for i := range c.events {
		e := &c.events[i]
		if e.Name == name && e.Start.Equal(start) {
			if known {
				e.Set(p, value)
			}
			count++
		}
	}
	return count
}

// EditAll sets the property on every event with the given name and returns
// the number of matches.
func (c *Calendar) EditAll(property, name, value string) int {
	p, known := event.ParseProperty(property)
	count := 0
	for i := range c.events {
		e := &c.events[i]
		if e.Name == name {
			if known {
				e.Set(p, value)
			}
			count++
		}
	}
	return count
}
