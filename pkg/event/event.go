package event

import (
	"strconv"
	"strings"
	"time"
)

// Event is one concrete occurrence in a calendar. A recurring series is
// stored as a batch of ordinary events sharing a name; recurrence exists
// only at generation time.
type Event struct {
	Name        string
	Start       time.Time
	End         time.Time
	Description string
	Location    string
	IsPublic    bool
}

// New returns a public event with the given name and interval.
func New(name string, start, end time.Time) Event {
	return Event{
		Name:     name,
		Start:    start,
		End:      end,
		IsPublic: true,
	}
}

// NewAllDay returns a public all-day event on the given date, normalized to
// the 00:00/23:59 convention.
func NewAllDay(name string, date time.Time) Event {
	return New(name, StartOfDay(date), EndOfDay(date))
}

// IsAllDay reports whether the event follows the all-day start/end
// convention: start at 00:00 and end at 23:59 of the same date. This
// signature is the only all-day marker; there is no separate flag.
func (e Event) IsAllDay() bool {
	return e.Start.Hour() == 0 && e.Start.Minute() == 0 &&
		e.End.Hour() == 23 && e.End.Minute() == 59 &&
		SameDate(e.Start, e.End)
}

// Overlaps reports whether the event's interval overlaps [start, end].
// Touching endpoints count as overlap.
func (e Event) Overlaps(start, end time.Time) bool {
	return !e.End.Before(start) && !e.Start.After(end)
}

// Covers reports whether the instant falls inside the event's interval,
// both endpoints inclusive.
func (e Event) Covers(at time.Time) bool {
	return !at.Before(e.Start) && !at.After(e.End)
}

// Property identifies an editable event field.
type Property int

const (
	PropertyName Property = iota
	PropertyDescription
	PropertyLocation
	PropertyIsPublic
)

// ParseProperty resolves a property key (case-insensitive) to a Property.
// Unrecognized keys return ok=false; callers ignore them rather than fail,
// matching the command contract.
func ParseProperty(key string) (Property, bool) {
	switch strings.ToLower(key) {
	case "name":
		return PropertyName, true
	case "description":
		return PropertyDescription, true
	case "location":
		return PropertyLocation, true
	case "ispublic":
		return PropertyIsPublic, true
	}
	return 0, false
}

// Set assigns value to the given property. For PropertyIsPublic the value is
// parsed as a boolean; text that does not parse means false.
func (e *Event) Set(p Property, value string) {
	switch p {
	case PropertyName:
		e.Name = value
	case PropertyDescription:
		e.Description = value
	case PropertyLocation:
		e.Location = value
	case PropertyIsPublic:
		b, err := strconv.ParseBool(value)
		e.IsPublic = err == nil && b
	}
}

// SameDate reports whether both instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfDay returns the instant at 00:00 of t's date.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the instant at 23:59 of t's date, the all-day end marker.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, t.Location())
}
