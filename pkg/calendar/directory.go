package calendar

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

// NotFoundError reports a lookup of a calendar name the directory does not
// hold.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("calendar %s not found", e.Name)
}

// AlreadyExistsError reports an attempt to register a calendar under a name
// that is already taken. Names are unique and case-sensitive.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("calendar with name %s already exists", e.Name)
}

// Directory is the registry of calendars, keyed by case-sensitive name.
type Directory struct {
	calendars map[string]*Calendar
}

func NewDirectory() *Directory {
	return &Directory{calendars: make(map[string]*Calendar)}
}

// Create registers an empty calendar under a new name.
func (d *Directory) Create(name, timezone string) error {
	if _, exists := d.calendars[name]; exists {
		return &AlreadyExistsError{Name: name}
	}
	d.calendars[name] = New(name, timezone)
	log.Debugf("created calendar %q with timezone %q", name, timezone)
	return nil
}

// Get looks up a calendar by name without making it active.
func (d *Directory) Get(name string) (*Calendar, bool) {
	c, ok := d.calendars[name]
	return c, ok
}

// Rename moves a calendar to a new unique name.
func (d *Directory) Rename(name, newName string) error {
	c, ok := d.calendars[name]
	if !ok {
		return &NotFoundError{Name: name}
	}
	if name == newName {
		return nil
	}
	if _, taken := d.calendars[newName]; taken {
		return &AlreadyExistsError{Name: newName}
	}
	delete(d.calendars, name)
	c.name = newName
	d.calendars[newName] = c
	return nil
}

// SetTimezone updates a calendar's timezone label.
func (d *Directory) SetTimezone(name, timezone string) error {
	c, ok := d.calendars[name]
	if !ok {
		return &NotFoundError{Name: name}
	}
	c.SetTimezone(timezone)
	return nil
}

// Names returns all calendar names in lexical order.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.calendars))
	for name := range d.calendars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
