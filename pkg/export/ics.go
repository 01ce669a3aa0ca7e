package export

import (
	"os"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/kalendu/kalendu/pkg/event"
	log "github.com/sirupsen/logrus"
)

// ICSExporter writes calendars as iCalendar (RFC 5545) files under Dir.
type ICSExporter struct {
	Dir string
}

func NewICSExporter(dir string) *ICSExporter {
	return &ICSExporter{Dir: dir}
}

// Export serializes the events as a VCALENDAR to filename (resolved against
// Dir unless absolute) and returns the absolute output path. All-day events
// become DATE values; non-public events are marked CLASS:PRIVATE.
func (x *ICSExporter) Export(events []event.Event, filename string) (string, error) {
	path, err := resolvePath(x.Dir, filename)
	if err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	for _, e := range events {
		ve := cal.AddEvent(uuid.NewString())
		ve.SetSummary(e.Name)
		if e.IsAllDay() {
			ve.SetAllDayStartAt(e.Start)
			// DTEND on all-day events is exclusive in iCalendar.
			ve.SetAllDayEndAt(e.Start.AddDate(0, 0, 1))
		} else {
			ve.SetStartAt(e.Start)
			ve.SetEndAt(e.End)
		}
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
		if !e.IsPublic {
			ve.SetProperty(ical.ComponentProperty(ical.PropertyClass), "PRIVATE")
		}
	}

	if err := os.WriteFile(path, []byte(cal.Serialize()), 0644); err != nil {
		log.Errorf("Error writing iCalendar file: %v", err)
		return "", err
	}
	return path, nil
}
