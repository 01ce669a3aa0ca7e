package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/kalendu/kalendu/pkg/calendar"
	"github.com/kalendu/kalendu/pkg/event"
	log "github.com/sirupsen/logrus"
)

// copyCommand handles the three copy forms:
//
//	copy event <name> on <start> --target <cal> to <targetStart>
//	copy events on <date> --target <cal> to <targetStart>
//	copy events between <d1> and <d2> --target <cal> to <targetDate>
func copyCommand(cur *cursor, session *Session) (string, error) {
	form, err := cur.next("copy command")
	if err != nil {
		return "", err
	}

	switch strings.ToLower(form) {
	case "event":
		return copySingleEvent(cur, session)
	case "events":
		if cur.consumeIf("on") {
			return copyEventsOn(cur, session)
		}
		if cur.consumeIf("between") {
			return copyEventsBetween(cur, session)
		}
		return "", &InvalidCommandError{Detail: "copy"}
	default:
		return "", &InvalidCommandError{Detail: "copy"}
	}
}

func copySingleEvent(cur *cursor, session *Session) (string, error) {
	name, err := cur.next("event name")
	if err != nil {
		return "", err
	}
	if err := cur.marker("on", "on"); err != nil {
		return "", err
	}
	sourceLiteral, err := cur.next("source datetime")
	if err != nil {
		return "", err
	}
	sourceStart, err := parseDateTime(sourceLiteral)
	if err != nil {
		return "", err
	}
	targetName, targetLiteral, err := parseCopyTarget(cur)
	if err != nil {
		return "", err
	}
	targetStart, err := parseDateTime(targetLiteral)
	if err != nil {
		return "", err
	}

	cal, err := activeCalendar(session)
	if err != nil {
		return "", err
	}
	source, found := cal.FindByNameAndStart(name, sourceStart)
	if !found {
		return "", &NotFoundError{Detail: fmt.Sprintf("event %s not found at %s", name, sourceLiteral)}
	}
	if err := copyWithOffset(session, []event.Event{source}, targetName, targetStart); err != nil {
		return "", err
	}
	return fmt.Sprintf("Event %s copied to calendar %s.", name, targetName), nil
}

func copyEventsOn(cur *cursor, session *Session) (string, error) {
	dateLiteral, err := cur.next("date")
	if err != nil {
		return "", err
	}
	date, err := parseDate(dateLiteral)
	if err != nil {
		return "", err
	}
	targetName, targetLiteral, err := parseCopyTarget(cur)
	if err != nil {
		return "", err
	}
	targetStart, err := parseDateTime(targetLiteral)
	if err != nil {
		return "", err
	}

	cal, err := activeCalendar(session)
	if err != nil {
		return "", err
	}
	sources := cal.EventsOn(date)
	if len(sources) == 0 {
		return "", &NotFoundError{Detail: fmt.Sprintf("no events on %s to copy", dateLiteral)}
	}
	if err := copyWithOffset(session, sources, targetName, targetStart); err != nil {
		return "", err
	}
	return fmt.Sprintf("Events on %s copied to calendar %s.", dateLiteral, targetName), nil
}

func copyEventsBetween(cur *cursor, session *Session) (string, error) {
	startLiteral, err := cur.next("start date")
	if err != nil {
		return "", err
	}
	startDate, err := parseDate(startLiteral)
	if err != nil {
		return "", err
	}
	if err := cur.marker("and", "and"); err != nil {
		return "", err
	}
	endLiteral, err := cur.next("end date")
	if err != nil {
		return "", err
	}
	endDate, err := parseDate(endLiteral)
	if err != nil {
		return "", err
	}
	targetName, targetLiteral, err := parseCopyTarget(cur)
	if err != nil {
		return "", err
	}
	targetDate, err := parseDate(targetLiteral)
	if err != nil {
		return "", err
	}

	cal, err := activeCalendar(session)
	if err != nil {
		return "", err
	}
	sources := cal.EventsBetween(event.StartOfDay(startDate), event.EndOfDay(endDate))
	if len(sources) == 0 {
		return "", &NotFoundError{Detail: fmt.Sprintf("no events between %s and %s to copy", startLiteral, endLiteral)}
	}
	if err := copyWithOffset(session, sources, targetName, event.StartOfDay(targetDate)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Events between %s and %s copied to calendar %s.", startLiteral, endLiteral, targetName), nil
}

// parseCopyTarget reads the shared `--target <calName> to <literal>` tail.
func parseCopyTarget(cur *cursor) (string, string, error) {
	if err := cur.marker("--target", "target calendar"); err != nil {
		return "", "", err
	}
	targetName, err := cur.next("target calendar")
	if err != nil {
		return "", "", err
	}
	if err := cur.marker("to", "to"); err != nil {
		return "", "", err
	}
	targetLiteral, err := cur.next("target datetime")
	if err != nil {
		return "", "", err
	}
	return targetName, targetLiteral, nil
}

// copyWithOffset shifts every source event by a single offset, the distance
// from the earliest source start to the target anchor, preserving each
// event's duration and the relative spacing between them. Inserts into the
// target always conflict-check, regardless of how the originals were
// created.
func copyWithOffset(session *Session, sources []event.Event, targetName string, anchor time.Time) error {
	target, ok := session.Directory().Get(targetName)
	if !ok {
		return &calendar.NotFoundError{Name: targetName}
	}

	earliest := sources[0].Start
	for _, s := range sources[1:] {
		if s.Start.Before(earliest) {
			earliest = s.Start
		}
	}
	offset := anchor.Sub(earliest)

	log.WithField("session", session.ID).
		Debugf("copying %d event(s) to %q with offset %s", len(sources), targetName, offset)
	for _, s := range sources {
		copied := s
		copied.Start = s.Start.Add(offset)
		copied.End = s.End.Add(offset)
		if err := target.AddEvent(copied, true); err != nil {
			return err
		}
	}
	return nil
}
