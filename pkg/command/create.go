package command

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kalendu/kalendu/pkg/calendar"
	"github.com/kalendu/kalendu/pkg/event"
)

// createCalendar handles: create calendar --name <name> --timezone <tz>
func createCalendar(cur *cursor, session *Session) (string, error) {
	if err := cur.keyword("calendar"); err != nil {
		return "", err
	}
	if err := cur.marker("--name", "calendar name"); err != nil {
		return "", err
	}
	name, err := cur.next("calendar name")
	if err != nil {
		return "", err
	}
	if err := cur.marker("--timezone", "timezone"); err != nil {
		return "", err
	}
	timezone, err := cur.next("timezone")
	if err != nil {
		return "", err
	}
	if err := session.Directory().Create(name, timezone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Calendar created: %s with timezone %s", name, timezone), nil
}

// useCalendar handles: use calendar --name <name>
func useCalendar(cur *cursor, session *Session) (string, error) {
	if err := cur.marker("calendar", "calendar"); err != nil {
		return "", err
	}
	if err := cur.marker("--name", "calendar name"); err != nil {
		return "", err
	}
	name, err := cur.next("calendar name")
	if err != nil {
		return "", err
	}
	if err := session.Use(name); err != nil {
		return "", err
	}
	return "Using calendar: " + name, nil
}

// createEvent handles the two create-event forms:
//
//	create event [--autodecline] <name> from <start> to <end> [repeats ...]
//	create event [--autodecline] <name> on <date> [repeats ...]
func createEvent(cur *cursor, session *Session) (string, error) {
	if err := cur.marker("event", "event"); err != nil {
		return "", err
	}
	autoDecline := cur.consumeIf("--autodecline")
	name, err := cur.next("event name")
	if err != nil {
		return "", err
	}
	mode, err := cur.next("Expected from or on")
	if err != nil {
		return "", err
	}

	cal, err := activeCalendar(session)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(mode) {
	case "from":
		return createTimedEvent(cur, cal, name, autoDecline)
	case "on":
		return createAllDayEvent(cur, cal, name, autoDecline)
	default:
		return "", &InvalidCommandError{Detail: "Expected from or on, found: " + mode}
	}
}

func createTimedEvent(cur *cursor, cal *calendar.Calendar, name string, autoDecline bool) (string, error) {
	startLiteral, err := cur.next("start datetime")
	if err != nil {
		return "", err
	}
	start, err := parseDateTime(startLiteral)
	if err != nil {
		return "", err
	}
	if err := cur.keyword("to"); err != nil {
		return "", err
	}
	endLiteral, err := cur.next("end datetime")
	if err != nil {
		return "", err
	}
	end, err := parseDateTime(endLiteral)
	if err != nil {
		return "", err
	}

	template := event.New(name, start, end)
	if !cur.consumeIf("repeats") {
		if err := cal.AddEvent(template, autoDecline); err != nil {
			return "", err
		}
		return "Single timed event created: " + name, nil
	}

	rec, terminator, err := parseRecurrence(cur, "weekdays for recurring event", false)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return fmt.Sprintf("Recurring timed event created with %d occurrences.", 0), nil
	}
	if err := addRecurring(cal, template, *rec, autoDecline); err != nil {
		return "", err
	}
	if rec.Until.IsZero() {
		return fmt.Sprintf("Recurring timed event created with %d occurrences.", rec.Occurrences), nil
	}
	return "Recurring timed event created until " + terminator + ".", nil
}

func createAllDayEvent(cur *cursor, cal *calendar.Calendar, name string, autoDecline bool) (string, error) {
	dateLiteral, err := cur.next("date for all day event")
	if err != nil {
		return "", err
	}
	date, err := parseDate(dateLiteral)
	if err != nil {
		return "", err
	}

	template := event.NewAllDay(name, date)
	if !cur.consumeIf("repeats") {
		if err := cal.AddEvent(template, autoDecline); err != nil {
			return "", err
		}
		return "Single all day event created: " + name, nil
	}

	rec, terminator, err := parseRecurrence(cur, "weekdays for recurring all day event", true)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return fmt.Sprintf("Recurring all day event created with %d occurrences.", 0), nil
	}
	if err := addRecurring(cal, template, *rec, autoDecline); err != nil {
		return "", err
	}
	if rec.Until.IsZero() {
		return fmt.Sprintf("Recurring all day event created with %d occurrences.", rec.Occurrences), nil
	}
	return "Recurring all day event created until " + terminator + ".", nil
}

// parseRecurrence reads the tail after the "repeats" keyword:
//
//	<weekdays> for <N> times | <weekdays> until <boundary>
//
// A nil rule with nil error means a zero occurrence count: valid, but the
// expander must not run and nothing is created. The returned terminator is
// the original until literal, for the result message.
func parseRecurrence(cur *cursor, weekdaysParam string, allDay bool) (*event.Recurrence, string, error) {
	weekdaysLiteral, err := cur.next(weekdaysParam)
	if err != nil {
		return nil, "", err
	}
	weekdays := event.ParseWeekdays(weekdaysLiteral)
	terminator, err := cur.next("Expected 'for' or 'until'")
	if err != nil {
		return nil, "", err
	}

	switch strings.ToLower(terminator) {
	case "for":
		countLiteral, err := cur.next("occurrence count")
		if err != nil {
			return nil, "", err
		}
		count, convErr := strconv.Atoi(countLiteral)
		if convErr != nil {
			return nil, "", &IllegalArgumentError{Detail: "occurrence count must be a number, got " + countLiteral}
		}
		if err := cur.keyword("times"); err != nil {
			return nil, "", err
		}
		if count < 0 {
			return nil, "", &IllegalArgumentError{Detail: "occurrence count cannot be negative"}
		}
		if count == 0 {
			return nil, "", nil
		}
		if len(weekdays) == 0 {
			return nil, "", &IllegalArgumentError{Detail: "no recognized weekdays in " + weekdaysLiteral}
		}
		return &event.Recurrence{Weekdays: weekdays, Occurrences: count}, "", nil

	case "until":
		var until time.Time
		var untilLiteral string
		if allDay {
			untilLiteral, err = cur.next("until date")
			if err != nil {
				return nil, "", err
			}
			untilDate, parseErr := parseDate(untilLiteral)
			if parseErr != nil {
				return nil, "", parseErr
			}
			until = event.EndOfDay(untilDate)
		} else {
			untilLiteral, err = cur.next("until datetime")
			if err != nil {
				return nil, "", err
			}
			until, err = parseDateTime(untilLiteral)
			if err != nil {
				return nil, "", err
			}
		}
		if len(weekdays) == 0 {
			return nil, "", &IllegalArgumentError{Detail: "no recognized weekdays in " + weekdaysLiteral}
		}
		return &event.Recurrence{Weekdays: weekdays, Until: until}, untilLiteral, nil

	default:
		return nil, "", &InvalidCommandError{Detail: "Recurring specification: " + terminator}
	}
}

func addRecurring(cal *calendar.Calendar, template event.Event, rec event.Recurrence, autoDecline bool) error {
	instances, err := rec.Expand(template)
	if err != nil {
		return err
	}
	for _, instance := range instances {
		if err := cal.AddEvent(instance, autoDecline); err != nil {
			return err
		}
	}
	return nil
}
