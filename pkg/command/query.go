package command

import (
	"fmt"
	"strings"

	"github.com/kalendu/kalendu/pkg/event"
)

const timeLayout = "15:04"

// printEvents handles:
//
//	print events on <date>
//	print events from <start> to <end>
func printEvents(cur *cursor, session *Session) (string, error) {
	if err := cur.keyword("events"); err != nil {
		return "", &InvalidCommandError{Detail: "print command must be 'print events ...'"}
	}
	mode, err := cur.next("on or from")
	if err != nil {
		return "", err
	}
	cal, err := activeCalendar(session)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(mode) {
	case "on":
		dateLiteral, err := cur.next("date for print events on")
		if err != nil {
			return "", err
		}
		date, err := parseDate(dateLiteral)
		if err != nil {
			return "", err
		}
		events := cal.EventsOn(date)
		if len(events) == 0 {
			return "No events on " + dateLiteral, nil
		}
		return formatEvents("Events on "+dateLiteral+":", events), nil

	case "from":
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
		events := cal.EventsBetween(start, end)
		if len(events) == 0 {
			return fmt.Sprintf("No events between %s and %s", startLiteral, endLiteral), nil
		}
		return formatEvents(fmt.Sprintf("Events from %s to %s:", startLiteral, endLiteral), events), nil

	default:
		return "", &InvalidCommandError{Detail: "Invalid print events command."}
	}
}

func formatEvents(header string, events []event.Event) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, e := range events {
		b.WriteString(" - ")
		b.WriteString(e.Name)
		if e.IsAllDay() {
			b.WriteString(" All Day Event")
		} else {
			fmt.Fprintf(&b, " (%s to %s)", e.Start.Format(timeLayout), e.End.Format(timeLayout))
		}
		b.WriteString(" at ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	return b.String()
}

// exportCalendar handles: export (cal | ical) <filename>
func exportCalendar(cur *cursor, session *Session) (string, error) {
	format, err := cur.next("export format")
	if err != nil {
		return "", &InvalidCommandError{Detail: "export command must be 'export cal <filename>' or 'export ical <filename>'"}
	}
	filename, err := cur.next("filename")
	if err != nil {
		return "", err
	}
	cal, err := activeCalendar(session)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(format) {
	case "cal":
		path, err := session.csv.Export(cal.Events(), filename)
		if err != nil {
			return "", err
		}
		return "Calendar exported to CSV at: " + path, nil
	case "ical":
		path, err := session.ical.Export(cal.Events(), filename)
		if err != nil {
			return "", err
		}
		return "Calendar exported to iCalendar at: " + path, nil
	default:
		return "", &InvalidCommandError{Detail: "export command must be 'export cal <filename>' or 'export ical <filename>'"}
	}
}

// showStatus handles: show status on <dateTime>
func showStatus(cur *cursor, session *Session) (string, error) {
	if err := cur.keyword("status"); err != nil {
		return "", &InvalidCommandError{Detail: "show status command must be 'show status on <datetime>'"}
	}
	if err := cur.keyword("on"); err != nil {
		return "", &InvalidCommandError{Detail: "show status command must be 'show status on <datetime>'"}
	}
	literal, err := cur.next("datetime")
	if err != nil {
		return "", err
	}
	at, err := parseDateTime(literal)
	if err != nil {
		return "", err
	}
	cal, err := activeCalendar(session)
	if err != nil {
		return "", err
	}
	status := "Available"
	if cal.IsBusy(at) {
		status = "Busy"
	}
	return fmt.Sprintf("Status at %s: %s", literal, status), nil
}
