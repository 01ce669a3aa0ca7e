package command

import (
	"fmt"
	"strings"
)

// editCalendar handles: edit calendar --name <name> --property <property> <value>
func editCalendar(cur *cursor, session *Session) (string, error) {
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
	if err := cur.marker("--property", "property"); err != nil {
		return "", err
	}
	property, err := cur.next("property")
	if err != nil {
		return "", err
	}
	value, err := cur.next("property value")
	if err != nil {
		return "", err
	}
	if err := session.EditCalendar(name, property, value); err != nil {
		return "", err
	}
	return fmt.Sprintf("Calendar %s updated: %s = %s", name, property, value), nil
}

// editEvent handles the three edit scopes:
//
//	edit event <property> <name> from <start> to <end> with <value>   (single)
//	edit events <property> <name> from <start> with <value>           (from)
//	edit events <property> <name> <value>                             (all)
func editEvent(cur *cursor, session *Session) (string, error) {
	target, err := cur.next("edit command")
	if err != nil {
		return "", err
	}
	switch strings.ToLower(target) {
	case "event":
		return editSingle(cur, session)
	case "events":
		return editBulk(cur, session)
	default:
		return "", &InvalidCommandError{Detail: "Invalid edit command target: " + target}
	}
}

func editSingle(cur *cursor, session *Session) (string, error) {
	property, err := cur.next("property")
	if err != nil {
		return "", err
	}
	name, err := cur.next("event name")
	if err != nil {
		return "", err
	}
	if err := cur.keyword("from"); err != nil {
		return "", err
	}
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
	if err := cur.keyword("with"); err != nil {
		return "", err
	}
	value, err := cur.next("new value")
	if err != nil {
		return "", err
	}

	cal, err := activeCalendar(session)
	if err != nil {
		return "", err
	}
	if !cal.EditSingle(property, name, start, end, value) {
		return "", &NotFoundError{Detail: "no matching event found for editing"}
	}
	return "Single event edited.", nil
}

func editBulk(cur *cursor, session *Session) (string, error) {
	property, err := cur.next("property")
	if err != nil {
		return "", err
	}
	name, err := cur.next("event name")
	if err != nil {
		return "", err
	}
	cal, err := activeCalendar(session)
	if err != nil {
		return "", err
	}

	if cur.consumeIf("from") {
		startLiteral, err := cur.next("start datetime")
		if err != nil {
			return "", err
		}
		start, err := parseDateTime(startLiteral)
		if err != nil {
			return "", err
		}
		if err := cur.keyword("with"); err != nil {
			return "", err
		}
		value, err := cur.next("new value")
		if err != nil {
			return "", err
		}
		if cal.EditFrom(property, name, start, value) == 0 {
			return "", &NotFoundError{Detail: "no matching events found"}
		}
		return fmt.Sprintf("Events starting at %s edited.", startLiteral), nil
	}

	value, err := cur.next("new value")
	if err != nil {
		return "", err
	}
	if cal.EditAll(property, name, value) == 0 {
		return "", &NotFoundError{Detail: "no matching events found"}
	}
	return fmt.Sprintf("All events with name %s edited.", name), nil
}
