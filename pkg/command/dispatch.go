package command

import (
	"strings"
	"time"

	"github.com/kalendu/kalendu/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// Date-time literals in commands use two fixed layouts.
const (
	dateTimeLayout = "2006-01-02T15:04"
	dateLayout     = "2006-01-02"
)

// Dispatch parses one tokenized command line and applies it to the session,
// returning the operator-facing result string. Keywords are matched
// case-insensitively and positionally; names and values are taken verbatim.
func Dispatch(tokens []string, session *Session) (string, error) {
	if len(tokens) == 0 {
		return "", &MissingParameterError{Param: "command"}
	}
	log.WithField("session", session.ID).Debugf("dispatching %q", strings.Join(tokens, " "))

	cur := &cursor{tokens: tokens}
	head, _ := cur.next("command")
	switch strings.ToLower(head) {
	case "create":
		if cur.peekIs("calendar") {
			return createCalendar(cur, session)
		}
		return createEvent(cur, session)
	case "edit":
		if cur.peekIs("calendar") {
			return editCalendar(cur, session)
		}
		return editEvent(cur, session)
	case "use":
		return useCalendar(cur, session)
	case "copy":
		return copyCommand(cur, session)
	case "print":
		return printEvents(cur, session)
	case "export":
		return exportCalendar(cur, session)
	case "show":
		return showStatus(cur, session)
	default:
		return "", &InvalidCommandError{Detail: head}
	}
}

// cursor walks the token list positionally, producing the typed parse
// failures of the grammar.
type cursor struct {
	tokens []string
	pos    int
}

// next consumes the next token, failing with MissingParameter when the line
// ran out.
func (c *cursor) next(param string) (string, error) {
	if c.pos >= len(c.tokens) {
		return "", &MissingParameterError{Param: param}
	}
	t := c.tokens[c.pos]
	c.pos++
	return t, nil
}

// keyword consumes the next token and requires it to equal the literal,
// failing with InvalidToken when it is absent or different.
func (c *cursor) keyword(literal string) error {
	if c.pos >= len(c.tokens) || !strings.EqualFold(c.tokens[c.pos], literal) {
		return &InvalidTokenError{Expected: literal}
	}
	c.pos++
	return nil
}

// marker consumes the next token and requires it to equal the literal,
// failing with MissingParameter under the given name. Used for flag-style
// markers such as --name, where an absent or misplaced marker reads as a
// missing parameter rather than a wrong keyword.
func (c *cursor) marker(literal, param string) error {
	if c.pos >= len(c.tokens) || !strings.EqualFold(c.tokens[c.pos], literal) {
		return &MissingParameterError{Param: param}
	}
	c.pos++
	return nil
}

// peekIs reports whether the next token equals the literal without
// consuming it.
func (c *cursor) peekIs(literal string) bool {
	return c.pos < len(c.tokens) && strings.EqualFold(c.tokens[c.pos], literal)
}

// consumeIf consumes the next token when it equals the literal.
func (c *cursor) consumeIf(literal string) bool {
	if c.peekIs(literal) {
		c.pos++
		return true
	}
	return false
}

// parseDateTime reads a yyyy-MM-dd'T'HH:mm literal.
func parseDateTime(literal string) (time.Time, error) {
	t, err := time.Parse(dateTimeLayout, literal)
	if err != nil {
		return time.Time{}, &IllegalArgumentError{Detail: "invalid date-time " + literal + ", expected yyyy-MM-ddTHH:mm"}
	}
	return t, nil
}

// parseDate reads a yyyy-MM-dd literal.
func parseDate(literal string) (time.Time, error) {
	t, err := time.Parse(dateLayout, literal)
	if err != nil {
		return time.Time{}, &IllegalArgumentError{Detail: "invalid date " + literal + ", expected yyyy-MM-dd"}
	}
	return t, nil
}

// activeCalendar resolves the session's active calendar, failing when no
// calendar has been selected.
func activeCalendar(session *Session) (*calendar.Calendar, error) {
	cal, ok := session.Active()
	if !ok {
		return nil, &calendar.NotFoundError{Name: "(no active calendar)"}
	}
	return cal, nil
}
