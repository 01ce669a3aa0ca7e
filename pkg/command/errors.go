package command

import "fmt"

// The dispatch layer fails with one of a small set of typed errors so the
// surrounding loop (console, script, HTTP) can report them uniformly:
// parse failures carry the offending parameter or keyword, and model
// failures (conflict, calendar not-found) surface as their own types from
// pkg/calendar.

// MissingParameterError reports a required token that is absent, by its
// logical parameter name.
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter: %s", e.Param)
}

// InvalidTokenError reports a required literal keyword that is absent or
// wrong at its position.
type InvalidTokenError struct {
	Expected string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("expected keyword %q", e.Expected)
}

// InvalidCommandError reports an unrecognized command, sub-command, or
// recurring-rule terminator.
type InvalidCommandError struct {
	Detail string
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("invalid command: %s", e.Detail)
}

// IllegalArgumentError reports a structurally valid token with an
// unacceptable value, such as a negative occurrence count or a malformed
// date literal.
type IllegalArgumentError struct {
	Detail string
}

func (e *IllegalArgumentError) Error() string {
	return e.Detail
}

// NotFoundError reports an edit target or copy source that matched nothing.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}
