package event

import (
	"errors"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// ErrEmptyWeekdays is returned when a recurrence rule has no weekdays to
// match; without the guard the forward date scan would never terminate.
var ErrEmptyWeekdays = errors.New("recurrence weekdays must not be empty")

// ParseWeekdays reads a contiguous string of single-letter weekday codes
// (M, T, W, R, F, S, U; R is Thursday) into a weekday set, preserving
// Monday-first order and dropping duplicates. Unrecognized letters are
// silently ignored, so the result may be empty.
func ParseWeekdays(codes string) []time.Weekday {
	var seen [7]bool
	for _, c := range codes {
		switch c {
		case 'M':
			seen[time.Monday] = true
		case 'T':
			seen[time.Tuesday] = true
		case 'W':
			seen[time.Wednesday] = true
		case 'R':
			seen[time.Thursday] = true
		case 'F':
			seen[time.Friday] = true
		case 'S':
			seen[time.Saturday] = true
		case 'U':
			seen[time.Sunday] = true
		}
	}
	weekdays := make([]time.Weekday, 0, 7)
	for _, d := range []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	} {
		if seen[d] {
			weekdays = append(weekdays, d)
		}
	}
	return weekdays
}

// FormatWeekdays renders a weekday set back into its single-letter codes.
func FormatWeekdays(weekdays []time.Weekday) string {
	letters := [7]byte{'U', 'M', 'T', 'W', 'R', 'F', 'S'}
	var b strings.Builder
	for _, d := range weekdays {
		b.WriteByte(letters[d])
	}
	return b.String()
}

// Recurrence describes a weekly repetition over a weekday set with exactly
// one terminating condition: a positive occurrence count, or an inclusive
// until boundary (Until set, Occurrences zero).
type Recurrence struct {
	Weekdays    []time.Weekday
	Occurrences int
	Until       time.Time
}

// Expand generates one event per date matching the weekday set, scanning
// forward from the template's start date (inclusive). Every instance keeps
// the template's clock times, description, location, and visibility; both
// endpoints land on the instance date, so the caller's all-day templates
// stay all-day.
//
// In count mode exactly Occurrences events are produced. In until mode the
// entire until calendar day is inclusive regardless of the until
// time-of-day. Callers validate Occurrences > 0 or a non-zero Until, and a
// non-empty weekday set, before calling.
func (r Recurrence) Expand(template Event) ([]Event, error) {
	if len(r.Weekdays) == 0 {
		return nil, ErrEmptyWeekdays
	}

	opt := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   template.Start,
		Byweekday: toRRuleWeekdays(r.Weekdays),
	}
	if r.Until.IsZero() {
		opt.Count = r.Occurrences
	} else {
		// Widen to the last second of the until date so every matching
		// date up to and including that day is emitted.
		u := r.Until
		opt.Until = time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 0, u.Location())
	}
	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, err
	}

	starts := rule.All()
	instances := make([]Event, 0, len(starts))
	for _, start := range starts {
		instance := template
		instance.Start = start
		instance.End = time.Date(start.Year(), start.Month(), start.Day(),
			template.End.Hour(), template.End.Minute(), 0, 0, start.Location())
		instances = append(instances, instance)
	}
	return instances, nil
}

func toRRuleWeekdays(weekdays []time.Weekday) []rrule.Weekday {
	byDay := [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}
	out := make([]rrule.Weekday, 0, len(weekdays))
	for _, d := range weekdays {
		out = append(out, byDay[d])
	}
	return out
}
