package utils

import "time"

// Clock abstracts time.Now so request timing and session timestamps can be
// pinned in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock returns a preset instant and advances by Step on every read,
// so elapsed-time calculations stay deterministic.
type FixedClock struct {
	Current time.Time
	Step    time.Duration
}

func (c *FixedClock) Now() time.Time {
	now := c.Current
	c.Current = c.Current.Add(c.Step)
	return now
}
