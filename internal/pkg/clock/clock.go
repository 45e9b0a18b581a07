// Package clock lets time-dependent code run against a fixed instant in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reports wall-clock time in UTC.
type System struct{}

func NewSystem() Clock {
	return System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed reports the same instant until it is moved with Advance.
type Fixed struct {
	now time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

func (c *Fixed) Now() time.Time {
	return c.now
}

func (c *Fixed) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
