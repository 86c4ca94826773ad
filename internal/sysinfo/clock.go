package sysinfo

import "time"

// Clock reports wall time anchored at construction and advanced by the
// monotonic clock, so successive readings never go backwards even when the
// system clock is stepped.
type Clock struct {
	start time.Time
}

func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

// Now returns the current time in UTC.
func (c *Clock) Now() time.Time {
	return c.start.Add(time.Since(c.start)).UTC()
}
