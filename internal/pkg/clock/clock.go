// Package clock is the source of time for lookup timestamps, swappable in tests
package clock

import "time"

// Clock reports the current instant
type Clock interface {
	Now() time.Time
}

type system struct{}

func (system) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock, in UTC
func New() Clock {
	return system{}
}

// Fixed reports At until it is advanced
type Fixed struct {
	At time.Time
}

// Now returns At
func (f *Fixed) Now() time.Time {
	return f.At
}

// Advance moves the clock forward by d
func (f *Fixed) Advance(d time.Duration) {
	f.At = f.At.Add(d)
}

// Since returns the time elapsed on c since t
func Since(c Clock, t time.Time) time.Duration {
	return c.Now().Sub(t)
}
