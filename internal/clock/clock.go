// Package clock provides an abstraction for time operations to improve testability.
// Instead of calling time.Now() directly, code can use the Clock interface which
// can be mocked in tests to control time-dependent behavior.
package clock

import "time"

// Clock is an interface for time operations.
// This allows code to be tested with mock clocks.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Ensure RealClock implements Clock.
var _ Clock = RealClock{}

// Fixed is a Clock that always returns the same instant.
// Useful in tests that need deterministic timestamps.
type Fixed struct {
	// Time is the instant returned by Now.
	Time time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return f.Time
}

// Ensure Fixed implements Clock.
var _ Clock = Fixed{}

// Mutable is a Clock whose instant can be advanced between calls.
// Useful in tests that span several timestamps.
type Mutable struct {
	current time.Time
}

// Set moves the clock to the given instant.
func (m *Mutable) Set(t time.Time) {
	m.current = t
}

// Now returns the instant last set.
func (m *Mutable) Now() time.Time {
	return m.current
}

// Ensure Mutable implements Clock.
var _ Clock = (*Mutable)(nil)
