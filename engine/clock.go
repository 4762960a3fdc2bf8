package engine

import "time"

// Timer is a pending one-shot callback
type Timer interface {
	// Stop cancels the callback, returning false if it already fired or was stopped
	Stop() bool
}

// Clock is the time source the scheduler and ticker run on
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock provides the system monotonic clock
type RealClock struct{}

// NewRealClock creates a clock backed by package time
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current time with monotonic clock reading
func (RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc runs f on its own goroutine after d
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
