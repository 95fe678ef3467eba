// Package clock provides the timer source that drives the game loop.
// Production code uses Real; tests use Manual to step time explicitly.
package clock

import "time"

// Timer is a pending one-shot callback
type Timer interface {
	// Stop prevents the callback from firing; reports whether it was still pending
	Stop() bool
}

// Clock schedules callbacks after a delay
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real is backed by the runtime timers
type Real struct{}

func NewReal() *Real {
	return &Real{}
}

func (Real) Now() time.Time {
	return time.Now()
}

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
