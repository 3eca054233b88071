package playback

import "time"

// Clock schedules delayed callbacks. SystemClock is the production clock.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending callback scheduled by a Clock.
type Timer interface {
	Stop() bool
}

// SystemClock schedules callbacks with time.AfterFunc.
type SystemClock struct{}

// AfterFunc implements Clock.
func (SystemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
