package playback

import (
	"sync"
	"time"
)

// DefaultHideAfter is how long controls stay on screen without activity.
const DefaultHideAfter = 3500 * time.Millisecond

// VisibilityTimer owns the visibility of on-screen controls and the single
// pending auto-hide timer.
//
// At most one timer is pending at a time. Every operation bumps a generation
// counter, so a timer that already fired but lost the race for mu finds a
// stale generation and does nothing.
type VisibilityTimer struct {
	mu       sync.Mutex
	clock    Clock
	timer    Timer
	gen      uint64
	visible  bool
	disposed bool
}

// NewVisibilityTimer creates a timer with controls initially hidden.
func NewVisibilityTimer(clock Clock) *VisibilityTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &VisibilityTimer{clock: clock}
}

// ShowWithTimeout cancels any pending timer, marks controls visible and arms a
// new timer that hides them and calls onHide after timeout.
func (v *VisibilityTimer) ShowWithTimeout(timeout time.Duration, onHide func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return
	}

	v.cancelLocked()
	v.visible = true

	gen := v.gen
	v.timer = v.clock.AfterFunc(timeout, func() {
		v.fire(gen, onHide)
	})
}

// Show marks controls visible with nothing pending.
func (v *VisibilityTimer) Show() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return
	}
	v.cancelLocked()
	v.visible = true
}

// Hide cancels any pending timer and hides controls immediately.
func (v *VisibilityTimer) Hide() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return
	}
	v.cancelLocked()
	v.visible = false
}

// CancelPending cancels the pending timer without changing visibility.
func (v *VisibilityTimer) CancelPending() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cancelLocked()
}

// Dispose cancels the pending timer and invalidates the VisibilityTimer.
// Safe to call more than once.
func (v *VisibilityTimer) Dispose() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cancelLocked()
	v.disposed = true
}

// Visible reports whether controls are on screen.
func (v *VisibilityTimer) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

// Pending reports whether a hide timer is armed.
func (v *VisibilityTimer) Pending() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.timer != nil
}

func (v *VisibilityTimer) cancelLocked() {
	v.gen++
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}

func (v *VisibilityTimer) fire(gen uint64, onHide func()) {
	v.mu.Lock()
	if v.disposed || gen != v.gen {
		v.mu.Unlock()
		return
	}
	v.timer = nil
	v.visible = false
	v.mu.Unlock()

	if onHide != nil {
		onHide()
	}
}
