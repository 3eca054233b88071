// Package orientation keeps the display orientation lock in step with the
// focus of the player view.
package orientation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/llehouerou/marquee/internal/log"
)

// ErrReleased is returned by a Coordinator after Release.
var ErrReleased = errors.New("orientation: coordinator released")

// Mode is an orientation lock mode.
type Mode int

const (
	ModeDefault Mode = iota
	ModeLandscape
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeLandscape:
		return "landscape"
	default:
		return "unknown"
	}
}

// Lock is the platform orientation lock.
type Lock interface {
	Lock(mode Mode) error
	Current() (Mode, error)
}

// Navigation is the navigation lifecycle of the screen hosting the player.
// Each On* method registers a handler and returns a function removing it.
type Navigation interface {
	OnFocus(fn func()) (remove func())
	OnBlur(fn func()) (remove func())
	// OnBackPressed handlers return true when they consumed the back press.
	OnBackPressed(fn func() bool) (remove func())
	GoBack()
}

// Coordinator locks landscape while the player view is focused and resets
// the lock before the view is left.
type Coordinator struct {
	mu       sync.Mutex
	lock     Lock
	nav      Navigation
	log      zerolog.Logger
	detach   []func()
	released bool
}

// New creates a coordinator. Call Attach to follow navigation events.
func New(lock Lock, nav Navigation, logger *zerolog.Logger) *Coordinator {
	c := &Coordinator{lock: lock, nav: nav}
	if logger != nil {
		c.log = *logger
	} else {
		c.log = log.WithComponent("orientation")
	}
	return c
}

// Attach registers focus, blur and back-press handlers with the navigation.
// Handlers are registered without holding the coordinator lock, so a
// navigation that fires focus on registration does not deadlock.
func (c *Coordinator) Attach() {
	c.mu.Lock()
	nav, released := c.nav, c.released
	c.mu.Unlock()
	if released || nav == nil {
		return
	}

	removes := []func(){
		nav.OnFocus(func() { _ = c.Focus() }),
		nav.OnBlur(func() { _ = c.Blur() }),
		nav.OnBackPressed(c.BackPressed),
	}

	c.mu.Lock()
	if !c.released {
		c.detach = append(c.detach, removes...)
		removes = nil
	}
	c.mu.Unlock()

	for _, remove := range removes {
		remove()
	}
}

// Focus requests landscape unless it is already locked.
func (c *Coordinator) Focus() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return ErrReleased
	}

	current, err := c.lock.Current()
	if err != nil {
		c.log.Warn().Err(err).Msg("read orientation lock")
	} else if current == ModeLandscape {
		return nil
	}
	return c.lockLocked(ModeLandscape)
}

// Blur resets the lock to default.
func (c *Coordinator) Blur() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return ErrReleased
	}
	return c.lockLocked(ModeDefault)
}

// BackPressed resets the lock and only then navigates back, so the previous
// screen never renders in landscape. It always consumes the back press.
func (c *Coordinator) BackPressed() bool {
	c.mu.Lock()
	if c.released {
		c.mu.Unlock()
		return false
	}
	_ = c.lockLocked(ModeDefault)
	nav := c.nav
	c.mu.Unlock()

	if nav != nil {
		nav.GoBack()
	}
	return true
}

// Release removes the navigation handlers and resets the lock. Safe to call
// more than once; later calls return nil.
func (c *Coordinator) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return nil
	}
	c.released = true

	for _, remove := range c.detach {
		if remove != nil {
			remove()
		}
	}
	c.detach = nil
	return c.lockLocked(ModeDefault)
}

func (c *Coordinator) lockLocked(mode Mode) error {
	if err := c.lock.Lock(mode); err != nil {
		c.log.Warn().Err(err).Str(log.FieldOrientation, mode.String()).Msg("lock orientation")
		return fmt.Errorf("lock %s: %w", mode, err)
	}
	c.log.Debug().Str(log.FieldOrientation, mode.String()).Msg("orientation locked")
	return nil
}
