// internal/playback/controller.go
package playback

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/marquee/internal/log"
	"github.com/llehouerou/marquee/internal/metrics"
	"github.com/llehouerou/marquee/internal/player"
)

// DefaultSkipInterval is the step of SkipForward and SkipBackward.
const DefaultSkipInterval = 10 * time.Second

var (
	// ErrNotLoaded is returned by intents that need loaded media.
	ErrNotLoaded = errors.New("playback: media not loaded")
	// ErrDisposed is returned by intents issued after Dispose.
	ErrDisposed = errors.New("playback: controller disposed")
	// ErrLoopUnsupported is returned by SetLooping when the handle cannot loop.
	ErrLoopUnsupported = errors.New("playback: media cannot loop")
)

// Releaser releases a resource held for the lifetime of a controller, such as
// an orientation lock.
type Releaser interface {
	Release() error
}

// Options configures a Controller. Zero values select defaults.
type Options struct {
	HideAfter    time.Duration
	SkipInterval time.Duration
	StartMuted   bool
	Clock        Clock
	Logger       *zerolog.Logger
	Orientation  Releaser
}

// Controller is the playback state machine behind a player view. It turns
// intents into media handle commands, reconciles asynchronous status updates
// and owns the controls auto-hide timer.
//
// Intents, status callbacks and timer firings may arrive from different
// goroutines; mu serializes them. Handle commands are issued after mu is
// released and are never awaited.
type Controller struct {
	mu sync.Mutex

	handle      player.Handle
	tracker     StatusTracker
	controls    *VisibilityTimer
	orientation Releaser
	log         zerolog.Logger

	hideAfter time.Duration
	skip      time.Duration

	state      State
	finished   bool // completed play-through not yet left by the user
	errMsg     string
	muted      bool
	fullscreen bool
	resize     ResizeMode
	disposed   bool

	subs   []*Subscription
	subsMu sync.RWMutex

	// inflight counts handle commands being issued. Dispose waits for it
	// before unsubscribing.
	inflight sync.WaitGroup
}

type command struct {
	op string
	fn func() error
}

// New creates a controller and subscribes it to the handle's status updates.
func New(handle player.Handle, opts Options) (*Controller, error) {
	if handle == nil {
		return nil, errors.New("playback: nil media handle")
	}

	c := &Controller{
		handle:      handle,
		controls:    NewVisibilityTimer(opts.Clock),
		orientation: opts.Orientation,
		hideAfter:   opts.HideAfter,
		skip:        opts.SkipInterval,
		state:       StateIdle,
	}
	if c.hideAfter <= 0 {
		c.hideAfter = DefaultHideAfter
	}
	if c.skip <= 0 {
		c.skip = DefaultSkipInterval
	}
	if opts.Logger != nil {
		c.log = *opts.Logger
	} else {
		c.log = log.WithComponent("playback")
	}

	// Nothing plays yet, so controls start pinned on screen.
	c.controls.Show()

	if err := handle.Subscribe(c.OnStatusUpdate); err != nil {
		c.controls.Dispose()
		return nil, fmt.Errorf("subscribe to media handle: %w", err)
	}

	if opts.StartMuted {
		c.muted = true
		c.issue([]command{{metrics.CommandMute, func() error { return handle.SetMuted(true) }}})
	}
	return c, nil
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub := newSubscription()
	if c.disposed {
		sub.close()
		return sub
	}
	c.subsMu.Lock()
	c.subs = append(c.subs, sub)
	c.subsMu.Unlock()
	return sub
}

// Snapshot returns the current UI state.
func (c *Controller) Snapshot() UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// State returns the current controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SkipInterval returns the step used by SkipForward and SkipBackward.
func (c *Controller) SkipInterval() time.Duration {
	return c.skip
}

// TogglePlayPause pauses when playing and plays otherwise. Controls are shown
// either way; they only auto-hide when the intent was to play and no error is
// showing. From Finished playback restarts at zero.
func (c *Controller) TogglePlayPause() error {
	c.mu.Lock()
	if err := c.requireLoadedLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	metrics.IncIntent(metrics.IntentTogglePlay)

	var cmds []command
	if c.tracker.Last().Playing {
		cmds = append(cmds, command{metrics.CommandPause, c.handle.Pause})
		// Paused controls stay on screen.
		c.controls.Show()
	} else {
		if c.state == StateFinished {
			cmds = append(cmds, c.seekCommand(0))
			c.finished = false
		}
		cmds = append(cmds, command{metrics.CommandPlay, c.handle.Play})
		if c.state == StateError {
			c.controls.Show()
		} else {
			c.controls.ShowWithTimeout(c.hideAfter, c.onControlsHidden)
		}
	}
	c.log.Debug().Str(log.FieldIntent, metrics.IntentTogglePlay).Msg("intent")

	c.setStateLocked(c.deriveStateLocked())
	c.publishLocked()
	c.mu.Unlock()

	c.issue(cmds)
	return nil
}

// Seek moves to target, clamped to [0, duration] when the duration is known.
func (c *Controller) Seek(target time.Duration) error {
	return c.seek(metrics.IntentSeek, func(Status) time.Duration { return target })
}

// SeekRelative moves by delta from the last reported position.
func (c *Controller) SeekRelative(delta time.Duration) error {
	return c.seek(metrics.IntentSeekRelative, func(s Status) time.Duration { return offset(s.Position, delta) })
}

// offset adds delta to pos, saturating instead of wrapping around.
func offset(pos, delta time.Duration) time.Duration {
	switch {
	case delta > 0 && pos > math.MaxInt64-delta:
		return math.MaxInt64
	case delta < 0 && pos < math.MinInt64-delta:
		return math.MinInt64
	}
	return pos + delta
}

// SkipForward seeks forward by the skip interval.
func (c *Controller) SkipForward() error {
	return c.SeekRelative(c.skip)
}

// SkipBackward seeks backward by the skip interval.
func (c *Controller) SkipBackward() error {
	return c.SeekRelative(-c.skip)
}

func (c *Controller) seek(intent string, target func(Status) time.Duration) error {
	c.mu.Lock()
	if err := c.requireLoadedLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	metrics.IncIntent(intent)

	status := c.tracker.Last()
	pos := status.Clamp(target(status))
	c.log.Debug().
		Str(log.FieldIntent, intent).
		Dur(log.FieldPosition, status.Position).
		Dur(log.FieldTarget, pos).
		Msg("intent")

	c.finished = false
	c.setStateLocked(c.deriveStateLocked())
	c.refreshControlsLocked()
	c.publishLocked()
	c.mu.Unlock()

	c.issue([]command{c.seekCommand(pos)})
	return nil
}

// ToggleMute flips the muted flag and forwards it to the handle.
func (c *Controller) ToggleMute() error {
	c.mu.Lock()
	if err := c.requireLoadedLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	metrics.IncIntent(metrics.IntentToggleMute)

	c.muted = !c.muted
	muted := c.muted
	c.refreshControlsLocked()
	c.publishLocked()
	c.mu.Unlock()

	c.issue([]command{{metrics.CommandMute, func() error { return c.handle.SetMuted(muted) }}})
	return nil
}

// ToggleFullscreen flips the fullscreen flag. It never touches playback;
// subscribers receive a FullscreenChange to resize their layout.
func (c *Controller) ToggleFullscreen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ErrDisposed
	}
	metrics.IncIntent(metrics.IntentToggleFullscreen)

	c.fullscreen = !c.fullscreen
	e := FullscreenChange{Fullscreen: c.fullscreen}
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendFullscreen(e)
	}
	c.subsMu.RUnlock()
	c.publishLocked()
	return nil
}

// ToggleResizeMode switches between Contain and Cover.
func (c *Controller) ToggleResizeMode() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ErrDisposed
	}
	metrics.IncIntent(metrics.IntentToggleResize)

	c.resize = c.resize.Toggle()
	c.publishLocked()
	return nil
}

// SetLooping asks the handle to rewind at the end of the stream. The next
// status reports whether it took effect.
func (c *Controller) SetLooping(loop bool) error {
	looper, ok := c.handle.(player.Looper)
	if !ok {
		return ErrLoopUnsupported
	}
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return ErrDisposed
	}
	metrics.IncIntent(metrics.IntentSetLooping)
	c.log.Debug().Str(log.FieldIntent, metrics.IntentSetLooping).Bool("loop", loop).Msg("intent")
	c.mu.Unlock()

	c.issue([]command{{metrics.CommandLoop, func() error { looper.SetLooping(loop); return nil }}})
	return nil
}

// ReportTap toggles controls: visible ones hide at once, hidden ones show
// with the auto-hide timeout. Taps are ignored in the error state, where
// controls stay on screen.
func (c *Controller) ReportTap() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ErrDisposed
	}
	metrics.IncIntent(metrics.IntentTap)

	if c.state == StateError {
		return nil
	}
	if c.controls.Visible() {
		c.controls.Hide()
	} else {
		c.controls.ShowWithTimeout(c.hideAfter, c.onControlsHidden)
	}
	c.publishLocked()
	return nil
}

// Retry restarts playback from zero after an error. The error is cleared
// optimistically; the next status confirms or restores it.
func (c *Controller) Retry() error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return ErrDisposed
	}
	metrics.IncIntent(metrics.IntentRetry)

	c.errMsg = ""
	c.tracker.ClearError()
	c.finished = false
	c.controls.Show()
	c.setStateLocked(c.deriveStateLocked())
	c.publishLocked()
	c.mu.Unlock()

	c.issue([]command{
		c.seekCommand(0),
		{metrics.CommandPlay, c.handle.Play},
	})
	return nil
}

// OnStatusUpdate ingests a status from the media handle. It is the callback
// registered with the handle and may be called from any goroutine.
func (c *Controller) OnStatusUpdate(raw player.RawStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}

	prev := c.tracker.Last()
	s := c.tracker.Ingest(raw)
	c.errMsg = s.Error

	switch {
	case s.Error != "":
		c.controls.Show()
		if c.state != StateError {
			metrics.IncPlaybackError()
			c.log.Error().Str(log.FieldPlayError, s.Error).Msg("media reported an error")
		}
	case !s.Loaded:
		c.finished = false
	case s.Finished():
		c.finished = true
		c.controls.Show()
		metrics.IncPlaybackFinished()
	case s.Playing:
		c.finished = false
		// Playback started outside an intent, e.g. from a remote control.
		if !prev.Playing && c.controls.Visible() && !c.controls.Pending() {
			c.controls.ShowWithTimeout(c.hideAfter, c.onControlsHidden)
		}
	case prev.Playing:
		c.controls.CancelPending()
	}

	c.setStateLocked(c.deriveStateLocked())
	c.publishLocked()
}

// Dispose tears the controller down: the hide timer is disposed, no further
// commands are issued, the status callback is removed and the orientation
// lock is released. Every step runs even if an earlier one fails. Safe to
// call more than once; later calls return nil.
func (c *Controller) Dispose() error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return nil
	}
	c.disposed = true
	c.mu.Unlock()

	var errs []error
	if err := safeCall(func() error { c.controls.Dispose(); return nil }); err != nil {
		errs = append(errs, fmt.Errorf("dispose controls timer: %w", err))
	}
	// A command already on its way to the handle finishes first.
	c.inflight.Wait()
	if err := safeCall(c.handle.Unsubscribe); err != nil {
		metrics.IncCommandFailure(metrics.CommandUnsubscribe)
		errs = append(errs, fmt.Errorf("unsubscribe from media handle: %w", err))
	}
	if c.orientation != nil {
		if err := safeCall(c.orientation.Release); err != nil {
			errs = append(errs, fmt.Errorf("release orientation: %w", err))
		}
	}

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	err := errors.Join(errs...)
	if err != nil {
		c.log.Warn().Err(err).Msg("dispose finished with errors")
	}
	return err
}

// begin registers an in-flight command. It reports false once Dispose has
// started, in which case the command must not be issued.
func (c *Controller) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return false
	}
	c.inflight.Add(1)
	return true
}

func (c *Controller) requireLoadedLocked() error {
	if c.disposed {
		return ErrDisposed
	}
	if !c.tracker.Last().Loaded {
		return ErrNotLoaded
	}
	return nil
}

func (c *Controller) deriveStateLocked() State {
	s := c.tracker.Last()
	switch {
	case c.errMsg != "":
		return StateError
	case !s.Loaded:
		return StateIdle
	case c.finished:
		return StateFinished
	case s.Playing:
		return StatePlaying
	default:
		return StateReady
	}
}

func (c *Controller) setStateLocked(next State) {
	if next == c.state {
		return
	}
	prev := c.state
	c.state = next

	metrics.IncStateTransition(prev.String(), next.String())
	c.log.Debug().
		Str(log.FieldOldState, prev.String()).
		Str(log.FieldNewState, next.String()).
		Msg("state changed")

	e := StateChange{Previous: prev, Current: next}
	c.subsMu.RLock()
	for _, sub := range c.subs {
		sub.sendState(e)
	}
	c.subsMu.RUnlock()
}

// refreshControlsLocked shows controls after activity: with the auto-hide
// timer while playing, pinned otherwise.
func (c *Controller) refreshControlsLocked() {
	if c.state == StatePlaying {
		c.controls.ShowWithTimeout(c.hideAfter, c.onControlsHidden)
		return
	}
	c.controls.Show()
}

// onControlsHidden runs on the timer goroutine after controls auto-hide.
func (c *Controller) onControlsHidden() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.publishLocked()
}

func (c *Controller) snapshotLocked() UIState {
	return UIState{
		State:           c.state,
		ControlsVisible: c.controls.Visible(),
		Muted:           c.muted,
		Fullscreen:      c.fullscreen,
		ResizeMode:      c.resize,
		Status:          c.tracker.Last(),
		Error:           c.errMsg,
	}
}

func (c *Controller) publishLocked() {
	ui := c.snapshotLocked()
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendUI(ui)
	}
}

func (c *Controller) seekCommand(pos time.Duration) command {
	return command{metrics.CommandSeek, func() error { return c.handle.SeekTo(pos) }}
}

// issue runs commands in order without holding mu. Failures are logged and
// reported to subscribers but never change state. No command reaches the
// handle once Dispose has unsubscribed from it.
func (c *Controller) issue(cmds []command) {
	for _, cmd := range cmds {
		if !c.begin() {
			return
		}
		err := safeCall(cmd.fn)
		c.inflight.Done()
		if err == nil {
			continue
		}
		metrics.IncCommandFailure(cmd.op)
		c.log.Warn().Err(err).Str(log.FieldCommand, cmd.op).Msg("media command failed")

		e := ErrorEvent{Operation: cmd.op, Err: err}
		c.subsMu.RLock()
		for _, sub := range c.subs {
			sub.sendError(e)
		}
		c.subsMu.RUnlock()
	}
}

// safeCall runs fn and converts a panic into an error.
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
