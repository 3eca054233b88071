// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// Mock is a test double for Handle. It records every command and lets tests
// push status events with Emit.
type Mock struct {
	mu sync.Mutex

	playCalls   int
	pauseCalls  int
	seekCalls   []time.Duration
	muteCalls   []bool
	loopCalls   []bool
	unsubscribe int

	playErr   error
	pauseErr  error
	seekErr   error
	muteErr   error
	unsubErr  error
	playPanic any

	sub func(RawStatus)
}

// NewMock creates a new mock handle for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.playPanic != nil {
		panic(m.playPanic)
	}
	return m.playErr
}

func (m *Mock) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	return m.pauseErr
}

func (m *Mock) SeekTo(position time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, position)
	return m.seekErr
}

func (m *Mock) SetMuted(muted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muteCalls = append(m.muteCalls, muted)
	return m.muteErr
}

func (m *Mock) SetLooping(loop bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loopCalls = append(m.loopCalls, loop)
}

func (m *Mock) Subscribe(fn func(RawStatus)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sub = fn
	return nil
}

func (m *Mock) Unsubscribe() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unsubscribe++
	m.sub = nil
	return m.unsubErr
}

// Test helpers

// Emit delivers a status to the current subscriber, if any.
func (m *Mock) Emit(s RawStatus) {
	m.mu.Lock()
	fn := m.sub
	m.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}

// Subscribed reports whether a status callback is registered.
func (m *Mock) Subscribed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sub != nil
}

func (m *Mock) SetPlayError(err error) { m.mu.Lock(); m.playErr = err; m.mu.Unlock() }

func (m *Mock) SetPauseError(err error) { m.mu.Lock(); m.pauseErr = err; m.mu.Unlock() }

func (m *Mock) SetSeekError(err error) { m.mu.Lock(); m.seekErr = err; m.mu.Unlock() }

func (m *Mock) SetMuteError(err error) { m.mu.Lock(); m.muteErr = err; m.mu.Unlock() }

func (m *Mock) SetUnsubscribeError(err error) { m.mu.Lock(); m.unsubErr = err; m.mu.Unlock() }

// SetPlayPanic makes Play panic with v, simulating a handle that throws.
func (m *Mock) SetPlayPanic(v any) { m.mu.Lock(); m.playPanic = v; m.mu.Unlock() }

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) MuteCalls() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bool(nil), m.muteCalls...)
}

func (m *Mock) LoopCalls() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bool(nil), m.loopCalls...)
}

func (m *Mock) UnsubscribeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unsubscribe
}

// Verify Mock implements Handle at compile time.
var _ Handle = (*Mock)(nil)
