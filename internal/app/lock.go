// internal/app/lock.go
package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/marquee/internal/orientation"
)

// TerminalLock maps orientation locks onto the terminal: landscape takes over
// the whole terminal through the alternate screen, default returns to the
// inline view. Lock only records the change; Drain turns it into a command.
type TerminalLock struct {
	mu      sync.Mutex
	mode    orientation.Mode
	pending []tea.Cmd
}

var _ orientation.Lock = (*TerminalLock)(nil)

// Lock switches to mode. Locking the current mode is a no-op.
func (l *TerminalLock) Lock(mode orientation.Mode) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if mode == l.mode {
		return nil
	}
	l.mode = mode
	if mode == orientation.ModeLandscape {
		l.pending = append(l.pending, tea.EnterAltScreen)
	} else {
		l.pending = append(l.pending, tea.ExitAltScreen)
	}
	return nil
}

// Current returns the locked mode.
func (l *TerminalLock) Current() (orientation.Mode, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode, nil
}

// Drain returns the terminal commands queued since the last call, in order.
func (l *TerminalLock) Drain() tea.Cmd {
	l.mu.Lock()
	cmds := l.pending
	l.pending = nil
	l.mu.Unlock()

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}
