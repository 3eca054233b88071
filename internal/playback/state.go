// internal/playback/state.go
package playback

// State is the controller's view of the playback lifecycle.
//
//	┌──────┐  loaded   ┌───────┐   playing    ┌─────────┐
//	│ Idle │ ────────▶ │ Ready │ ◀──────────▶ │ Playing │
//	└──────┘           └───────┘   paused     └─────────┘
//	                       ▲                       │
//	                       │ seek / play           │ finished, not looping
//	                       │                       ▼
//	                       │                 ┌──────────┐
//	                       └──────────────── │ Finished │
//	                                         └──────────┘
//
//	Error is reachable from every state when a status carries an error and
//	is left by Retry or by the next clean status.
type State int

const (
	StateIdle State = iota
	StateReady
	StatePlaying
	StateFinished
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StateFinished:
		return "Finished"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// IsLoaded returns true if media metadata is usable in this state.
func (s State) IsLoaded() bool {
	return s == StateReady || s == StatePlaying || s == StateFinished
}

// ResizeMode is how the picture fits the player view.
type ResizeMode int

const (
	ResizeContain ResizeMode = iota
	ResizeCover
)

// String returns the resize mode name.
func (m ResizeMode) String() string {
	switch m {
	case ResizeContain:
		return "Contain"
	case ResizeCover:
		return "Cover"
	default:
		return "Unknown"
	}
}

// Toggle returns the other resize mode.
func (m ResizeMode) Toggle() ResizeMode {
	if m == ResizeCover {
		return ResizeContain
	}
	return ResizeCover
}
