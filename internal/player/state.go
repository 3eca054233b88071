// internal/player/state.go
package player

// State is the lifecycle of the beep-backed Player.
//
//	┌──────────┐   Open    ┌──────────┐   Play   ┌──────────┐
//	│ Stopped  │ ────────▶ │  Paused  │ ───────▶ │ Playing  │
//	└──────────┘           └──────────┘ ◀─────── └──────────┘
//	     ▲                      ▲        Pause        │
//	     │ Close                │ SeekTo              │ end of stream
//	     │                 ┌──────────┐               │
//	     └──────────────── │  Ended   │ ◀─────────────┘
//	                       └──────────┘
//
// Valid transitions:
//   - Stopped → Paused  (Open decodes the file, nothing is queued yet)
//   - Paused  → Playing (Play, queues the stream on the speaker if needed)
//   - Playing → Paused  (Pause)
//   - Playing → Ended   (stream drained, not looping)
//   - Ended   → Paused  (SeekTo before the end)
//   - Ended   → Playing (Play restarts from the current position)
//   - any     → Stopped (Close)
//
// When looping, Playing never reaches Ended: the stream rewinds and keeps
// playing, and the next status still reports JustFinished once.
type State int

const (
	Stopped State = iota
	Paused
	Playing
	Ended
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	case Ended:
		return "Ended"
	default:
		return "Unknown"
	}
}

// IsLoaded returns true if a file is open.
func (s State) IsLoaded() bool {
	return s != Stopped
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows Play to start audio.
func (s State) CanResume() bool {
	return s == Paused || s == Ended
}
