// internal/player/interface.go
package player

import "time"

// Handle is the media capability a playback controller drives.
//
// Every command is fire-and-forget: a nil error only means the command was
// accepted, not that it took effect. The authoritative state arrives later
// through the status callback registered with Subscribe.
type Handle interface {
	Play() error
	Pause() error
	SeekTo(position time.Duration) error
	SetMuted(muted bool) error

	// Subscribe registers the status callback. A handle delivers statuses in
	// the order it produced them, from any goroutine, one at a time.
	Subscribe(fn func(RawStatus)) error
	Unsubscribe() error
}

// Looper is implemented by handles that can rewind at the end of the stream.
// The change shows up as RawStatus.Looping.
type Looper interface {
	SetLooping(loop bool)
}

// RawStatus is a status event as reported by a media handle. Fields a handle
// does not know about are left at their zero value; numeric fields use
// pointers so "not reported" differs from zero.
type RawStatus struct {
	Loaded       bool
	Position     *time.Duration
	Duration     *time.Duration
	Playing      bool
	Buffering    bool
	Looping      bool
	JustFinished bool
	Error        string
}

// Dur is a convenience for filling RawStatus.Position and RawStatus.Duration.
func Dur(d time.Duration) *time.Duration {
	return &d
}

// Verify Player implements Handle at compile time.
var (
	_ Handle = (*Player)(nil)
	_ Looper = (*Player)(nil)
)
