package playback

import (
	"time"

	"github.com/llehouerou/marquee/internal/player"
)

// Status is a complete, normalized playback status.
//
// When Loaded is false every field except Error is stale.
type Status struct {
	Loaded        bool
	Position      time.Duration
	Duration      time.Duration
	DurationKnown bool
	Playing       bool
	Buffering     bool
	Looping       bool
	JustFinished  bool
	Error         string
}

// Finished reports a completed play-through that will not loop.
func (s Status) Finished() bool {
	return s.JustFinished && !s.Looping
}

// Clamp bounds a position to [0, Duration], or [0, ∞) when the duration is
// unknown.
func (s Status) Clamp(pos time.Duration) time.Duration {
	if pos < 0 {
		return 0
	}
	if s.DurationKnown && pos > s.Duration {
		return s.Duration
	}
	return pos
}

// Normalize converts a possibly partial raw status into a Status. It is a
// pure function: errors pass through untouched.
func Normalize(raw player.RawStatus) Status {
	if !raw.Loaded {
		return Status{Error: raw.Error}
	}

	s := Status{
		Loaded:       true,
		Playing:      raw.Playing,
		Buffering:    raw.Buffering,
		Looping:      raw.Looping,
		JustFinished: raw.JustFinished,
		Error:        raw.Error,
	}
	if raw.Position != nil {
		s.Position = max(*raw.Position, 0)
	}
	if raw.Duration != nil {
		s.Duration = max(*raw.Duration, 0)
		s.DurationKnown = true
		s.Position = min(s.Position, s.Duration)
	}
	return s
}

// StatusTracker ingests raw statuses and keeps the latest normalized one.
// Each ingest replaces the previous status wholesale.
type StatusTracker struct {
	last Status
}

// Ingest normalizes raw, stores it as the latest status and returns it.
func (t *StatusTracker) Ingest(raw player.RawStatus) Status {
	t.last = Normalize(raw)
	return t.last
}

// Last returns the most recently ingested status.
func (t *StatusTracker) Last() Status {
	return t.last
}

// ClearError drops the error of the latest status.
func (t *StatusTracker) ClearError() {
	t.last.Error = ""
}
