package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/marquee/internal/player"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  player.RawStatus
		want Status
	}{
		{
			name: "not loaded drops everything but error",
			raw: player.RawStatus{
				Position: player.Dur(time.Second),
				Playing:  true,
				Error:    "decode failed",
			},
			want: Status{Error: "decode failed"},
		},
		{
			name: "missing numbers default to zero",
			raw:  player.RawStatus{Loaded: true, Buffering: true},
			want: Status{Loaded: true, Buffering: true},
		},
		{
			name: "fields map directly",
			raw: player.RawStatus{
				Loaded:   true,
				Position: player.Dur(30 * time.Second),
				Duration: player.Dur(2 * time.Minute),
				Playing:  true,
				Looping:  true,
			},
			want: Status{
				Loaded:        true,
				Position:      30 * time.Second,
				Duration:      2 * time.Minute,
				DurationKnown: true,
				Playing:       true,
				Looping:       true,
			},
		},
		{
			name: "position clamped to duration",
			raw: player.RawStatus{
				Loaded:   true,
				Position: player.Dur(3 * time.Minute),
				Duration: player.Dur(2 * time.Minute),
			},
			want: Status{
				Loaded:        true,
				Position:      2 * time.Minute,
				Duration:      2 * time.Minute,
				DurationKnown: true,
			},
		},
		{
			name: "negative values clamped",
			raw: player.RawStatus{
				Loaded:   true,
				Position: player.Dur(-time.Second),
				Duration: player.Dur(-time.Second),
			},
			want: Status{Loaded: true, DurationKnown: true},
		},
		{
			name: "error passes through",
			raw: player.RawStatus{
				Loaded:       true,
				JustFinished: true,
				Error:        "network lost",
			},
			want: Status{Loaded: true, JustFinished: true, Error: "network lost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestStatus_Finished(t *testing.T) {
	assert.True(t, Status{JustFinished: true}.Finished())
	assert.False(t, Status{JustFinished: true, Looping: true}.Finished())
	assert.False(t, Status{}.Finished())
}

func TestStatus_Clamp(t *testing.T) {
	known := Status{Duration: time.Minute, DurationKnown: true}
	assert.Equal(t, time.Duration(0), known.Clamp(-time.Second))
	assert.Equal(t, 30*time.Second, known.Clamp(30*time.Second))
	assert.Equal(t, time.Minute, known.Clamp(time.Hour))

	unknown := Status{}
	assert.Equal(t, time.Duration(0), unknown.Clamp(-time.Second))
	assert.Equal(t, time.Hour, unknown.Clamp(time.Hour))
}

func TestStatusTracker_OverwritesWholesale(t *testing.T) {
	var tr StatusTracker
	tr.Ingest(player.RawStatus{
		Loaded:   true,
		Position: player.Dur(10 * time.Second),
		Duration: player.Dur(time.Minute),
		Playing:  true,
	})

	got := tr.Ingest(player.RawStatus{Loaded: true, Position: player.Dur(5 * time.Second)})
	assert.Equal(t, 5*time.Second, got.Position)
	assert.False(t, got.DurationKnown, "fields absent from the new status must not survive")
	assert.False(t, got.Playing)
	assert.Equal(t, got, tr.Last())
}

func TestStatusTracker_ClearError(t *testing.T) {
	var tr StatusTracker
	tr.Ingest(player.RawStatus{Loaded: true, Error: "boom"})
	tr.ClearError()
	assert.Empty(t, tr.Last().Error)
	assert.True(t, tr.Last().Loaded)
}
