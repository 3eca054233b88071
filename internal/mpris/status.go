package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/marquee/internal/playback"
	"github.com/llehouerou/marquee/internal/player"
)

// Controller is the part of playback.Controller exposed over MPRIS.
type Controller interface {
	TogglePlayPause() error
	Seek(target time.Duration) error
	SeekRelative(delta time.Duration) error
	SkipForward() error
	SkipBackward() error
	ToggleMute() error
	SetLooping(loop bool) error
	Snapshot() playback.UIState
}

var _ Controller = (*playback.Controller)(nil)

// playbackStatus maps controller state to the MPRIS status. Finished media
// sits at its end and reports Stopped, like an error or missing media.
func playbackStatus(ui playback.UIState) types.PlaybackStatus {
	switch ui.State {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying
	case playback.StateReady:
		return types.PlaybackStatusPaused
	case playback.StateIdle, playback.StateFinished, playback.StateError:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}

func volume(ui playback.UIState) float64 {
	if ui.Muted {
		return 0
	}
	return 1
}

func metadata(info *player.TrackInfo, ui playback.UIState) types.Metadata {
	if info == nil {
		return types.Metadata{}
	}

	length := info.Duration
	if ui.Status.DurationKnown {
		length = ui.Status.Duration
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(info.Path)),
		Length:  types.Microseconds(length.Microseconds()),
		Title:   info.Title,
		Album:   info.Album,
	}
	if info.Artist != "" {
		meta.Artist = []string{info.Artist}
	}
	if artPath := FindPoster(info.Path); artPath != "" {
		meta.ArtUrl = "file://" + artPath
	}
	return meta
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
