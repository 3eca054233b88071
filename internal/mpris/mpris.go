//go:build linux

package mpris

import (
	"time"

	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/marquee/internal/player"
)

// Adapter exposes a playback controller over MPRIS on the session D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(ctrl Controller, info *player.TrackInfo) (*Adapter, error) {
	a := &Adapter{}
	a.server = server.NewServer("marquee", &rootAdapter{}, &playerAdapter{ctrl: ctrl, info: info})

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter. A player session has
// no window to raise and cannot quit the program that hosts it.
type rootAdapter struct{}

func (*rootAdapter) Raise() error { return nil }
func (*rootAdapter) Quit() error  { return nil }

func (*rootAdapter) CanQuit() (bool, error)      { return false, nil }
func (*rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (*rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (*rootAdapter) Identity() (string, error) {
	return "Marquee", nil
}

//nolint:revive // Method name required by interface.
func (*rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

// SupportedMimeTypes lists what the decoder opens.
func (*rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/x-wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	ctrl Controller
	info *player.TrackInfo
}

func (p *playerAdapter) playing() bool {
	return p.ctrl.Snapshot().Status.Playing
}

func (p *playerAdapter) Next() error {
	return p.ctrl.SkipForward()
}

func (p *playerAdapter) Previous() error {
	return p.ctrl.SkipBackward()
}

func (p *playerAdapter) Pause() error {
	if !p.playing() {
		return nil
	}
	return p.ctrl.TogglePlayPause()
}

func (p *playerAdapter) PlayPause() error {
	return p.ctrl.TogglePlayPause()
}

// Stop pauses; the controller has no stopped state of its own.
func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Play() error {
	if p.playing() {
		return nil
	}
	return p.ctrl.TogglePlayPause()
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.ctrl.SeekRelative(time.Duration(offset) * time.Microsecond)
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.ctrl.Seek(time.Duration(position) * time.Microsecond)
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.ctrl.Snapshot()), nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return metadata(p.info, p.ctrl.Snapshot()), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return volume(p.ctrl.Snapshot()), nil
}

// SetVolume maps volume onto mute: zero mutes, anything else unmutes.
func (p *playerAdapter) SetVolume(v float64) error {
	if (v <= 0) == p.ctrl.Snapshot().Muted {
		return nil
	}
	return p.ctrl.ToggleMute()
}

func (p *playerAdapter) Position() (int64, error) {
	return p.ctrl.Snapshot().Status.Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.ctrl.Snapshot().Status.Loaded, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.ctrl.Snapshot().Status.Loaded, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.ctrl.Snapshot().Status.Loaded, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.ctrl.Snapshot().Status.Loaded, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.ctrl.Snapshot().Status.Loaded, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus. A
// session plays a single file, so looping is always per track.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.ctrl.Snapshot().Status.Looping {
		return types.LoopStatusTrack, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Playlist loops the only track there is.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	switch status {
	case types.LoopStatusNone:
		return p.ctrl.SetLooping(false)
	case types.LoopStatusTrack, types.LoopStatusPlaylist:
		return p.ctrl.SetLooping(true)
	}
	return nil
}
