//go:build linux

package mpris

import (
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/marquee/internal/playback"
)

type fakeController struct {
	ui       playback.UIState
	toggles  int
	seeks    []time.Duration
	relative []time.Duration
	forward  int
	backward int
	mutes    int
	loops    []bool
}

func (f *fakeController) TogglePlayPause() error { f.toggles++; return nil }

func (f *fakeController) Seek(target time.Duration) error {
	f.seeks = append(f.seeks, target)
	return nil
}

func (f *fakeController) SeekRelative(delta time.Duration) error {
	f.relative = append(f.relative, delta)
	return nil
}

func (f *fakeController) SkipForward() error  { f.forward++; return nil }
func (f *fakeController) SkipBackward() error { f.backward++; return nil }
func (f *fakeController) ToggleMute() error   { f.mutes++; return nil }

func (f *fakeController) SetLooping(loop bool) error {
	f.loops = append(f.loops, loop)
	return nil
}

func (f *fakeController) Snapshot() playback.UIState { return f.ui }

func TestPlayerAdapter_PlayPauseOnlyWhenNeeded(t *testing.T) {
	f := &fakeController{}
	p := &playerAdapter{ctrl: f}

	require.NoError(t, p.Pause())
	assert.Equal(t, 0, f.toggles, "pause while paused is a no-op")

	require.NoError(t, p.Play())
	assert.Equal(t, 1, f.toggles)

	f.ui.Status.Playing = true
	require.NoError(t, p.Play())
	assert.Equal(t, 1, f.toggles, "play while playing is a no-op")

	require.NoError(t, p.Stop())
	assert.Equal(t, 2, f.toggles)

	require.NoError(t, p.PlayPause())
	assert.Equal(t, 3, f.toggles)
}

func TestPlayerAdapter_Seek(t *testing.T) {
	f := &fakeController{}
	p := &playerAdapter{ctrl: f}

	require.NoError(t, p.Seek(types.Microseconds(-5_000_000)))
	require.NoError(t, p.SetPosition("/track", types.Microseconds(30_000_000)))
	require.NoError(t, p.Next())
	require.NoError(t, p.Previous())

	assert.Equal(t, []time.Duration{-5 * time.Second}, f.relative)
	assert.Equal(t, []time.Duration{30 * time.Second}, f.seeks)
	assert.Equal(t, 1, f.forward)
	assert.Equal(t, 1, f.backward)
}

func TestPlayerAdapter_VolumeMapsToMute(t *testing.T) {
	f := &fakeController{}
	p := &playerAdapter{ctrl: f}

	require.NoError(t, p.SetVolume(0.5))
	assert.Equal(t, 0, f.mutes)

	require.NoError(t, p.SetVolume(0))
	assert.Equal(t, 1, f.mutes)

	f.ui.Muted = true
	v, err := p.Volume()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, 0)

	require.NoError(t, p.SetVolume(0))
	assert.Equal(t, 1, f.mutes)
	require.NoError(t, p.SetVolume(1))
	assert.Equal(t, 2, f.mutes)
}

func TestPlayerAdapter_Position(t *testing.T) {
	f := &fakeController{ui: playback.UIState{Status: playback.Status{Loaded: true, Position: 42 * time.Second}}}
	p := &playerAdapter{ctrl: f}

	pos, err := p.Position()
	require.NoError(t, err)
	assert.Equal(t, int64(42_000_000), pos)

	can, err := p.CanSeek()
	require.NoError(t, err)
	assert.True(t, can)
}

func TestPlayerAdapter_LoopStatus(t *testing.T) {
	f := &fakeController{}
	p := &playerAdapter{ctrl: f}

	st, err := p.LoopStatus()
	require.NoError(t, err)
	assert.Equal(t, types.LoopStatusNone, st)

	f.ui.Status.Looping = true
	st, err = p.LoopStatus()
	require.NoError(t, err)
	assert.Equal(t, types.LoopStatusTrack, st)

	require.NoError(t, p.SetLoopStatus(types.LoopStatusTrack))
	require.NoError(t, p.SetLoopStatus(types.LoopStatusNone))
	require.NoError(t, p.SetLoopStatus(types.LoopStatusPlaylist))
	assert.Equal(t, []bool{true, false, true}, f.loops)
}
