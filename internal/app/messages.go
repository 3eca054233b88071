// Package app contains the terminal host of the playback controller.
package app

import (
	"github.com/llehouerou/marquee/internal/playback"
	"github.com/llehouerou/marquee/internal/player"
)

// PlaybackMessage is implemented by messages coming from a player session.
// Each carries the generation of the session that produced it so messages
// from a torn-down session are dropped.
type PlaybackMessage interface {
	sessionGen() int
}

// MediaOpenedMsg is sent when the media of a session has been opened.
type MediaOpenedMsg struct {
	Gen   int
	Media Media
	Info  *player.TrackInfo
}

// MediaFailedMsg is sent when the media of a session could not be opened.
type MediaFailedMsg struct {
	Gen int
	Err error
}

// UIChangedMsg carries a new controller snapshot.
type UIChangedMsg struct {
	Gen int
	UI  playback.UIState
}

// StateChangedMsg is sent when the controller changes state.
type StateChangedMsg struct {
	Gen int
	playback.StateChange
}

// FullscreenChangedMsg is sent when the controller toggles fullscreen.
type FullscreenChangedMsg struct {
	Gen        int
	Fullscreen bool
}

// ServiceErrorMsg is sent when a media command failed.
type ServiceErrorMsg struct {
	Gen int
	playback.ErrorEvent
}

// ServiceClosedMsg is sent once the controller has been disposed.
type ServiceClosedMsg struct {
	Gen int
}

func (m MediaOpenedMsg) sessionGen() int       { return m.Gen }
func (m MediaFailedMsg) sessionGen() int       { return m.Gen }
func (m UIChangedMsg) sessionGen() int         { return m.Gen }
func (m StateChangedMsg) sessionGen() int      { return m.Gen }
func (m FullscreenChangedMsg) sessionGen() int { return m.Gen }
func (m ServiceErrorMsg) sessionGen() int      { return m.Gen }
func (m ServiceClosedMsg) sessionGen() int     { return m.Gen }
