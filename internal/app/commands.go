// internal/app/commands.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/marquee/internal/playback"
)

// OpenMediaCmd opens path in the background.
func OpenMediaCmd(open Opener, path string, gen int) tea.Cmd {
	return func() tea.Msg {
		media, info, err := open(path)
		if err != nil {
			return MediaFailedMsg{Gen: gen, Err: err}
		}
		return MediaOpenedMsg{Gen: gen, Media: media, Info: info}
	}
}

// WatchServiceEvents returns a command that waits for the next controller
// event. It listens on all subscription channels and converts events to
// tea.Msg; the handler re-issues it after every message except the close.
func WatchServiceEvents(sub *playback.Subscription, gen int) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ui := <-sub.UIChanged:
			return UIChangedMsg{Gen: gen, UI: ui}
		case e := <-sub.StateChanged:
			return StateChangedMsg{Gen: gen, StateChange: e}
		case e := <-sub.FullscreenChanged:
			return FullscreenChangedMsg{Gen: gen, Fullscreen: e.Fullscreen}
		case e := <-sub.Error:
			return ServiceErrorMsg{Gen: gen, ErrorEvent: e}
		case <-sub.Done:
			return ServiceClosedMsg{Gen: gen}
		}
	}
}
