// internal/app/update.go
package app

import (
	"errors"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/marquee/internal/errmsg"
	"github.com/llehouerou/marquee/internal/keymap"
	"github.com/llehouerou/marquee/internal/log"
	"github.com/llehouerou/marquee/internal/playback"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)
	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
		}
	case PlaybackMessage:
		m, cmd = m.handlePlaybackMsg(msg)
	}

	// Orientation changes made while handling msg become terminal commands.
	if lockCmd := m.lock.Drain(); lockCmd != nil {
		cmd = tea.Batch(cmd, lockCmd)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.ErrorMsg = ""

	resolver := m.keysDetails
	if m.Screen() == ScreenPlayer {
		resolver = m.keysPlayer
	}

	switch action := resolver.Resolve(msg); action {
	case keymap.ActionNone:
		return m, nil
	case keymap.ActionQuit:
		m.stopSession()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case keymap.ActionBack:
		m.nav.Back()
		m.syncSession()
		return m, nil
	case keymap.ActionOpenPlayer:
		return m.openPlayer()
	default:
		return m.handlePlayerAction(action)
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.session == nil || m.Screen() != ScreenPlayer {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.intent(m.session.ctrl.ReportTap())
	}
	return m, nil
}

// openPlayer pushes the player screen and opens the media in the background.
func (m Model) openPlayer() (Model, tea.Cmd) {
	m.stopSession()
	m.gen++
	m.route = m.nav.Push(ScreenPlayer)
	m.ui = playback.UIState{}
	m.openErr = ""
	m.loading = true
	return m, tea.Batch(OpenMediaCmd(m.opts.Open, m.opts.Path, m.gen), m.spinner.Tick)
}

func (m Model) handlePlayerAction(action keymap.Action) (Model, tea.Cmd) {
	if m.session == nil {
		// Media never opened: only retrying the open makes sense.
		if action == keymap.ActionRetry && m.openErr != "" && !m.loading {
			m.openErr = ""
			m.loading = true
			return m, tea.Batch(OpenMediaCmd(m.opts.Open, m.opts.Path, m.gen), m.spinner.Tick)
		}
		return m, nil
	}

	ctrl := m.session.ctrl
	switch action {
	case keymap.ActionPlayPause:
		m.intent(ctrl.TogglePlayPause())
	case keymap.ActionSkipBack:
		m.intent(ctrl.SkipBackward())
	case keymap.ActionSkipForward:
		m.intent(ctrl.SkipForward())
	case keymap.ActionSeekStart:
		m.intent(ctrl.Seek(0))
	case keymap.ActionSeekEnd:
		m.intent(ctrl.Seek(m.ui.Status.Duration))
	case keymap.ActionToggleMute:
		m.intent(ctrl.ToggleMute())
	case keymap.ActionToggleFullscreen:
		m.intent(ctrl.ToggleFullscreen())
	case keymap.ActionToggleResize:
		m.intent(ctrl.ToggleResizeMode())
	case keymap.ActionTap:
		m.intent(ctrl.ReportTap())
	case keymap.ActionRetry:
		if m.ui.State == playback.StateError {
			m.intent(ctrl.Retry())
		}
	}
	return m, nil
}

// intent reports an intent error. Intents on media that is not loaded yet
// are expected and only logged.
func (m *Model) intent(err error) {
	switch {
	case err == nil:
	case errors.Is(err, playback.ErrNotLoaded), errors.Is(err, playback.ErrDisposed):
		m.log.Debug().Err(err).Msg("intent ignored")
	default:
		m.ErrorMsg = err.Error()
	}
}

// handlePlaybackMsg routes messages of the player session.
func (m Model) handlePlaybackMsg(msg PlaybackMessage) (Model, tea.Cmd) {
	if msg.sessionGen() != m.gen {
		if opened, ok := msg.(MediaOpenedMsg); ok {
			// The user left before the media finished opening.
			_ = opened.Media.Close()
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case MediaOpenedMsg:
		return m.handleMediaOpened(msg)
	case MediaFailedMsg:
		m.loading = false
		m.openErr = errmsg.FormatWith(errmsg.OpMediaOpen, filepath.Base(m.opts.Path), msg.Err)
		m.log.Warn().Err(msg.Err).Str(log.FieldPath, m.opts.Path).Msg("open media")
		return m, nil
	case UIChangedMsg:
		m.ui = msg.UI
	case StateChangedMsg:
		m.log.Debug().
			Str(log.FieldOldState, msg.Previous.String()).
			Str(log.FieldNewState, msg.Current.String()).
			Msg("playback state changed")
	case FullscreenChangedMsg:
		m.ui.Fullscreen = msg.Fullscreen
	case ServiceErrorMsg:
		m.ErrorMsg = errmsg.Format(errmsg.ForCommand(msg.Operation), msg.Err)
	case ServiceClosedMsg:
		return m, nil
	}
	return m, m.watch()
}

func (m Model) handleMediaOpened(msg MediaOpenedMsg) (Model, tea.Cmd) {
	m.loading = false
	if m.route == nil || m.Screen() != ScreenPlayer {
		_ = msg.Media.Close()
		return m, nil
	}

	s, err := startSession(m.gen, msg.Media, msg.Info, m.route, m.lock,
		m.opts.Playback, m.opts.Hooks, m.log)
	if err != nil {
		_ = msg.Media.Close()
		m.openErr = errmsg.FormatWith(errmsg.OpMediaOpen, filepath.Base(m.opts.Path), err)
		return m, nil
	}
	m.session = s
	m.ui = s.ctrl.Snapshot()
	return m, m.watch()
}

func (m Model) watch() tea.Cmd {
	if m.session == nil {
		return nil
	}
	return WatchServiceEvents(m.session.sub, m.session.gen)
}

// syncSession tears the session down once its route is off the stack.
func (m *Model) syncSession() {
	if m.route == nil || m.route.Focused() {
		return
	}
	m.stopSession()
}

func (m *Model) stopSession() {
	if m.session != nil {
		_ = m.session.stop()
		m.session = nil
	}
	if m.route != nil {
		m.route.GoBack()
		m.route = nil
	}
	m.loading = false
	m.openErr = ""
	m.ui = playback.UIState{}
	// Late messages of the old session are dropped.
	m.gen++
}
