// Package keymap defines key bindings for the application.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents a user-triggerable action.
type Action string

const (
	ActionNone Action = ""

	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"
	ActionBack Action = "back"

	// Details screen
	ActionOpenPlayer Action = "open_player"

	// Player screen
	ActionPlayPause        Action = "play_pause"
	ActionSkipBack         Action = "skip_back"
	ActionSkipForward      Action = "skip_forward"
	ActionSeekStart        Action = "seek_start"
	ActionSeekEnd          Action = "seek_end"
	ActionToggleMute       Action = "toggle_mute"
	ActionToggleFullscreen Action = "toggle_fullscreen"
	ActionToggleResize     Action = "toggle_resize"
	ActionTap              Action = "tap"
	ActionRetry            Action = "retry"
)

// Binding ties a bubbles key binding to an action.
type Binding struct {
	key.Binding
	Action Action
}

func bind(action Action, help string, keys ...string) Binding {
	label := keys[0]
	if label == " " {
		label = "space"
	}
	return Binding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, help)),
		Action:  action,
	}
}

// Global bindings apply on every screen.
var Global = []Binding{
	bind(ActionQuit, "quit", "q", "ctrl+c"),
	bind(ActionHelp, "help", "?"),
	bind(ActionBack, "back", "esc", "backspace"),
}

// Details bindings apply on the details screen.
var Details = []Binding{
	bind(ActionOpenPlayer, "play trailer", "enter", "p"),
}

// Player bindings apply on the player screen.
var Player = []Binding{
	bind(ActionPlayPause, "play/pause", " ", "k"),
	bind(ActionSkipBack, "-skip", "left", "j"),
	bind(ActionSkipForward, "+skip", "right", "l"),
	bind(ActionSeekStart, "start", "home", "0"),
	bind(ActionSeekEnd, "end", "end"),
	bind(ActionToggleMute, "mute", "m"),
	bind(ActionToggleFullscreen, "fullscreen", "f"),
	bind(ActionToggleResize, "fit/fill", "z"),
	bind(ActionTap, "controls", "enter", "t"),
	bind(ActionRetry, "retry", "r"),
}

// Resolver maps key messages to actions for a screen.
type Resolver struct {
	bindings []Binding
}

// NewResolver creates a resolver; earlier bindings win on conflicts.
func NewResolver(sets ...[]Binding) *Resolver {
	r := &Resolver{}
	for _, set := range sets {
		r.bindings = append(r.bindings, set...)
	}
	return r
}

// Resolve returns the action for msg, or ActionNone if not bound.
func (r *Resolver) Resolve(msg tea.KeyMsg) Action {
	for _, b := range r.bindings {
		if key.Matches(msg, b.Binding) {
			return b.Action
		}
	}
	return ActionNone
}

// ShortHelp implements help.KeyMap.
func (r *Resolver) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, b.Binding)
	}
	return out
}

// FullHelp implements help.KeyMap.
func (r *Resolver) FullHelp() [][]key.Binding {
	const perColumn = 5
	short := r.ShortHelp()
	var cols [][]key.Binding
	for i := 0; i < len(short); i += perColumn {
		cols = append(cols, short[i:min(i+perColumn, len(short))])
	}
	return cols
}
