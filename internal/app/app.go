// internal/app/app.go
package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/marquee/internal/keymap"
	"github.com/llehouerou/marquee/internal/playback"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

// Options configures the application model.
type Options struct {
	Path     string
	Details  Details
	Open     Opener
	Playback playback.Options // HideAfter, SkipInterval, StartMuted
	Hooks    []SessionHook
	Images   bool // render the poster with terminal graphics
	Logger   zerolog.Logger
}

// Model is the root application model containing all state.
type Model struct {
	opts Options
	log  zerolog.Logger

	nav   *Stack
	lock  *TerminalLock
	route *Route // player route of the current session, nil on details

	session *session
	gen     int
	loading bool
	openErr string
	ui      playback.UIState

	keysDetails *keymap.Resolver
	keysPlayer  *keymap.Resolver
	help        help.Model
	spinner     spinner.Model
	art         *artCache

	ErrorMsg string
	Width    int
	Height   int
}

// artCache holds the details artwork, which is decoded and scaled once.
type artCache struct {
	rendered string
	done     bool
}

// New creates the application model on the details screen.
func New(opts Options) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = styles.T().S().Title

	return Model{
		opts:        opts,
		log:         opts.Logger,
		nav:         NewStack(ScreenDetails),
		lock:        &TerminalLock{},
		keysDetails: keymap.NewResolver(keymap.Global, keymap.Details),
		keysPlayer:  keymap.NewResolver(keymap.Global, keymap.Player),
		help:        help.New(),
		spinner:     sp,
		art:         &artCache{},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Screen returns the focused screen.
func (m Model) Screen() Screen {
	return m.nav.Top().Screen
}

// UI returns the last controller snapshot of the player screen.
func (m Model) UI() playback.UIState {
	return m.ui
}

// Shutdown stops the running player session, if any.
func (m *Model) Shutdown() {
	m.stopSession()
}
