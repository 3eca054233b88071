package playback

// UIState is the observable state a host renders.
type UIState struct {
	State           State
	ControlsVisible bool
	Muted           bool
	Fullscreen      bool
	ResizeMode      ResizeMode
	Status          Status
	// Error is the message shown with the retry affordance, empty otherwise.
	Error string
}

// StateChange is emitted when the controller moves between states.
type StateChange struct {
	Previous State
	Current  State
}

// FullscreenChange is emitted by ToggleFullscreen. Hosts resize their layout
// in response; playback is not affected.
type FullscreenChange struct {
	Fullscreen bool
}

// ErrorEvent is emitted when a command to the media handle fails. The
// controller state is left untouched; the next status is authoritative.
type ErrorEvent struct {
	Operation string // e.g., "play", "seek"
	Err       error
}
