package log

// Canonical field name constants for structured logging.
const (
	FieldComponent = "component"
	FieldEvent     = "event"

	// Playback fields
	FieldIntent    = "intent"
	FieldCommand   = "command"
	FieldOldState  = "old_state"
	FieldNewState  = "new_state"
	FieldPosition  = "position"
	FieldTarget    = "target"
	FieldDuration  = "duration"
	FieldPlayError = "playback_error"

	// Orientation fields
	FieldOrientation = "orientation"

	// Path fields
	FieldPath = "path"
)
