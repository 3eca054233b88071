// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback commands
	OpPlay  Op = "start playback"
	OpPause Op = "pause playback"
	OpSeek  Op = "seek"
	OpMute  Op = "change mute"

	// Media operations
	OpMediaOpen  Op = "open media"
	OpMediaRetry Op = "retry playback"

	// Orientation
	OpOrientationLock Op = "lock orientation"

	// Integrations
	OpMetricsServe Op = "serve metrics"
	OpMPRISStart   Op = "start MPRIS"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// commandOps maps controller command names to operations.
var commandOps = map[string]Op{
	"play":  OpPlay,
	"pause": OpPause,
	"seek":  OpSeek,
	"mute":  OpMute,
}

// ForCommand returns the operation for a controller command name. Unknown
// names are used as is.
func ForCommand(command string) Op {
	if op, ok := commandOps[command]; ok {
		return op
	}
	return Op(command)
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
