// Package metrics exposes prometheus counters for the playback controller.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Intent labels.
const (
	IntentTogglePlay       = "toggle_play"
	IntentSeek             = "seek"
	IntentSeekRelative     = "seek_relative"
	IntentToggleMute       = "toggle_mute"
	IntentToggleFullscreen = "toggle_fullscreen"
	IntentToggleResize     = "toggle_resize"
	IntentTap              = "tap"
	IntentRetry            = "retry"
	IntentSetLooping       = "set_looping"
)

// Command labels.
const (
	CommandPlay        = "play"
	CommandPause       = "pause"
	CommandSeek        = "seek"
	CommandMute        = "mute"
	CommandUnsubscribe = "unsubscribe"
	CommandLoop        = "loop"
)

const labelUnknown = "unknown"

var (
	intentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marquee_intents_total",
		Help: "User intents handled by the playback controller",
	}, []string{"intent"})

	commandFailureTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marquee_command_failures_total",
		Help: "Media handle commands that failed to issue",
	}, []string{"command"})

	stateTransitionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marquee_state_transitions_total",
		Help: "Playback controller state transitions",
	}, []string{"from", "to"})

	playbackErrorTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marquee_playback_errors_total",
		Help: "Transitions into the error state caused by media status errors",
	})

	playbackFinishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marquee_playback_finished_total",
		Help: "Completed, non-looping play-throughs",
	})
)

// IncIntent counts a handled intent.
func IncIntent(intent string) {
	intentTotal.WithLabelValues(normalizeIntentLabel(intent)).Inc()
}

// IncCommandFailure counts a failed media handle command.
func IncCommandFailure(command string) {
	commandFailureTotal.WithLabelValues(normalizeCommandLabel(command)).Inc()
}

// IncStateTransition counts a controller state change.
func IncStateTransition(from, to string) {
	stateTransitionTotal.WithLabelValues(normalizeStateLabel(from), normalizeStateLabel(to)).Inc()
}

// IncPlaybackError counts a transition into the error state.
func IncPlaybackError() {
	playbackErrorTotal.Inc()
}

// IncPlaybackFinished counts a completed play-through.
func IncPlaybackFinished() {
	playbackFinishedTotal.Inc()
}

func normalizeIntentLabel(intent string) string {
	clean := strings.ToLower(strings.TrimSpace(intent))
	switch clean {
	case IntentTogglePlay, IntentSeek, IntentSeekRelative, IntentToggleMute,
		IntentToggleFullscreen, IntentToggleResize, IntentTap, IntentRetry,
		IntentSetLooping:
		return clean
	default:
		return labelUnknown
	}
}

func normalizeCommandLabel(command string) string {
	clean := strings.ToLower(strings.TrimSpace(command))
	switch clean {
	case CommandPlay, CommandPause, CommandSeek, CommandMute, CommandUnsubscribe,
		CommandLoop:
		return clean
	default:
		return labelUnknown
	}
}

func normalizeStateLabel(state string) string {
	clean := strings.ToLower(strings.TrimSpace(state))
	switch clean {
	case "idle", "ready", "playing", "finished", "error":
		return clean
	default:
		return labelUnknown
	}
}
