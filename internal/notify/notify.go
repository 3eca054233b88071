// Package notify provides desktop notifications via D-Bus.
package notify

import "context"

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// ActionRetry is the key of the retry button on playback failures.
const ActionRetry = "retry"

// Action is a button shown on a notification.
type Action struct {
	Key   string
	Label string
}

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Category   string  // e.g. "device.error" (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
	Actions    []Action
}

// Invoked reports a click on a notification action.
type Invoked struct {
	ID  uint32
	Key string
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// ActionSource is implemented by notifiers that report action clicks.
type ActionSource interface {
	// Actions delivers clicks until ctx is cancelled, then closes the channel.
	Actions(ctx context.Context) (<-chan Invoked, error)
}
