package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/llehouerou/marquee/internal/playback"
)

// errorTimeout keeps playback failures on screen longer than the default.
const errorTimeout = 10000

// PlaybackFailed builds the notification shown when playback of title fails.
func PlaybackFailed(title, message string) Notification {
	body := message
	if title != "" {
		body = title + ": " + message
	}
	return Notification{
		Title:    "Playback failed",
		Body:     body,
		Icon:     "dialog-error",
		Category: "device.error",
		Timeout:  errorTimeout,
		Urgency:  UrgencyCritical,
	}
}

// WatchOptions configures Watch.
type WatchOptions struct {
	Title string
	// Retry, when set and the notifier reports clicks, adds a Retry button
	// to failure notifications.
	Retry  func() error
	Logger zerolog.Logger
}

// Watch notifies each time the controller enters the error state and
// withdraws the notification once it leaves it. It returns when ctx is
// cancelled or the subscription is done.
func Watch(ctx context.Context, n Notifier, sub *playback.Subscription, opts WatchOptions) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var clicks <-chan Invoked
	if src, ok := n.(ActionSource); ok && opts.Retry != nil {
		ch, err := src.Actions(ctx)
		if err != nil {
			opts.Logger.Warn().Err(err).Msg("listen for notification actions")
		} else {
			clicks = ch
		}
	}

	var (
		prev playback.State
		id   uint32
	)
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done:
			return
		case inv, ok := <-clicks:
			if !ok {
				clicks = nil
				continue
			}
			if id == 0 || inv.ID != id || inv.Key != ActionRetry {
				continue
			}
			if err := opts.Retry(); err != nil {
				opts.Logger.Warn().Err(err).Msg("retry from notification")
			}
		case ui := <-sub.UIChanged:
			switch {
			case ui.State == playback.StateError && prev != playback.StateError:
				notif := PlaybackFailed(opts.Title, ui.Error)
				notif.ReplacesID = id
				if clicks != nil {
					notif.Actions = []Action{{Key: ActionRetry, Label: "Retry"}}
				}
				newID, err := n.Notify(notif)
				if err != nil {
					opts.Logger.Warn().Err(err).Msg("send error notification")
					break
				}
				id = newID
			case ui.State != playback.StateError && id != 0:
				if err := n.Close(id); err != nil {
					opts.Logger.Warn().Err(err).Msg("close error notification")
				}
				id = 0
			}
			prev = ui.State
		}
	}
}
