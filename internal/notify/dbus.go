//go:build linux

package notify

import (
	"context"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
	dbusActionInvoked   = "ActionInvoked"

	actionBuffer = 8
)

// dbusNotifier sends notifications via D-Bus.
type dbusNotifier struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// New creates a Notifier that sends desktop notifications via D-Bus.
// Returns a no-op notifier if D-Bus is unavailable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		// D-Bus not available, return no-op notifier (intentional graceful degradation)
		return &stubNotifier{}, nil //nolint:nilerr // graceful fallback when D-Bus unavailable
	}

	obj := conn.Object(dbusNotifyDest, dbusNotifyPath)
	return &dbusNotifier{conn: conn, obj: obj}, nil
}

// Notify sends a notification via D-Bus.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant("marquee"),
	}
	if notif.Category != "" {
		hints["category"] = dbus.MakeVariant(notif.Category)
	}

	// Actions travel as a flat key, label, key, label... list.
	actions := make([]string, 0, 2*len(notif.Actions))
	for _, a := range notif.Actions {
		actions = append(actions, a.Key, a.Label)
	}

	// D-Bus Notify method signature:
	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,                // flags
		"Marquee",        // app_name
		notif.ReplacesID, // replaces_id
		notif.Icon,       // app_icon (path or icon name)
		notif.Title,      // summary
		notif.Body,       // body
		actions,          // actions
		hints,            // hints
		notif.Timeout,    // expire_timeout
	)

	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// Close closes a notification by ID.
func (n *dbusNotifier) Close(id uint32) error {
	call := n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id)
	return call.Err
}

// Actions subscribes to ActionInvoked signals of the notification daemon.
func (n *dbusNotifier) Actions(ctx context.Context) (<-chan Invoked, error) {
	match := []dbus.MatchOption{
		dbus.WithMatchObjectPath(dbusNotifyPath),
		dbus.WithMatchInterface(dbusNotifyInterface),
		dbus.WithMatchMember(dbusActionInvoked),
	}
	if err := n.conn.AddMatchSignal(match...); err != nil {
		return nil, err
	}

	signals := make(chan *dbus.Signal, actionBuffer)
	n.conn.Signal(signals)

	out := make(chan Invoked, actionBuffer)
	go func() {
		defer func() {
			n.conn.RemoveSignal(signals)
			_ = n.conn.RemoveMatchSignal(match...)
		}()
		relayActions(ctx, signals, out)
	}()
	return out, nil
}

// relayActions forwards ActionInvoked signals to out until ctx is done or
// godbus closes signals, then closes out. Clicks are dropped when out is full.
func relayActions(ctx context.Context, signals <-chan *dbus.Signal, out chan<- Invoked) {
	defer close(out)
	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-signals:
			if !ok {
				return
			}
			inv, ok := parseActionInvoked(sig)
			if !ok {
				continue
			}
			select {
			case out <- inv:
			default:
			}
		}
	}
}

func parseActionInvoked(sig *dbus.Signal) (Invoked, bool) {
	if sig == nil || sig.Name != dbusNotifyInterface+"."+dbusActionInvoked || len(sig.Body) != 2 {
		return Invoked{}, false
	}
	id, ok := sig.Body[0].(uint32)
	if !ok {
		return Invoked{}, false
	}
	key, ok := sig.Body[1].(string)
	if !ok {
		return Invoked{}, false
	}
	return Invoked{ID: id, Key: key}, true
}

// stubNotifier is used when D-Bus is unavailable.
type stubNotifier struct{}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (s *stubNotifier) Close(_ uint32) error {
	return nil
}
