package notify

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	dbusDest   = "org.freedesktop.Notifications"
	dbusPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	dbusNotify = dbusDest + ".Notify"
	appName    = "notify-claude"
)

// urgencyLevels maps urgency names to the freedesktop "urgency" hint byte.
var urgencyLevels = map[string]byte{"low": 0, "normal": 1, "critical": 2}

// SendDBus posts m to the session bus notification service.
func SendDBus(ctx context.Context, m Message) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connecting to session bus: %w", err)
	}
	defer func() { _ = conn.Close() }()

	return notifyCall(ctx, conn.Object(dbusDest, dbusPath), m)
}

func notifyCall(ctx context.Context, obj dbus.BusObject, m Message) error {
	call := obj.CallWithContext(ctx, dbusNotify, 0, notifyArgs(m)...)
	if call.Err != nil {
		return fmt.Errorf("calling %s: %w", dbusNotify, call.Err)
	}
	return nil
}

// notifyArgs builds the Notify(app_name, replaces_id, app_icon, summary,
// body, actions, hints, expire_timeout) argument list.
func notifyArgs(m Message) []interface{} {
	urgency, ok := urgencyLevels[m.Urgency]
	if !ok {
		urgency = urgencyLevels["normal"]
	}
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgency),
	}
	return []interface{}{
		appName,
		uint32(0),
		"",
		m.Title,
		"",
		[]string{},
		hints,
		int32(-1),
	}
}
