//go:build linux || freebsd || openbsd || netbsd || dragonfly

package platform

import (
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

// Notify sends a desktop notification using the Freedesktop.org notification spec.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		AppName, uint32(0), opts.IconPath, title, body, []string{}, notifyHints(opts), notifyTimeout(opts))
	return call.Err
}

func notifyHints(opts Options) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{}
	if opts.Urgent {
		hints["urgency"] = dbus.MakeVariant(byte(2))
	}
	return hints
}

func notifyTimeout(opts Options) int32 {
	if opts.Urgent && opts.Timeout == 0 {
		return 0
	}
	if opts.Timeout > 0 {
		return int32(opts.Timeout / time.Millisecond)
	}
	return 5000
}
