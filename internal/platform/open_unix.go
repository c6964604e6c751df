//go:build linux || freebsd || openbsd || netbsd || dragonfly

package platform

import (
	"fmt"
	"log"
	"os/exec"
	"time"

	"github.com/godbus/dbus/v5"
)

var (
	portalHandleToken = newPortalHandleToken
	portalOpen        = portalOpenURI
	fallbackOpen      = func(uri string) error { return exec.Command("xdg-open", uri).Start() }
)

// OpenURI hands uri to the desktop's default handler through the
// freedesktop OpenURI portal, falling back to xdg-open.
func OpenURI(uri string) error {
	uri, err := cleanURI(uri)
	if err != nil {
		return err
	}
	perr := portalOpen(uri)
	if perr == nil {
		return nil
	}
	log.Printf("open uri portal: %v", perr)
	if err := fallbackOpen(uri); err != nil {
		return fmt.Errorf("open %s: %w", uri, err)
	}
	return nil
}

func portalOpenURI(uri string) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.portal.Desktop", "/org/freedesktop/portal/desktop")
	call := obj.Call("org.freedesktop.portal.OpenURI.OpenURI", 0, "", uri, portalOpenURIOptions())
	if call.Err != nil {
		return fmt.Errorf("portal open uri call: %w", call.Err)
	}
	return nil
}

func newPortalHandleToken() string {
	return fmt.Sprintf("scribble-%d", time.Now().UnixNano())
}

func portalOpenURIOptions() map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(portalHandleToken()),
		"ask":          dbus.MakeVariant(false),
	}
}
