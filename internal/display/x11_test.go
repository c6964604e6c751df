//go:build linux || freebsd || openbsd || netbsd || dragonfly

package display

import (
	"errors"
	"testing"
)

func TestRunningOnWayland(t *testing.T) {
	cases := []struct {
		session, wayland string
		want             bool
	}{
		{"wayland", "", true},
		{"x11", "wayland-0", true},
		{"x11", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		t.Setenv("XDG_SESSION_TYPE", c.session)
		t.Setenv("WAYLAND_DISPLAY", c.wayland)
		if got := runningOnWayland(); got != c.want {
			t.Errorf("session %q, WAYLAND_DISPLAY %q: got %v, want %v", c.session, c.wayland, got, c.want)
		}
	}
}

func TestPureWaylandHasNoMonitors(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "wayland-0")
	if _, err := (x11Backend{}).Monitors(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if _, err := Density(); err == nil {
		t.Fatal("Density without an X server should fail")
	}
}
