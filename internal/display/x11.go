//go:build linux || freebsd || openbsd || netbsd || dragonfly

package display

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

type x11Backend struct{}

func newBackend() Backend {
	return x11Backend{}
}

func runningOnWayland() bool {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("XDG_SESSION_TYPE")), "wayland") {
		return true
	}
	return os.Getenv("WAYLAND_DISPLAY") != ""
}

// Monitors asks RandR for connected outputs. Without RandR the root
// screen is reported as a single monitor. Under Wayland XWayland may
// report a scaled geometry, so probing is refused unless DISPLAY is set.
func (x11Backend) Monitors() ([]Monitor, error) {
	if os.Getenv("DISPLAY") == "" {
		if runningOnWayland() {
			return nil, ErrUnsupported
		}
		return nil, fmt.Errorf("connect X server: DISPLAY not set")
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect X server: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if setup == nil {
		return nil, fmt.Errorf("xproto setup unavailable")
	}
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		return nil, fmt.Errorf("xproto screen unavailable")
	}
	ms, err := fetchMonitors(conn, screen.Root)
	if err != nil || len(ms) == 0 {
		return []Monitor{rootMonitor(screen)}, nil
	}
	return ms, nil
}

func rootMonitor(screen *xproto.ScreenInfo) Monitor {
	return Monitor{
		Name:     "screen",
		Rect:     image.Rect(0, 0, int(screen.WidthInPixels), int(screen.HeightInPixels)),
		WidthMM:  uint32(screen.WidthInMillimeters),
		HeightMM: uint32(screen.HeightInMillimeters),
		Primary:  true,
	}
}

func fetchMonitors(conn *xgb.Conn, root xproto.Window) ([]Monitor, error) {
	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("init randr: %w", err)
	}
	res, err := randr.GetScreenResources(conn, root).Reply()
	if err != nil {
		return nil, fmt.Errorf("randr screen resources: %w", err)
	}
	primary := randr.Output(0)
	if p, err := randr.GetOutputPrimary(conn, root).Reply(); err == nil {
		primary = p.Output
	}
	var ms []Monitor
	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(conn, output, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(conn, info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		ms = append(ms, Monitor{
			Index:    len(ms),
			Name:     strings.TrimSpace(string(info.Name)),
			Rect:     image.Rect(int(crtc.X), int(crtc.Y), int(crtc.X)+int(crtc.Width), int(crtc.Y)+int(crtc.Height)),
			WidthMM:  info.MmWidth,
			HeightMM: info.MmHeight,
			Primary:  output == primary,
		})
	}
	return ms, nil
}
