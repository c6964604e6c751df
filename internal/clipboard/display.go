package clipboard

import (
	"errors"
	"os"
	"runtime"
)

var errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")

// hasDisplay reports whether a clipboard owner can exist. Only X11 and
// Wayland sessions need checking.
func hasDisplay() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
