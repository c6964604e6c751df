// Package display reports the monitors attached to the session and the
// device pixel ratio they imply.
package display

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ReferenceDPI is the resolution at which one CSS pixel is one device pixel.
const ReferenceDPI = 96.0

var (
	// ErrUnsupported is returned when the platform cannot enumerate monitors.
	ErrUnsupported = errors.New("display probing is not supported on this platform")
	errNoMonitors  = errors.New("no monitors available")
)

// Monitor describes one output.
type Monitor struct {
	Index    int
	Name     string
	Rect     image.Rectangle
	WidthMM  uint32
	HeightMM uint32
	Primary  bool
}

// DPI returns the horizontal resolution of the monitor, or zero when the
// physical size is unknown.
func (m Monitor) DPI() float64 {
	if m.WidthMM == 0 || m.Rect.Dx() <= 0 {
		return 0
	}
	return float64(m.Rect.Dx()) / (float64(m.WidthMM) / 25.4)
}

// Density returns the device pixel ratio of the monitor rounded to the
// nearest quarter, never below 1.
func (m Monitor) Density() float64 {
	dpi := m.DPI()
	if dpi <= 0 {
		return 1
	}
	d := math.Round(dpi/ReferenceDPI*4) / 4
	if d < 1 {
		return 1
	}
	return d
}

// Backend enumerates monitors.
type Backend interface {
	Monitors() ([]Monitor, error)
}

var backend Backend = newBackend()

// Monitors lists the monitors of the current session.
func Monitors() ([]Monitor, error) {
	ms, err := backend.Monitors()
	if err != nil {
		return nil, err
	}
	if len(ms) == 0 {
		return nil, errNoMonitors
	}
	return ms, nil
}

// Primary returns the primary monitor, or the first one when none is
// marked primary.
func Primary() (Monitor, error) {
	ms, err := Monitors()
	if err != nil {
		return Monitor{}, err
	}
	for _, m := range ms {
		if m.Primary {
			return m, nil
		}
	}
	return ms[0], nil
}

// Density probes the device pixel ratio of the primary monitor.
func Density() (float64, error) {
	m, err := Primary()
	if err != nil {
		return 0, fmt.Errorf("probe density: %w", err)
	}
	return m.Density(), nil
}
