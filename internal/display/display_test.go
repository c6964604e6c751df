package display

import (
	"errors"
	"image"
	"testing"
)

type fakeBackend struct {
	monitors []Monitor
	err      error
}

func (f fakeBackend) Monitors() ([]Monitor, error) { return f.monitors, f.err }

func useBackend(t *testing.T, b Backend) {
	t.Helper()
	prev := backend
	backend = b
	t.Cleanup(func() { backend = prev })
}

func TestMonitorDensity(t *testing.T) {
	cases := []struct {
		name string
		m    Monitor
		want float64
	}{
		{"unknown size", Monitor{Rect: image.Rect(0, 0, 1920, 1080)}, 1},
		{"96 dpi", Monitor{Rect: image.Rect(0, 0, 1920, 1080), WidthMM: 508}, 1},
		{"retina laptop", Monitor{Rect: image.Rect(0, 0, 2880, 1800), WidthMM: 331}, 2.25},
		{"low dpi", Monitor{Rect: image.Rect(0, 0, 1024, 768), WidthMM: 400}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.Density(); got != tc.want {
				t.Fatalf("Density() = %v (dpi %.1f), want %v", got, tc.m.DPI(), tc.want)
			}
		})
	}
}

func TestDensityUsesPrimary(t *testing.T) {
	useBackend(t, fakeBackend{monitors: []Monitor{
		{Name: "DP-1", Rect: image.Rect(0, 0, 1920, 1080), WidthMM: 508},
		{Name: "eDP-1", Rect: image.Rect(1920, 0, 4800, 1800), WidthMM: 331, Primary: true},
	}})
	d, err := Density()
	if err != nil {
		t.Fatalf("Density: %v", err)
	}
	if d != 2.25 {
		t.Fatalf("density = %v, want primary monitor's 2.25", d)
	}
}

func TestPrimaryFallsBackToFirst(t *testing.T) {
	useBackend(t, fakeBackend{monitors: []Monitor{{Name: "a"}, {Name: "b"}}})
	m, err := Primary()
	if err != nil || m.Name != "a" {
		t.Fatalf("Primary = %+v, %v", m, err)
	}
}

func TestDensityErrors(t *testing.T) {
	useBackend(t, fakeBackend{})
	if _, err := Density(); !errors.Is(err, errNoMonitors) {
		t.Fatalf("expected errNoMonitors, got %v", err)
	}
	useBackend(t, fakeBackend{err: ErrUnsupported})
	if _, err := Density(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
