package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/scribble/internal/rc"
	"github.com/example/scribble/internal/render"
	"github.com/example/scribble/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	var currentTheme *theme.Theme
	paletteSeen := false

	onSection := func(section string, _ int) error {
		currentTheme = nil
		switch {
		case strings.HasPrefix(section, "theme."):
			name := strings.TrimPrefix(section, "theme.")
			// Start with defaults so missing keys are fine
			currentTheme = theme.Default()
			currentTheme.Name = name
			cfg.Themes[name] = currentTheme
		case section == "palette" && !paletteSeen:
			paletteSeen = true
			cfg.Palette = nil
		}
		return nil
	}

	err := rc.Scan(r, onSection, func(e rc.Entry) error {
		switch {
		case currentTheme != nil:
			if err := theme.SetField(currentTheme, e.Key, e.Value); err != nil {
				return fmt.Errorf("error in section [%s]: %w", e.Section, err)
			}
		case e.Section == "palette":
			if _, err := render.ParseColor(e.Value); err != nil {
				return fmt.Errorf("error in section [palette]: %w", err)
			}
			cfg.Palette = append(cfg.Palette, PaletteEntry{Name: e.Key, Color: e.Value})
		case e.Section == "notify":
			if err := setNotifyField(&cfg.Notify, e.Key, e.Value); err != nil {
				return fmt.Errorf("error in section [notify]: %w", err)
			}
		case e.Section == "":
			if err := setRootField(cfg, e.Key, e.Value); err != nil {
				return fmt.Errorf("error in root section: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette()
	}
	return cfg, nil
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "page":
		cfg.Page = value
	case "hotspots":
		v := strings.ToLower(value)
		if v != HotspotsOverlay && v != HotspotsRegion {
			return fmt.Errorf("hotspots must be %s or %s, got %q", HotspotsOverlay, HotspotsRegion, value)
		}
		cfg.Hotspots = v
	case "line_width":
		w, err := strconv.ParseFloat(value, 64)
		if err != nil || w <= 0 {
			return fmt.Errorf("invalid line_width %q", value)
		}
		cfg.LineWidth = w
	case "color", "colour":
		if _, err := render.ParseColor(value); err != nil {
			return err
		}
		cfg.Color = value
	case "theme":
		cfg.Theme = value
	case "density":
		if strings.EqualFold(value, "auto") {
			cfg.Density = 0
			return nil
		}
		d, err := strconv.ParseFloat(value, 64)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid density %q", value)
		}
		cfg.Density = d
	case "shadow":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		cfg.Shadow = b
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "navigate":
		n.Navigate = b
	case "load_failure":
		n.LoadFailure = b
	case "copy":
		n.Copy = b
	}
	return nil
}
