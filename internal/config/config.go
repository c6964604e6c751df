package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/example/scribble/internal/theme"
)

// Hotspot variants accepted by the hotspots key.
const (
	HotspotsOverlay = "overlay"
	HotspotsRegion  = "region"
)

// DefaultPage is opened when no page is configured.
const DefaultPage = "embedded:home.page"

// DefaultColor is the initial stroke colour.
const DefaultColor = "#ED005B"

// PaletteEntry is a named colour swatch.
type PaletteEntry struct {
	Name  string
	Color string
}

// DefaultPalette returns the swatches shown when the config has no
// [palette] section.
func DefaultPalette() []PaletteEntry {
	return []PaletteEntry{
		{Name: "pink", Color: "#ED005B"},
		{Name: "black", Color: "#000000"},
		{Name: "blue", Color: "#1E64FF"},
		{Name: "green", Color: "#00A050"},
		{Name: "yellow", Color: "#FFD200"},
		{Name: "white", Color: "#FFFFFF"},
	}
}

// Notify holds notification settings.
type Notify struct {
	Navigate    bool
	LoadFailure bool
	Copy        bool
}

// Config holds the application configuration.
type Config struct {
	Page     string
	Hotspots string
	// LineWidth is the stroke width in CSS pixels. Zero picks the default
	// of the hotspot variant.
	LineWidth float64
	Color     string
	Theme     string
	// Density overrides the device pixel ratio. Zero means auto.
	Density float64
	Shadow  bool
	Palette []PaletteEntry
	Notify  Notify
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Page:     DefaultPage,
		Hotspots: HotspotsOverlay,
		Color:    DefaultColor,
		Shadow:   true,
		Palette:  DefaultPalette(),
		Notify: Notify{
			LoadFailure: true,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "page = %s\n", c.Page)
	fmt.Fprintf(&sb, "hotspots = %s\n", c.Hotspots)
	if c.LineWidth > 0 {
		fmt.Fprintf(&sb, "line_width = %s\n", strconv.FormatFloat(c.LineWidth, 'g', -1, 64))
	}
	fmt.Fprintf(&sb, "color = %s\n", c.Color)
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.Density > 0 {
		fmt.Fprintf(&sb, "density = %s\n", strconv.FormatFloat(c.Density, 'g', -1, 64))
	} else {
		sb.WriteString("density = auto\n")
	}
	fmt.Fprintf(&sb, "shadow = %v\n", c.Shadow)
	sb.WriteString("\n")

	sb.WriteString("[palette]\n")
	for _, p := range c.Palette {
		fmt.Fprintf(&sb, "%s = %s\n", p.Name, p.Color)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "navigate = %v\n", c.Notify.Navigate)
	fmt.Fprintf(&sb, "load_failure = %v\n", c.Notify.LoadFailure)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, kv := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", kv[0], kv[1])
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.String()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ResolveTheme returns the theme named by the config. Themes defined in the
// config file win over the loader's search path.
func (c *Config) ResolveTheme(l *theme.Loader, override string) (*theme.Theme, error) {
	name := c.Theme
	if override != "" {
		name = override
	}
	if t, ok := c.Themes[name]; ok {
		return t.Clone(), nil
	}
	if l == nil {
		l = theme.NewLoader()
	}
	return l.Load(name)
}
