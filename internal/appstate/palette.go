package appstate

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/example/scribble/internal/config"
	"github.com/example/scribble/internal/render"
)

// PaletteColor is one swatch: the token handed to the controller plus the
// parsed colour used to draw the swatch.
type PaletteColor struct {
	Name  string
	Token string
	Color color.RGBA
}

// Palette is the ordered list of swatches.
type Palette struct {
	colors []PaletteColor
}

// NewPalette parses the configured entries.
func NewPalette(entries []config.PaletteEntry) (*Palette, error) {
	p := &Palette{}
	for _, e := range entries {
		if _, err := p.Ensure(e.Color, e.Name); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Len returns the number of swatches.
func (p *Palette) Len() int { return len(p.colors) }

// Colors returns a copy of the swatches.
func (p *Palette) Colors() []PaletteColor {
	out := make([]PaletteColor, len(p.colors))
	copy(out, p.colors)
	return out
}

// At returns the swatch at idx, clamped to the palette.
func (p *Palette) At(idx int) PaletteColor {
	if len(p.colors) == 0 {
		return PaletteColor{}
	}
	return p.colors[p.clamp(idx)]
}

// Index returns the swatch drawing the same colour as token, or -1.
func (p *Palette) Index(token string) int {
	col, err := render.ParseColor(token)
	if err != nil {
		return -1
	}
	for i, existing := range p.colors {
		if existing.Color == col {
			return i
		}
	}
	return -1
}

// Ensure makes sure token is in the palette and returns its index.
func (p *Palette) Ensure(token, name string) (int, error) {
	token = strings.TrimSpace(token)
	col, err := render.ParseColor(token)
	if err != nil {
		return -1, fmt.Errorf("palette %s: %w", name, err)
	}
	for idx, existing := range p.colors {
		if existing.Color == col {
			if existing.Name == "" && name != "" {
				p.colors[idx].Name = name
			}
			return idx, nil
		}
	}
	if name == "" {
		name = render.Hex(col)
	}
	p.colors = append(p.colors, PaletteColor{Name: name, Token: token, Color: col})
	return len(p.colors) - 1, nil
}

func (p *Palette) clamp(idx int) int {
	if len(p.colors) == 0 || idx < 0 {
		return 0
	}
	if idx >= len(p.colors) {
		return len(p.colors) - 1
	}
	return idx
}
