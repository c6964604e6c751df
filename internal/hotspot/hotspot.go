// Package hotspot positions navigation regions relative to the fitted
// background image.
package hotspot

import (
	"fmt"
	"math"

	"github.com/example/scribble/internal/surface"
)

// Spec is a region expressed as fractions of the fitted image.
type Spec struct {
	ID     string
	Target string
	Label  string
	X      float64
	Y      float64
	Width  float64
	Height float64
	// Rotation is a cosmetic angle in degrees.
	Rotation float64
	// Side, when positive, replaces the fractions with a square of Side
	// CSS pixels centred on the image.
	Side float64
}

// Validate reports fractions outside [0,1].
func (s Spec) Validate() error {
	if s.Side < 0 || math.IsNaN(s.Side) {
		return fmt.Errorf("hotspot %s: negative side %v", s.ID, s.Side)
	}
	if s.Side > 0 {
		return nil
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"x", s.X}, {"y", s.Y}, {"width", s.Width}, {"height", s.Height}} {
		if math.IsNaN(f.v) || f.v < 0 || f.v > 1 {
			return fmt.Errorf("hotspot %s: %s %v outside [0,1]", s.ID, f.name, f.v)
		}
	}
	return nil
}

// Rect is a hotspot placed on the surface in CSS pixels.
type Rect struct {
	ID       string
	Target   string
	Label    string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
}

// Contains reports whether the CSS point lies within the unrotated rect,
// edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rect.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Layout places every spec on fit. It has no side effects.
func Layout(specs []Spec, fit surface.FitRect) []Rect {
	rects := make([]Rect, 0, len(specs))
	for _, s := range specs {
		if s.Side > 0 {
			cx := fit.OffsetX + fit.Width/2
			cy := fit.OffsetY + fit.Height/2
			rects = append(rects, Rect{
				ID:       s.ID,
				Target:   s.Target,
				Label:    s.Label,
				X:        cx - s.Side/2,
				Y:        cy - s.Side/2,
				Width:    s.Side,
				Height:   s.Side,
				Rotation: s.Rotation,
			})
			continue
		}
		rects = append(rects, Rect{
			ID:       s.ID,
			Target:   s.Target,
			Label:    s.Label,
			X:        fit.OffsetX + fit.Width*s.X,
			Y:        fit.OffsetY + fit.Height*s.Y,
			Width:    fit.Width * s.Width,
			Height:   fit.Height * s.Height,
			Rotation: s.Rotation,
		})
	}
	return rects
}
