package hotspot

import (
	"fmt"
	"strings"
	"sync"

	"github.com/example/scribble/internal/surface"
)

// Kind names a hotspot presentation.
type Kind string

const (
	// KindOverlay draws each hotspot as a button over the image.
	KindOverlay Kind = "overlay"
	// KindRegion keeps hotspots invisible and treats them as an image map.
	KindRegion Kind = "region"
)

// ParseKind converts a config value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindOverlay, "button", "buttons":
		return KindOverlay, nil
	case KindRegion, "map", "imagemap", "click":
		return KindRegion, nil
	}
	return "", fmt.Errorf("unknown hotspot variant %q", s)
}

// Strategy decides how hotspots are shown and how they take input.
type Strategy interface {
	Kind() Kind
	// Visible reports whether the hotspots are drawn.
	Visible() bool
	// CapturesPress reports whether a press inside a hotspot belongs to
	// the hotspot instead of starting a stroke.
	CapturesPress() bool
	// Hit reports whether the CSS point activates r.
	Hit(r Rect, x, y float64) bool
}

// ClickRegion is an invisible image map. Presses still draw, and a click
// that lands inside a region activates it.
type ClickRegion struct{}

func (ClickRegion) Kind() Kind                    { return KindRegion }
func (ClickRegion) Visible() bool                 { return false }
func (ClickRegion) CapturesPress() bool           { return false }
func (ClickRegion) Hit(r Rect, x, y float64) bool { return r.Contains(x, y) }

// Overlay draws a button for each hotspot. The button owns presses that
// land on it. Rotation is only drawn, hit testing uses the unrotated rect.
type Overlay struct{}

func (Overlay) Kind() Kind                    { return KindOverlay }
func (Overlay) Visible() bool                 { return true }
func (Overlay) CapturesPress() bool           { return true }
func (Overlay) Hit(r Rect, x, y float64) bool { return r.Contains(x, y) }

// StrategyFor returns the strategy for k, defaulting to Overlay.
func StrategyFor(k Kind) Strategy {
	if k == KindRegion {
		return ClickRegion{}
	}
	return Overlay{}
}

// Engine owns the rects derived from the latest geometry.
type Engine struct {
	mu       sync.RWMutex
	specs    []Spec
	strategy Strategy
	rects    []Rect
	gen      uint64
}

// NewEngine returns an engine for specs. Nothing is laid out until
// Relayout is called with a ready geometry.
func NewEngine(specs []Spec, strategy Strategy) *Engine {
	if strategy == nil {
		strategy = Overlay{}
	}
	return &Engine{specs: append([]Spec(nil), specs...), strategy: strategy}
}

// Strategy returns the active strategy.
func (e *Engine) Strategy() Strategy {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.strategy
}

// SetSpecs replaces the specs and clears the layout until the next
// Relayout.
func (e *Engine) SetSpecs(specs []Spec, strategy Strategy) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.specs = append([]Spec(nil), specs...)
	if strategy != nil {
		e.strategy = strategy
	}
	e.rects = nil
	e.gen = 0
}

// Relayout recomputes the rects for g. It is meant to be registered with
// surface.Tracker.OnGeometryChanged.
func (e *Engine) Relayout(g surface.Geometry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !g.Ready() {
		e.rects = nil
		e.gen = g.Generation
		return
	}
	e.rects = Layout(e.specs, g.Fit)
	e.gen = g.Generation
}

// Generation returns the geometry generation of the current rects.
func (e *Engine) Generation() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gen
}

// Rects returns a copy of the current rects.
func (e *Engine) Rects() []Rect {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Rect(nil), e.rects...)
}

// VisibleRects returns the rects to draw, empty for invisible strategies.
func (e *Engine) VisibleRects() []Rect {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.strategy.Visible() {
		return nil
	}
	return append([]Rect(nil), e.rects...)
}

// HitTest returns the topmost rect activated by the CSS point.
func (e *Engine) HitTest(x, y float64) (Rect, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for i := len(e.rects) - 1; i >= 0; i-- {
		if e.strategy.Hit(e.rects[i], x, y) {
			return e.rects[i], true
		}
	}
	return Rect{}, false
}
