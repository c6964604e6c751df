package surface

import (
	"errors"
	"image"
	"sync"
)

// Geometry is one generation of surface size and image fit.
type Geometry struct {
	Generation uint64
	Size       Size
	Fit        FitRect
	// Image is the intrinsic size of the background the fit was computed
	// for.
	Image image.Point
}

// Ready reports whether the geometry has a drawable surface and a fitted
// image.
func (g Geometry) Ready() bool {
	return g.Generation > 0 && !g.Size.Empty() && g.Image.X > 0 && g.Image.Y > 0
}

// Tracker recomputes the fit when the surface or the image changes and
// notifies listeners with a new generation.
type Tracker struct {
	mu        sync.Mutex
	size      Size
	image     image.Point
	current   Geometry
	listeners []func(Geometry)
}

// NewTracker returns a Tracker with no surface and no image.
func NewTracker() *Tracker { return &Tracker{} }

// OnGeometryChanged registers fn to run after every new generation.
// Listeners run in registration order on the caller's goroutine.
func (t *Tracker) OnGeometryChanged(fn func(Geometry)) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	t.listeners = append(t.listeners, fn)
	t.mu.Unlock()
}

// Current returns the latest geometry.
func (t *Tracker) Current() Geometry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Resize records a new surface size.
func (t *Tracker) Resize(s Size) (Geometry, bool) {
	t.mu.Lock()
	if s == t.size && t.current.Generation > 0 {
		g := t.current
		t.mu.Unlock()
		return g, false
	}
	t.size = s
	t.mu.Unlock()
	return t.recompute()
}

// SetImage records the intrinsic size of a newly loaded background.
func (t *Tracker) SetImage(w, h int) (Geometry, bool) {
	t.mu.Lock()
	t.image = image.Pt(w, h)
	t.mu.Unlock()
	return t.recompute()
}

// ClearImage forgets the background, for example after a failed load.
// The surface stays, so listeners still repaint the empty letterbox.
func (t *Tracker) ClearImage() (Geometry, bool) {
	t.mu.Lock()
	t.image = image.Point{}
	t.mu.Unlock()
	return t.recompute()
}

func (t *Tracker) recompute() (Geometry, bool) {
	t.mu.Lock()
	fit, err := Fit(t.size.PixelWidth, t.size.PixelHeight, t.size.Scale, t.image.X, t.image.Y)
	if err != nil && !errors.Is(err, ErrImageNotLoaded) {
		t.mu.Unlock()
		return t.current, false
	}
	t.current = Geometry{
		Generation: t.current.Generation + 1,
		Size:       t.size,
		Fit:        fit,
		Image:      t.image,
	}
	g := t.current
	listeners := append([]func(Geometry){}, t.listeners...)
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(g)
	}
	return g, true
}
