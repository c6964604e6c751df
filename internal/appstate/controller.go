package appstate

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"golang.org/x/image/font"

	"github.com/example/scribble/internal/hotspot"
	"github.com/example/scribble/internal/render"
	"github.com/example/scribble/internal/strokes"
	"github.com/example/scribble/internal/surface"
)

// Navigator opens hotspot targets.
type Navigator interface {
	Navigate(target string) error
}

// ControllerConfig configures a Controller.
type ControllerConfig struct {
	Color     string
	LineWidth float64
	Letterbox color.Color
	Specs     []hotspot.Spec
	Strategy  hotspot.Strategy
	Navigator Navigator
	Buttons   render.ButtonStyle
	// LabelFace returns the face for hotspot labels at a device scale.
	LabelFace func(scale float64) font.Face
	Verbose   bool
}

type dragState int

const (
	stateIdle dragState = iota
	stateDragging
	// statePressing means an overlay button captured the press.
	statePressing
)

// Controller is the drawing session for one surface. It owns the stroke
// history, the current colour and the drag state, and keeps the renderer
// and hotspot engine in step with the surface geometry. It is not safe for
// concurrent use; the window drives it from its event goroutine.
type Controller struct {
	store    *strokes.Store
	renderer *render.Renderer
	engine   *hotspot.Engine
	tracker  *surface.Tracker
	overlay  *render.Overlay
	nav      Navigator

	buttons   render.ButtonStyle
	labelFace func(float64) font.Face
	faceScale float64
	verbose   bool

	color string

	state   dragState
	pressed string
	inside  bool

	dirty bool
}

// NewController returns an idle Controller with no surface and no
// background.
func NewController(cfg ControllerConfig) *Controller {
	if cfg.Color == "" {
		cfg.Color = "#ED005B"
	}
	if cfg.Strategy == nil {
		cfg.Strategy = hotspot.Overlay{}
	}
	c := &Controller{
		store:     strokes.NewStore(),
		renderer:  render.NewRenderer(render.Options{LineWidth: cfg.LineWidth, Letterbox: cfg.Letterbox}),
		engine:    hotspot.NewEngine(cfg.Specs, cfg.Strategy),
		tracker:   surface.NewTracker(),
		overlay:   render.NewOverlay(nil),
		nav:       cfg.Navigator,
		buttons:   cfg.Buttons,
		labelFace: cfg.LabelFace,
		verbose:   cfg.Verbose,
		color:     cfg.Color,
	}
	c.tracker.OnGeometryChanged(c.engine.Relayout)
	c.tracker.OnGeometryChanged(c.repaint)
	return c
}

func (c *Controller) debugf(format string, args ...any) {
	if c.verbose {
		log.Printf(format, args...)
	}
}

// repaint runs for every new geometry generation.
func (c *Controller) repaint(g surface.Geometry) {
	if g.Size != c.renderer.Size() {
		if err := c.renderer.Resize(g.Size); err != nil {
			log.Printf("resize surface: %v", err)
			return
		}
	}
	if c.labelFace != nil && g.Size.Scale != c.faceScale {
		c.faceScale = g.Size.Scale
		c.overlay.SetFace(c.labelFace(g.Size.Scale))
	}
	c.renderAll()
}

func (c *Controller) renderAll() {
	c.dirty = true
	g := c.tracker.Current()
	if g.Size.Empty() {
		return
	}
	if err := c.renderer.RenderAll(c.store.Snapshot(), g.Fit); err != nil {
		log.Printf("render: %v", err)
		return
	}
	// The stroke in progress is not in history yet but must survive a
	// repaint.
	pts, ok := c.store.Active()
	if !ok || c.state != stateDragging {
		return
	}
	for i := 1; i < len(pts); i++ {
		if err := c.renderer.RenderIncrement(pts[i-1], pts[i], c.color); err != nil {
			log.Printf("render active stroke: %v", err)
			return
		}
	}
}

// Resize records a new viewport.
func (c *Controller) Resize(s surface.Size) {
	c.tracker.Resize(s)
}

// ImageLoaded sets the background and lays out the hotspots against it.
func (c *Controller) ImageLoaded(img image.Image) {
	if img == nil {
		c.ImageFailed(errors.New("nil image"))
		return
	}
	c.renderer.SetBackground(img)
	b := img.Bounds()
	c.tracker.SetImage(b.Dx(), b.Dy())
}

// ImageFailed drops the background. The surface keeps working and shows
// only the letterbox.
func (c *Controller) ImageFailed(err error) {
	log.Printf("load background: %v", err)
	c.renderer.SetBackground(nil)
	c.tracker.ClearImage()
}

// LoadPage replaces the hotspots and starts a fresh session: history and
// background are dropped until the next ImageLoaded.
func (c *Controller) LoadPage(specs []hotspot.Spec, strategy hotspot.Strategy, lineWidth float64) {
	c.store.Reset()
	c.state = stateIdle
	c.pressed = ""
	c.engine.SetSpecs(specs, strategy)
	c.renderer.SetLineWidth(lineWidth)
	c.renderer.SetBackground(nil)
	c.tracker.ClearImage()
}

// SetStyle changes the letterbox and hotspot button colours.
func (c *Controller) SetStyle(letterbox color.Color, buttons render.ButtonStyle) {
	c.renderer.SetLetterbox(letterbox)
	c.buttons = buttons
	c.overlay.Reset()
	c.renderAll()
}

// PointerDown starts a stroke, or presses an overlay button when the
// strategy captures presses on hotspots.
func (c *Controller) PointerDown(p strokes.Point) {
	if c.state != stateIdle {
		c.debugf("pointer down while busy, ending previous gesture")
		c.PointerCancel()
	}
	if c.engine.Strategy().CapturesPress() {
		if r, ok := c.engine.HitTest(p.X, p.Y); ok {
			c.state = statePressing
			c.pressed = r.ID
			c.inside = true
			c.dirty = true
			return
		}
	}
	c.store.Begin(p)
	c.state = stateDragging
}

// PointerMove extends the stroke in progress by one point.
func (c *Controller) PointerMove(p strokes.Point) {
	switch c.state {
	case stateIdle:
		c.debugf("pointer move while idle at %.1f,%.1f", p.X, p.Y)
		return
	case statePressing:
		r, ok := c.engine.HitTest(p.X, p.Y)
		inside := ok && r.ID == c.pressed
		if inside != c.inside {
			c.inside = inside
			c.dirty = true
		}
		return
	}
	last, ok := c.store.Last()
	if ok && last == p {
		return
	}
	if err := c.store.Extend(p); err != nil {
		log.Printf("extend stroke: %v", err)
		return
	}
	if err := c.renderer.RenderIncrement(last, p, c.color); err != nil {
		c.debugf("render segment: %v", err)
	}
	c.dirty = true
}

// PointerUp ends the gesture. A release over the pressed overlay button
// activates it. On an image map the region under the release activates
// once the stroke is sealed.
func (c *Controller) PointerUp(p strokes.Point) {
	switch c.state {
	case stateIdle:
		c.debugf("pointer up while idle")
	case statePressing:
		id := c.pressed
		c.state = stateIdle
		c.pressed = ""
		c.dirty = true
		if r, ok := c.engine.HitTest(p.X, p.Y); ok && r.ID == id {
			c.navigate(r)
		}
	case stateDragging:
		c.endStroke()
		if c.engine.Strategy().CapturesPress() {
			return
		}
		if r, ok := c.engine.HitTest(p.X, p.Y); ok {
			c.navigate(r)
		}
	}
}

// PointerLeave ends the gesture when the pointer leaves the surface.
func (c *Controller) PointerLeave() { c.cancel("leave") }

// PointerCancel ends the gesture when the platform takes the pointer away.
func (c *Controller) PointerCancel() { c.cancel("cancel") }

func (c *Controller) cancel(why string) {
	switch c.state {
	case statePressing:
		c.state = stateIdle
		c.pressed = ""
		c.dirty = true
	case stateDragging:
		c.debugf("pointer %s, sealing stroke", why)
		c.endStroke()
	}
}

func (c *Controller) endStroke() {
	pts, _ := c.store.Active()
	if len(pts) == 1 {
		if err := c.renderer.RenderDot(pts[0], c.color); err != nil {
			c.debugf("render dot: %v", err)
		}
	}
	c.state = stateIdle
	if _, ok := c.store.Seal(c.color); !ok {
		return
	}
	c.dirty = true
}

func (c *Controller) navigate(r hotspot.Rect) {
	if c.nav == nil {
		c.debugf("hotspot %s: no navigator for %s", r.ID, r.Target)
		return
	}
	if err := c.nav.Navigate(r.Target); err != nil {
		log.Printf("hotspot %s: %v", r.ID, err)
	}
}

// Undo removes the newest stroke and repaints. It reports false when the
// history was empty.
func (c *Controller) Undo() bool {
	if !c.store.Undo() {
		return false
	}
	c.renderAll()
	return true
}

// SetColor selects the colour of the stroke in progress and of the
// strokes after it.
func (c *Controller) SetColor(token string) error {
	if _, err := render.ParseColor(token); err != nil {
		return fmt.Errorf("set color: %w", err)
	}
	c.color = token
	if c.state == stateDragging {
		// A stroke is one colour: repaint what is already drawn of it.
		c.renderAll()
	}
	return nil
}

// Activate navigates to the hotspot at the CSS point. It reports false
// when there is none.
func (c *Controller) Activate(x, y float64) bool {
	r, ok := c.engine.HitTest(x, y)
	if !ok {
		return false
	}
	c.navigate(r)
	return true
}

// TargetAt returns the target of the hotspot at the CSS point.
func (c *Controller) TargetAt(x, y float64) (string, bool) {
	r, ok := c.engine.HitTest(x, y)
	if !ok {
		return "", false
	}
	return r.Target, true
}

// Frame returns the surface with the visible hotspot buttons composited on
// top. The image is a copy owned by the caller.
func (c *Controller) Frame() *image.RGBA {
	img := c.renderer.Image()
	g := c.tracker.Current()
	pressed := ""
	if c.state == statePressing && c.inside {
		pressed = c.pressed
	}
	if rects := c.engine.VisibleRects(); len(rects) > 0 {
		c.overlay.Draw(img, rects, g.Size.Scale, c.buttons, pressed)
	}
	c.dirty = false
	return img
}

// Dirty reports whether the surface changed since the last Frame.
func (c *Controller) Dirty() bool { return c.dirty }

// Color returns the current colour token.
func (c *Controller) Color() string { return c.color }

// History returns a copy of the sealed strokes.
func (c *Controller) History() []strokes.Stroke { return c.store.Snapshot() }

// Drawing reports whether a stroke is in progress.
func (c *Controller) Drawing() bool { return c.state == stateDragging }

// Geometry returns the latest surface geometry.
func (c *Controller) Geometry() surface.Geometry { return c.tracker.Current() }

// Rects returns the laid out hotspots.
func (c *Controller) Rects() []hotspot.Rect { return c.engine.Rects() }

// Strategy returns the hotspot variant in use.
func (c *Controller) Strategy() hotspot.Strategy { return c.engine.Strategy() }

// LineWidth returns the stroke width in CSS pixels.
func (c *Controller) LineWidth() float64 { return c.renderer.LineWidth() }

// Close releases the surface.
func (c *Controller) Close() error {
	return c.renderer.Close()
}
