// Package render rasterizes the background and strokes onto the drawing
// surface and draws the hotspot buttons.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"

	"github.com/example/scribble/internal/strokes"
	"github.com/example/scribble/internal/surface"
)

// DefaultLineWidth is the stroke width in CSS pixels when none is
// configured.
const DefaultLineWidth = 3

// ErrNoSurface is returned when drawing before the first resize.
var ErrNoSurface = errors.New("render: surface has no pixels")

// Options configures a Renderer.
type Options struct {
	LineWidth float64
	// Letterbox fills the surface outside the background image.
	Letterbox color.Color
}

// Renderer owns the device pixel canvas for one surface generation. All
// drawing coordinates are CSS pixels.
type Renderer struct {
	opts Options
	size surface.Size
	dc   *gg.Context

	bg     image.Image
	bgBuf  *gg.ImageBuf
	bgSize image.Point
}

// NewRenderer returns a Renderer with no surface yet.
func NewRenderer(opts Options) *Renderer {
	if opts.LineWidth <= 0 {
		opts.LineWidth = DefaultLineWidth
	}
	if opts.Letterbox == nil {
		opts.Letterbox = color.White
	}
	return &Renderer{opts: opts}
}

// LineWidth returns the configured stroke width.
func (r *Renderer) LineWidth() float64 { return r.opts.LineWidth }

// SetLineWidth changes the stroke width for subsequent drawing.
func (r *Renderer) SetLineWidth(w float64) {
	if w > 0 {
		r.opts.LineWidth = w
	}
}

// SetLetterbox changes the fill used outside the image.
func (r *Renderer) SetLetterbox(c color.Color) {
	if c != nil {
		r.opts.Letterbox = c
	}
}

// Size returns the current surface.
func (r *Renderer) Size() surface.Size { return r.size }

// Resize reallocates the canvas for s. The canvas is cleared and must be
// repainted with RenderAll.
func (r *Renderer) Resize(s surface.Size) error {
	r.size = s
	if s.Empty() {
		r.dc = nil
		return nil
	}
	if r.dc == nil {
		r.dc = gg.NewContext(s.PixelWidth, s.PixelHeight)
	} else if err := r.dc.Resize(s.PixelWidth, s.PixelHeight); err != nil {
		return fmt.Errorf("resize canvas: %w", err)
	}
	r.dc.Identity()
	r.dc.Scale(s.Scale, s.Scale)
	r.dc.SetLineCap(gg.LineCapRound)
	r.dc.SetLineJoin(gg.LineJoinRound)
	return nil
}

// SetBackground replaces the background image. A nil image leaves only
// the letterbox fill.
func (r *Renderer) SetBackground(img image.Image) {
	r.bg = img
	r.bgBuf = nil
	r.bgSize = image.Point{}
	if img == nil {
		return
	}
	r.bgBuf = gg.ImageBufFromImage(img)
	r.bgSize = img.Bounds().Size()
}

// Background returns the current background image.
func (r *Renderer) Background() image.Image { return r.bg }

// RenderAll clears the canvas, draws the background at fit and replays the
// history in order.
func (r *Renderer) RenderAll(history []strokes.Stroke, fit surface.FitRect) error {
	if r.dc == nil {
		return ErrNoSurface
	}
	r.dc.ClearWithColor(gg.FromColor(r.opts.Letterbox))
	if r.bgBuf != nil && fit.Width > 0 && fit.Height > 0 {
		r.dc.DrawImageEx(r.bgBuf, gg.DrawImageOptions{
			X:             fit.OffsetX,
			Y:             fit.OffsetY,
			DstWidth:      fit.Width,
			DstHeight:     fit.Height,
			Interpolation: gg.InterpBilinear,
			Opacity:       1,
			BlendMode:     gg.BlendNormal,
		})
	}
	for _, st := range history {
		if err := r.replay(st); err != nil {
			return fmt.Errorf("replay stroke %s: %w", st.ID, err)
		}
	}
	return nil
}

// RenderIncrement draws a single segment of the stroke in progress.
func (r *Renderer) RenderIncrement(from, to strokes.Point, token string) error {
	if r.dc == nil {
		return ErrNoSurface
	}
	col, err := ParseColor(token)
	if err != nil {
		return err
	}
	return r.segment(from, to, col)
}

// RenderDot draws the mark left by a stroke with a single point.
func (r *Renderer) RenderDot(p strokes.Point, token string) error {
	if r.dc == nil {
		return ErrNoSurface
	}
	col, err := ParseColor(token)
	if err != nil {
		return err
	}
	return r.dot(p, col)
}

func (r *Renderer) replay(st strokes.Stroke) error {
	col, err := ParseColor(st.Color)
	if err != nil {
		return err
	}
	switch len(st.Points) {
	case 0:
		return nil
	case 1:
		return r.dot(st.Points[0], col)
	}
	for i := 1; i < len(st.Points); i++ {
		if err := r.segment(st.Points[i-1], st.Points[i], col); err != nil {
			return err
		}
	}
	return nil
}

// segment is the only primitive used for strokes, so a replay paints the
// same pixels as the increments did.
func (r *Renderer) segment(from, to strokes.Point, col color.Color) error {
	r.dc.SetColor(col)
	r.dc.SetLineWidth(r.opts.LineWidth)
	r.dc.MoveTo(from.X, from.Y)
	r.dc.LineTo(to.X, to.Y)
	return r.dc.Stroke()
}

func (r *Renderer) dot(p strokes.Point, col color.Color) error {
	r.dc.SetColor(col)
	r.dc.DrawCircle(p.X, p.Y, r.opts.LineWidth/2)
	return r.dc.Fill()
}

// Image returns a copy of the canvas.
func (r *Renderer) Image() *image.RGBA {
	if r.dc == nil {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	if img, ok := r.dc.Image().(*image.RGBA); ok {
		return img
	}
	src := r.dc.Image()
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	return out
}

// Close releases the canvas.
func (r *Renderer) Close() error {
	if r.dc == nil {
		return nil
	}
	err := r.dc.Close()
	r.dc = nil
	return err
}
