package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/scribble/internal/hotspot"
)

// ButtonStyle holds the colours of a hotspot button.
type ButtonStyle struct {
	Fill    color.RGBA
	Pressed color.RGBA
	Border  color.RGBA
	Text    color.RGBA
	Shadow  bool
}

type spriteKey struct {
	w, h     int
	rotation float64
	label    string
	pressed  bool
	scale    float64
	style    ButtonStyle
}

// Overlay draws hotspot buttons and caches one sprite per size, label and
// state.
type Overlay struct {
	mu    sync.Mutex
	cache map[spriteKey]ShadowResult
	face  font.Face
}

// NewOverlay returns an Overlay that labels buttons with face, or the
// built-in bitmap face when face is nil.
func NewOverlay(face font.Face) *Overlay {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Overlay{cache: map[spriteKey]ShadowResult{}, face: face}
}

// Draw composites the buttons for rects onto dst, a device pixel buffer
// for a surface of the given scale. The rect whose ID equals pressed is
// drawn in its pressed state.
func (o *Overlay) Draw(dst *image.RGBA, rects []hotspot.Rect, scale float64, style ButtonStyle, pressed string) {
	if scale <= 0 {
		scale = 1
	}
	for _, r := range rects {
		w := int(math.Round(r.Width * scale))
		h := int(math.Round(r.Height * scale))
		if w <= 0 || h <= 0 {
			continue
		}
		key := spriteKey{w: w, h: h, rotation: r.Rotation, label: r.Label, pressed: r.ID == pressed, scale: scale, style: style}
		sp := o.sprite(key)
		cx, cy := r.Center()
		sw, sh := spriteSize(w, h, r.Rotation)
		at := image.Pt(
			int(math.Round(cx*scale))-sw/2-sp.Offset.X,
			int(math.Round(cy*scale))-sh/2-sp.Offset.Y,
		)
		draw.Draw(dst, sp.Image.Bounds().Add(at), sp.Image, image.Point{}, draw.Over)
	}
}

// SetFace changes the label face and drops cached sprites.
func (o *Overlay) SetFace(face font.Face) {
	if face == nil {
		face = basicfont.Face7x13
	}
	o.mu.Lock()
	o.face = face
	o.cache = map[spriteKey]ShadowResult{}
	o.mu.Unlock()
}

// Reset drops cached sprites, for example after a theme change.
func (o *Overlay) Reset() {
	o.mu.Lock()
	o.cache = map[spriteKey]ShadowResult{}
	o.mu.Unlock()
}

func (o *Overlay) sprite(k spriteKey) ShadowResult {
	o.mu.Lock()
	defer o.mu.Unlock()
	if sp, ok := o.cache[k]; ok {
		return sp
	}
	img := o.paintButton(k)
	sp := ShadowResult{Image: img}
	if k.style.Shadow {
		sp = ApplyShadow(img, ButtonShadow(k.scale))
	}
	o.cache[k] = sp
	return sp
}

func spriteSize(w, h int, rotation float64) (int, int) {
	rad := rotation * math.Pi / 180
	c, s := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	bw := float64(w)*c + float64(h)*s
	bh := float64(w)*s + float64(h)*c
	return int(math.Ceil(bw)) + 2, int(math.Ceil(bh)) + 2
}

func (o *Overlay) paintButton(k spriteKey) *image.RGBA {
	sw, sh := spriteSize(k.w, k.h, k.rotation)
	dc := gg.NewContext(sw, sh)
	defer dc.Close()

	w, h := float64(k.w), float64(k.h)
	fill := k.style.Fill
	if k.pressed {
		fill = k.style.Pressed
	}
	dc.Translate(float64(sw)/2, float64(sh)/2)
	dc.Rotate(k.rotation * math.Pi / 180)
	dc.DrawRoundedRectangle(-w/2, -h/2, w, h, math.Min(w, h)*0.15)
	dc.SetColor(fill)
	_ = dc.FillPreserve()
	dc.SetColor(k.style.Border)
	dc.SetLineWidth(math.Max(1, k.scale))
	_ = dc.Stroke()

	var img *image.RGBA
	if rgba, ok := dc.Image().(*image.RGBA); ok {
		img = rgba
	} else {
		src := dc.Image()
		img = image.NewRGBA(src.Bounds())
		draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	}

	if k.label != "" {
		d := &font.Drawer{Dst: img, Src: image.NewUniform(k.style.Text), Face: o.face}
		tw := d.MeasureString(k.label).Ceil()
		m := o.face.Metrics()
		asc, desc := m.Ascent.Ceil(), m.Descent.Ceil()
		d.Dot = fixed.P((sw-tw)/2, (sh-asc-desc)/2+asc)
		d.DrawString(k.label)
	}
	return img
}
