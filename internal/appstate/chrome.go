package appstate

import (
	"image"
	"image/draw"
	"math"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Toolbar metrics in CSS pixels.
const (
	toolbarMargin = 8
	toolbarPad    = 4
	buttonHeight  = 24
	swatchSize    = 20
)

// messageDuration is how long a banner message stays up.
const messageDuration = 2 * time.Second

// toolAction is a labelled toolbar button.
type toolAction struct {
	label string
	fn    func()
}

// toolbar floats in the top-left corner of the surface. It holds the
// action buttons followed by one swatch per palette colour. Rects are in
// device pixels.
type toolbar struct {
	style    *chromeStyle
	buttons  []*CacheButton
	actions  int
	rect     image.Rectangle
	scale    float64
	hover    int
	hidden   bool
	selected int
}

func newToolbar(style *chromeStyle, actions []toolAction, pal *Palette, onSwatch func(int)) *toolbar {
	tb := &toolbar{style: style, hover: -1, actions: len(actions)}
	for _, a := range actions {
		tb.buttons = append(tb.buttons, &CacheButton{Button: &ActionButton{label: a.label, style: style, onActivate: a.fn}})
	}
	for i, pc := range pal.Colors() {
		idx := i
		tb.buttons = append(tb.buttons, &CacheButton{Button: &SwatchButton{color: pc.Color, style: style, onSelect: func() { onSwatch(idx) }}})
	}
	return tb
}

func px(v, scale float64) int { return int(math.Round(v * scale)) }

// layout places the buttons in one row for a device scale.
func (tb *toolbar) layout(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	if scale != tb.scale {
		for _, cb := range tb.buttons[:tb.actions] {
			cb.Button.(*ActionButton).face = faceAt(uiTextSize, scale)
			cb.Invalidate()
		}
	}
	tb.scale = scale
	pad := px(toolbarPad, scale)
	x0 := px(toolbarMargin, scale)
	y0 := px(toolbarMargin, scale)
	h := px(buttonHeight, scale)
	x := x0 + pad
	y := y0 + pad
	for i, cb := range tb.buttons {
		var w int
		if i < tb.actions {
			ab := cb.Button.(*ActionButton)
			d := &font.Drawer{Face: ab.face}
			w = d.MeasureString(ab.label).Ceil() + 2*px(6, scale)
			cb.SetRect(image.Rect(x, y, x+w, y+h))
		} else {
			s := px(swatchSize, scale)
			off := (h - s) / 2
			w = s
			cb.SetRect(image.Rect(x, y+off, x+s, y+off+s))
		}
		x += w + pad
	}
	tb.rect = image.Rect(x0, y0, x, y+h+pad)
}

// restyle switches every button to a new style.
func (tb *toolbar) restyle(style *chromeStyle) {
	*tb.style = *style
	for _, cb := range tb.buttons {
		cb.Invalidate()
	}
}

func (tb *toolbar) contains(p image.Point) bool {
	return !tb.hidden && p.In(tb.rect)
}

// hit returns the button under p, or -1.
func (tb *toolbar) hit(p image.Point) int {
	if !tb.contains(p) {
		return -1
	}
	for i, cb := range tb.buttons {
		if p.In(cb.Rect()) {
			return i
		}
	}
	return -1
}

func (tb *toolbar) draw(dst *image.RGBA) {
	if tb.hidden || tb.rect.Empty() {
		return
	}
	draw.Draw(dst, tb.rect, &image.Uniform{tb.style.toolbar}, image.Point{}, draw.Over)
	for i, cb := range tb.buttons {
		state := StateDefault
		switch {
		case i >= tb.actions && i-tb.actions == tb.selected:
			state = StatePressed
		case i == tb.hover:
			state = StateHover
		}
		cb.Draw(dst, state)
	}
}

// banner is a short lived centred message.
type banner struct {
	text  string
	until time.Time
}

func (b *banner) set(text string, now time.Time) {
	b.text = text
	b.until = now.Add(messageDuration)
}

func (b *banner) active(now time.Time) bool {
	return b.text != "" && now.Before(b.until)
}

func (b *banner) dismiss() { b.until = time.Time{} }

func drawMessage(dst *image.RGBA, msg string, face font.Face, style *chromeStyle, scale float64) {
	b := dst.Bounds()
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(style.messageText), Face: face}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()
	pad := px(8, scale)
	x := (b.Dx() - wmsg) / 2
	y := (b.Dy()-ascent-descent)/2 + ascent
	rect := image.Rect(x-pad, y-ascent-pad, x+wmsg+pad, y+descent+pad)
	draw.Draw(dst, rect, &image.Uniform{style.messageBg}, image.Point{}, draw.Over)
	strokeRect(dst, rect, style.messageText, px(2, scale))
	d.Dot = fixed.P(x, y)
	d.DrawString(msg)
}
