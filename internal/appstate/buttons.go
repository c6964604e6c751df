package appstate

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/example/scribble/internal/theme"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Over)
}

func (cb *CacheButton) Rect() image.Rectangle { return cb.Button.Rect() }

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.Invalidate()
	}
}

// Invalidate drops the cached states, for example after a theme change.
func (cb *CacheButton) Invalidate() { cb.cache = [3]*image.RGBA{} }

func (cb *CacheButton) Activate() { cb.Button.Activate() }

// chromeStyle holds the window chrome colours taken from a theme.
type chromeStyle struct {
	toolbar        color.RGBA
	button         color.RGBA
	hover          color.RGBA
	pressed        color.RGBA
	text           color.RGBA
	border         color.RGBA
	swatchBorder   color.RGBA
	swatchSelected color.RGBA
	messageBg      color.RGBA
	messageText    color.RGBA
}

func styleFromTheme(t *theme.Theme) *chromeStyle {
	return &chromeStyle{
		toolbar:        t.Toolbar,
		button:         t.ButtonBackground,
		hover:          mix(t.ButtonBackground, t.ButtonPressed),
		pressed:        t.ButtonPressed,
		text:           t.ButtonText,
		border:         t.ButtonBorder,
		swatchBorder:   t.SwatchBorder,
		swatchSelected: t.SwatchSelected,
		messageBg:      t.MessageBackground,
		messageText:    t.MessageText,
	}
}

func mix(a, b color.RGBA) color.RGBA {
	avg := func(x, y uint8) uint8 { return uint8((uint16(x) + uint16(y)) / 2) }
	return color.RGBA{avg(a.R, b.R), avg(a.G, b.G), avg(a.B, b.B), avg(a.A, b.A)}
}

// ActionButton is a labelled toolbar button.
type ActionButton struct {
	label      string
	style      *chromeStyle
	face       font.Face
	rect       image.Rectangle
	onActivate func()
}

func (ab *ActionButton) Draw(dst *image.RGBA, state ButtonState) {
	c := ab.style.button
	switch state {
	case StateHover:
		c = ab.style.hover
	case StatePressed:
		c = ab.style.pressed
	}
	draw.Draw(dst, ab.rect, &image.Uniform{c}, image.Point{}, draw.Src)
	strokeRect(dst, ab.rect, ab.style.border, 1)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(ab.style.text), Face: ab.face}
	tw := d.MeasureString(ab.label).Ceil()
	m := ab.face.Metrics()
	asc, desc := m.Ascent.Ceil(), m.Descent.Ceil()
	d.Dot = fixed.P(ab.rect.Min.X+(ab.rect.Dx()-tw)/2, ab.rect.Min.Y+(ab.rect.Dy()-asc-desc)/2+asc)
	d.DrawString(ab.label)
}

func (ab *ActionButton) Rect() image.Rectangle { return ab.rect }

func (ab *ActionButton) SetRect(r image.Rectangle) { ab.rect = r }

func (ab *ActionButton) Activate() {
	if ab.onActivate != nil {
		ab.onActivate()
	}
}

// SwatchButton selects a palette colour. The selected swatch is drawn in
// the pressed state.
type SwatchButton struct {
	color    color.RGBA
	style    *chromeStyle
	rect     image.Rectangle
	onSelect func()
}

func (sb *SwatchButton) Draw(dst *image.RGBA, state ButtonState) {
	draw.Draw(dst, sb.rect, &image.Uniform{sb.color}, image.Point{}, draw.Src)
	switch state {
	case StatePressed:
		strokeRect(dst, sb.rect, sb.style.swatchSelected, 3)
	case StateHover:
		strokeRect(dst, sb.rect, sb.style.swatchSelected, 1)
	default:
		strokeRect(dst, sb.rect, sb.style.swatchBorder, 1)
	}
}

func (sb *SwatchButton) Rect() image.Rectangle { return sb.rect }

func (sb *SwatchButton) SetRect(r image.Rectangle) { sb.rect = r }

func (sb *SwatchButton) Activate() {
	if sb.onSelect != nil {
		sb.onSelect()
	}
}

// strokeRect draws a border of thick pixels just inside r.
func strokeRect(dst *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	if thick <= 0 || r.Empty() {
		return
	}
	src := &image.Uniform{col}
	for _, edge := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thick),
		image.Rect(r.Min.X, r.Max.Y-thick, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thick, r.Max.Y),
		image.Rect(r.Max.X-thick, r.Min.Y, r.Max.X, r.Max.Y),
	} {
		draw.Draw(dst, edge.Intersect(r), src, image.Point{}, draw.Src)
	}
}
