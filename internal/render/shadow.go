package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow under a hotspot button.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// ShadowResult is a sprite with its shadow composited underneath.
type ShadowResult struct {
	Image *image.RGBA
	// Offset is where the original sprite's top-left corner sits inside
	// Image.
	Offset image.Point
}

// ButtonShadow returns the shadow used for hotspot buttons at the given
// device scale.
func ButtonShadow(scale float64) ShadowOptions {
	if scale <= 0 {
		scale = 1
	}
	return ShadowOptions{
		Radius:  int(3*scale + 0.5),
		Offset:  image.Pt(int(2*scale+0.5), int(3*scale+0.5)),
		Opacity: 0.45,
	}
}

// ApplyShadow places a blurred copy of the sprite's alpha under sprite.
// The result has a zero origin.
func ApplyShadow(sprite *image.RGBA, opts ShadowOptions) ShadowResult {
	if sprite == nil {
		return ShadowResult{}
	}
	src := sprite.Bounds()
	if src.Empty() || opts.Opacity <= 0 {
		return ShadowResult{Image: sprite}
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	padded := src.Inset(-radius)
	shadowAt := padded.Add(opts.Offset)
	total := src.Union(shadowAt)
	shift := src.Min.Sub(total.Min)

	alpha := image.NewGray(image.Rect(0, 0, padded.Dx(), padded.Dy()))
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			if a := sprite.RGBAAt(x, y).A; a != 0 {
				alpha.SetGray(x-padded.Min.X, y-padded.Min.Y, color.Gray{Y: a})
			}
		}
	}
	boxBlur(alpha, radius)

	out := image.NewRGBA(image.Rect(0, 0, total.Dx(), total.Dy()))
	tint := image.NewUniform(color.RGBA{A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(out, alpha.Bounds().Add(shadowAt.Min.Sub(total.Min)), tint, image.Point{}, alpha, image.Point{}, draw.Over)
	draw.Draw(out, src.Sub(total.Min), sprite, src.Min, draw.Over)
	return ShadowResult{Image: out, Offset: shift}
}

// boxBlur blurs g in place with a square kernel of the given radius, one
// axis at a time.
func boxBlur(g *image.Gray, radius int) {
	if radius <= 0 {
		return
	}
	w, h := g.Bounds().Dx(), g.Bounds().Dy()
	line := make([]uint8, max(w, h))
	blurLine := func(get func(i int) uint8, set func(i int, v uint8), n int) {
		for i := 0; i < n; i++ {
			line[i] = get(i)
		}
		sum, count := 0, 0
		for i := 0; i < radius && i < n; i++ {
			sum += int(line[i])
			count++
		}
		for i := 0; i < n; i++ {
			if j := i + radius; j < n {
				sum += int(line[j])
				count++
			}
			if j := i - radius - 1; j >= 0 {
				sum -= int(line[j])
				count--
			}
			set(i, uint8(sum/count))
		}
	}
	for y := 0; y < h; y++ {
		row := y * g.Stride
		blurLine(func(i int) uint8 { return g.Pix[row+i] }, func(i int, v uint8) { g.Pix[row+i] = v }, w)
	}
	for x := 0; x < w; x++ {
		col := x
		blurLine(func(i int) uint8 { return g.Pix[i*g.Stride+col] }, func(i int, v uint8) { g.Pix[i*g.Stride+col] = v }, h)
	}
}
