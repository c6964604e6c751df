package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func solidSprite(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestApplyShadowGrowsTowardsOffset(t *testing.T) {
	sprite := solidSprite(10, 10, color.RGBA{R: 255, A: 255})
	opts := ShadowOptions{Radius: 2, Offset: image.Pt(4, 3), Opacity: 1}
	res := ApplyShadow(sprite, opts)
	if want := image.Rect(0, 0, 16, 15); !res.Image.Bounds().Eq(want) {
		t.Fatalf("bounds = %v, want %v", res.Image.Bounds(), want)
	}
	if res.Offset != image.Pt(0, 0) {
		t.Fatalf("offset = %v, want origin", res.Offset)
	}
	if got := res.Image.RGBAAt(5, 5); got.R != 255 || got.A != 255 {
		t.Fatalf("sprite pixel lost under shadow: %+v", got)
	}
	if res.Image.RGBAAt(12, 11).A == 0 {
		t.Fatal("expected shadow below and right of the sprite")
	}
	if res.Image.RGBAAt(15, 0).A != 0 {
		t.Fatal("far corner should stay transparent")
	}
}

func TestApplyShadowNegativeOffsetShiftsSprite(t *testing.T) {
	sprite := solidSprite(4, 4, color.RGBA{G: 255, A: 255})
	res := ApplyShadow(sprite, ShadowOptions{Radius: 1, Offset: image.Pt(-3, 0), Opacity: 0.5})
	if res.Offset.X != 4 || res.Offset.Y != 1 {
		t.Fatalf("offset = %v, want (4,1)", res.Offset)
	}
	if got := res.Image.RGBAAt(res.Offset.X, res.Offset.Y); got.G != 255 {
		t.Fatalf("sprite not placed at offset: %+v", got)
	}
}

func TestApplyShadowZeroOpacityIsIdentity(t *testing.T) {
	sprite := solidSprite(4, 4, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	res := ApplyShadow(sprite, ShadowOptions{Radius: 8, Offset: image.Pt(5, 5), Opacity: 0})
	if res.Image != sprite {
		t.Fatal("expected the sprite to be returned untouched")
	}
}

func TestBoxBlurSpreadsAlpha(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 9, 9))
	g.SetGray(4, 4, color.Gray{Y: 255})
	boxBlur(g, 1)
	if g.GrayAt(4, 4).Y == 255 || g.GrayAt(4, 4).Y == 0 {
		t.Fatalf("centre not blurred: %d", g.GrayAt(4, 4).Y)
	}
	if g.GrayAt(5, 5).Y == 0 {
		t.Fatal("blur did not reach the diagonal neighbour")
	}
	if g.GrayAt(7, 7).Y != 0 {
		t.Fatal("blur reached beyond its radius")
	}
}

func TestButtonShadowScales(t *testing.T) {
	a := ButtonShadow(1)
	b := ButtonShadow(2)
	if b.Radius <= a.Radius || b.Offset.Y <= a.Offset.Y {
		t.Fatalf("shadow did not scale: %+v vs %+v", a, b)
	}
}
