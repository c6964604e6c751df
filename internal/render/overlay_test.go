package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/scribble/internal/hotspot"
)

var testStyle = ButtonStyle{
	Fill:    color.RGBA{R: 240, G: 240, B: 240, A: 255},
	Pressed: color.RGBA{R: 40, G: 40, B: 200, A: 255},
	Border:  color.RGBA{A: 255},
	Text:    color.RGBA{A: 255},
}

func TestOverlayDrawsButtonFill(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	o := NewOverlay(nil)
	rects := []hotspot.Rect{{ID: "a", X: 20, Y: 20, Width: 60, Height: 40}}
	o.Draw(dst, rects, 1, testStyle, "")

	if got := dst.RGBAAt(30, 30); got.A != 255 || got.R < 200 {
		t.Fatalf("button interior = %+v, want fill", got)
	}
	if got := dst.RGBAAt(5, 5); got.A != 0 {
		t.Fatalf("outside pixel = %+v, want untouched", got)
	}
}

func TestOverlayPressedState(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	o := NewOverlay(nil)
	rects := []hotspot.Rect{{ID: "a", X: 20, Y: 20, Width: 60, Height: 40}}
	o.Draw(dst, rects, 1, testStyle, "a")

	if got := dst.RGBAAt(30, 30); got.B < 150 || got.R > 100 {
		t.Fatalf("pressed interior = %+v, want pressed fill", got)
	}
}

func TestOverlayCachesSprites(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	o := NewOverlay(nil)
	rects := []hotspot.Rect{
		{ID: "a", X: 0, Y: 0, Width: 20, Height: 10, Label: "go"},
		{ID: "b", X: 50, Y: 50, Width: 20, Height: 10, Label: "go"},
	}
	o.Draw(dst, rects, 1, testStyle, "")
	if n := len(o.cache); n != 1 {
		t.Fatalf("cached %d sprites, want 1", n)
	}
	o.Reset()
	if n := len(o.cache); n != 0 {
		t.Fatalf("cache not cleared, %d left", n)
	}
}

func TestSpriteSizeCoversRotation(t *testing.T) {
	w, h := spriteSize(100, 20, 0)
	if w != 102 || h != 22 {
		t.Fatalf("unrotated sprite = %dx%d", w, h)
	}
	w, h = spriteSize(100, 20, 90)
	if w < 22 || w > 23 || h < 102 || h > 103 {
		t.Fatalf("quarter turn sprite = %dx%d", w, h)
	}
}
