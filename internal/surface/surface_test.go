package surface

import (
	"errors"
	"math"
	"testing"
)

func TestComputeSizeScalesPixels(t *testing.T) {
	s := ComputeSize(800, 600, 2)
	if s.PixelWidth != 1600 || s.PixelHeight != 1200 {
		t.Fatalf("pixel size = %dx%d, want 1600x1200", s.PixelWidth, s.PixelHeight)
	}
	if s.CSSWidth != 800 || s.CSSHeight != 600 {
		t.Fatalf("css size = %vx%v, want 800x600", s.CSSWidth, s.CSSHeight)
	}
	if s.Scale != 2 {
		t.Fatalf("scale = %v, want 2", s.Scale)
	}
}

func TestComputeSizeDefaultsDensity(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN()} {
		s := ComputeSize(640, 480, d)
		if s.Scale != 1 || s.PixelWidth != 640 || s.PixelHeight != 480 {
			t.Fatalf("density %v: got %+v", d, s)
		}
	}
}

func TestComputeSizeTruncatesFractionalPixels(t *testing.T) {
	s := ComputeSize(101, 51, 1.5)
	if s.PixelWidth != 151 || s.PixelHeight != 76 {
		t.Fatalf("pixel size = %dx%d, want 151x76", s.PixelWidth, s.PixelHeight)
	}
}

func TestFromPixels(t *testing.T) {
	s := FromPixels(1920, 1080, 1.5)
	if s.CSSWidth != 1280 || s.CSSHeight != 720 {
		t.Fatalf("css size = %vx%v, want 1280x720", s.CSSWidth, s.CSSHeight)
	}
}

func TestDensityFromPixelsPerPt(t *testing.T) {
	if got := DensityFromPixelsPerPt(96.0 / 72.0); math.Abs(got-1) > 1e-6 {
		t.Fatalf("96dpi density = %v, want 1", got)
	}
	if got := DensityFromPixelsPerPt(0); got != 1 {
		t.Fatalf("zero density = %v, want 1", got)
	}
}

func TestFitWideImageLetterboxesVertically(t *testing.T) {
	r, err := Fit(800, 600, 1, 400, 100)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	want := FitRect{Width: 800, Height: 200, OffsetX: 0, OffsetY: 200}
	if r != want {
		t.Fatalf("fit = %+v, want %+v", r, want)
	}
}

func TestFitTallImageLetterboxesHorizontally(t *testing.T) {
	r, err := Fit(800, 600, 1, 300, 600)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	want := FitRect{Width: 300, Height: 600, OffsetX: 250, OffsetY: 0}
	if r != want {
		t.Fatalf("fit = %+v, want %+v", r, want)
	}
}

func TestFitWorksInCSSPixels(t *testing.T) {
	r, err := Fit(1600, 1200, 2, 400, 100)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	want := FitRect{Width: 800, Height: 200, OffsetX: 0, OffsetY: 200}
	if r != want {
		t.Fatalf("fit = %+v, want %+v", r, want)
	}
}

func TestFitBeforeLoad(t *testing.T) {
	if _, err := Fit(800, 600, 1, 0, 0); !errors.Is(err, ErrImageNotLoaded) {
		t.Fatalf("expected ErrImageNotLoaded, got %v", err)
	}
}

func TestFitNeverCropsAcrossOrientations(t *testing.T) {
	const iw, ih = 1200, 900
	for _, vp := range [][2]int{{400, 900}, {1600, 500}, {900, 900}, {3, 2000}} {
		r, err := Fit(vp[0], vp[1], 1, iw, ih)
		if err != nil {
			t.Fatalf("Fit: %v", err)
		}
		cssW, cssH := float64(vp[0]), float64(vp[1])
		if r.OffsetX < 0 || r.OffsetY < 0 {
			t.Fatalf("viewport %v: negative offset %+v", vp, r)
		}
		if r.OffsetX+r.Width > cssW+1e-9 || r.OffsetY+r.Height > cssH+1e-9 {
			t.Fatalf("viewport %v: image cropped %+v", vp, r)
		}
		if math.Abs(r.Width/r.Height-float64(iw)/float64(ih)) > 1e-9 {
			t.Fatalf("viewport %v: aspect changed %+v", vp, r)
		}
		if math.Abs(r.Width-cssW) > 1e-9 && math.Abs(r.Height-cssH) > 1e-9 {
			t.Fatalf("viewport %v: image does not touch either edge %+v", vp, r)
		}
	}
}
