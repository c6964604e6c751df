package hotspot

import (
	"image"
	"testing"

	"github.com/example/scribble/internal/surface"
)

func TestEngineFollowsGeometry(t *testing.T) {
	specs := []Spec{{ID: "a", Target: "a.page", X: 0.5, Y: 0.5, Width: 0.25, Height: 0.25}}
	e := NewEngine(specs, Overlay{})
	tr := surface.NewTracker()
	tr.OnGeometryChanged(e.Relayout)

	tr.Resize(surface.ComputeSize(800, 600, 1))
	if got := e.Rects(); len(got) != 0 {
		t.Fatalf("rects laid out before image load: %+v", got)
	}

	tr.SetImage(400, 300)
	r := e.Rects()
	if len(r) != 1 || r[0].X != 400 || r[0].Width != 200 {
		t.Fatalf("unexpected rects %+v", r)
	}

	g, _ := tr.Resize(surface.ComputeSize(400, 600, 1))
	r = e.Rects()
	if r[0].X != 200 || r[0].Y != 300 || r[0].Width != 100 {
		t.Fatalf("rects not refreshed after resize: %+v", r)
	}
	if e.Generation() != g.Generation {
		t.Fatalf("engine generation %d, tracker %d", e.Generation(), g.Generation)
	}
}

func TestEngineHitTestUsesUnrotatedRect(t *testing.T) {
	e := NewEngine([]Spec{{ID: "r", X: 0, Y: 0, Width: 0.5, Height: 0.5, Rotation: 45}}, Overlay{})
	e.Relayout(surface.Geometry{
		Generation: 1,
		Size:       surface.ComputeSize(100, 100, 1),
		Fit:        surface.FitRect{Width: 100, Height: 100},
		Image:      image.Pt(1, 1),
	})
	if _, ok := e.HitTest(1, 1); !ok {
		t.Fatal("expected corner of unrotated rect to hit")
	}
	if _, ok := e.HitTest(60, 10); ok {
		t.Fatal("point outside rect should miss")
	}
}

func TestEngineVisibility(t *testing.T) {
	g := surface.Geometry{Generation: 1, Size: surface.ComputeSize(10, 10, 1), Fit: surface.FitRect{Width: 10, Height: 10}}
	g.Image.X, g.Image.Y = 10, 10

	region := NewEngine([]Spec{{ID: "c", Side: 4}}, ClickRegion{})
	region.Relayout(g)
	if len(region.VisibleRects()) != 0 {
		t.Fatal("region hotspots must not be drawn")
	}
	if _, ok := region.HitTest(5, 5); !ok {
		t.Fatal("region hotspot should still hit")
	}
	if region.Strategy().CapturesPress() {
		t.Fatal("region hotspots must not capture presses")
	}

	overlay := NewEngine([]Spec{{ID: "c", Side: 4}}, Overlay{})
	overlay.Relayout(g)
	if len(overlay.VisibleRects()) != 1 {
		t.Fatal("overlay hotspots should be drawn")
	}
}

func TestEngineSetSpecsClearsLayout(t *testing.T) {
	g := surface.Geometry{Generation: 3, Size: surface.ComputeSize(10, 10, 1), Fit: surface.FitRect{Width: 10, Height: 10}}
	g.Image.X, g.Image.Y = 10, 10
	e := NewEngine([]Spec{{ID: "a", Width: 1, Height: 1}}, nil)
	e.Relayout(g)
	e.SetSpecs([]Spec{{ID: "b", Width: 1, Height: 1}}, ClickRegion{})
	if len(e.Rects()) != 0 || e.Generation() != 0 {
		t.Fatal("stale rects kept after SetSpecs")
	}
	if e.Strategy().Kind() != KindRegion {
		t.Fatal("strategy not replaced")
	}
}
