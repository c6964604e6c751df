package surface

import "testing"

func TestTrackerNotifiesInOrder(t *testing.T) {
	tr := NewTracker()
	var calls []string
	tr.OnGeometryChanged(func(Geometry) { calls = append(calls, "render") })
	tr.OnGeometryChanged(func(Geometry) { calls = append(calls, "hotspots") })

	tr.Resize(ComputeSize(800, 600, 1))
	if len(calls) != 2 || calls[0] != "render" || calls[1] != "hotspots" {
		t.Fatalf("unexpected listener order %v", calls)
	}
}

func TestTrackerGenerationAdvances(t *testing.T) {
	tr := NewTracker()
	g1, changed := tr.Resize(ComputeSize(800, 600, 1))
	if !changed || g1.Generation != 1 {
		t.Fatalf("first resize: %+v changed=%v", g1, changed)
	}
	if g1.Ready() {
		t.Fatalf("geometry without image must not be ready")
	}
	g2, _ := tr.SetImage(400, 300)
	if g2.Generation != 2 || !g2.Ready() {
		t.Fatalf("after image load: %+v", g2)
	}
	if g2.Fit != (FitRect{Width: 800, Height: 600}) {
		t.Fatalf("unexpected fit %+v", g2.Fit)
	}
	if _, changed := tr.Resize(ComputeSize(800, 600, 1)); changed {
		t.Fatalf("identical resize should not create a generation")
	}
	g3, _ := tr.Resize(ComputeSize(600, 800, 1))
	if g3.Generation != 3 || g3.Fit.OffsetY != 175 {
		t.Fatalf("after rotate: %+v", g3)
	}
}

func TestTrackerClearImage(t *testing.T) {
	tr := NewTracker()
	tr.Resize(ComputeSize(100, 100, 1))
	tr.SetImage(10, 10)
	g, _ := tr.ClearImage()
	if g.Ready() || g.Fit != (FitRect{}) {
		t.Fatalf("cleared geometry should be empty, got %+v", g)
	}
}
