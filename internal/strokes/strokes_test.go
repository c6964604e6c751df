package strokes

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func newTestStore() *Store {
	s := NewStore()
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("stroke-%d", n)
	}
	return s
}

func TestSealAppendsRecordedPoints(t *testing.T) {
	s := newTestStore()
	pts := []Point{{1, 2}, {3, 4}, {5, 6}}
	s.Begin(pts[0])
	for _, p := range pts[1:] {
		if err := s.Extend(p); err != nil {
			t.Fatalf("Extend: %v", err)
		}
	}
	if got := s.Len(); got != 0 {
		t.Fatalf("in-progress stroke leaked into history: len=%d", got)
	}
	st, ok := s.Seal("#ED005B")
	if !ok {
		t.Fatal("expected seal to succeed")
	}
	if st.ID != "stroke-1" {
		t.Fatalf("unexpected id %q", st.ID)
	}
	h := s.Snapshot()
	if len(h) != 1 {
		t.Fatalf("history len = %d, want 1", len(h))
	}
	if !reflect.DeepEqual(h[0].Points, pts) || h[0].Color != "#ED005B" {
		t.Fatalf("unexpected stroke %+v", h[0])
	}
	if s.Drawing() {
		t.Fatal("store still drawing after seal")
	}
}

func TestColorIsTakenAtSeal(t *testing.T) {
	s := newTestStore()
	current := "#000000"
	s.Begin(Point{0, 0})
	_ = s.Extend(Point{1, 1})
	current = "#1E64FF"
	s.Seal(current)
	if got := s.Snapshot()[0].Color; got != "#1E64FF" {
		t.Fatalf("color = %q, want #1E64FF", got)
	}
}

func TestSinglePointStroke(t *testing.T) {
	s := newTestStore()
	s.Begin(Point{7, 7})
	if _, ok := s.Seal("#000"); !ok {
		t.Fatal("single point stroke should seal")
	}
	if pts := s.Snapshot()[0].Points; len(pts) != 1 {
		t.Fatalf("points = %v", pts)
	}
}

func TestSealWithoutBeginIsNoop(t *testing.T) {
	s := newTestStore()
	if _, ok := s.Seal("#000"); ok {
		t.Fatal("seal without begin should be a no-op")
	}
	if s.Len() != 0 {
		t.Fatal("history should stay empty")
	}
}

func TestExtendWhileIdle(t *testing.T) {
	s := newTestStore()
	if err := s.Extend(Point{1, 1}); !errors.Is(err, ErrNoActiveStroke) {
		t.Fatalf("expected ErrNoActiveStroke, got %v", err)
	}
}

func TestBeginDiscardsUnsealedStroke(t *testing.T) {
	s := newTestStore()
	s.Begin(Point{0, 0})
	_ = s.Extend(Point{1, 1})
	s.Begin(Point{9, 9})
	s.Seal("#fff")
	h := s.Snapshot()
	if len(h) != 1 || !reflect.DeepEqual(h[0].Points, []Point{{9, 9}}) {
		t.Fatalf("unexpected history %+v", h)
	}
}

func TestUndoIsLIFO(t *testing.T) {
	s := newTestStore()
	if s.Undo() {
		t.Fatal("undo on empty history should return false")
	}
	for i := 0; i < 3; i++ {
		s.Begin(Point{float64(i), 0})
		s.Seal(fmt.Sprintf("#00000%d", i))
	}
	if !s.Undo() {
		t.Fatal("undo should remove a stroke")
	}
	h := s.Snapshot()
	if len(h) != 2 || h[0].Color != "#000000" || h[1].Color != "#000001" {
		t.Fatalf("unexpected history after undo %+v", h)
	}
}

func TestUndoScenarioEmptiesHistory(t *testing.T) {
	s := newTestStore()
	s.Begin(Point{10, 10})
	_ = s.Extend(Point{20, 20})
	s.Seal("#ED005B")
	if !s.Undo() {
		t.Fatal("expected undo to remove the stroke")
	}
	if h := s.Snapshot(); len(h) != 0 {
		t.Fatalf("history = %+v, want empty", h)
	}
}

func TestUndoLeavesActiveStroke(t *testing.T) {
	s := newTestStore()
	s.Begin(Point{0, 0})
	s.Seal("#000")
	s.Begin(Point{5, 5})
	s.Undo()
	pts, ok := s.Active()
	if !ok || len(pts) != 1 {
		t.Fatalf("active stroke changed by undo: %v %v", pts, ok)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestStore()
	s.Begin(Point{1, 1})
	s.Seal("#000")
	h := s.Snapshot()
	h[0].Points[0] = Point{99, 99}
	h[0].Color = "#fff"
	again := s.Snapshot()
	if again[0].Points[0] != (Point{1, 1}) || again[0].Color != "#000" {
		t.Fatalf("snapshot mutation leaked into store: %+v", again[0])
	}
}

func TestDefaultIDsAreUnique(t *testing.T) {
	s := NewStore()
	s.Begin(Point{})
	a, _ := s.Seal("#000")
	s.Begin(Point{})
	b, _ := s.Seal("#000")
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %q and %q", a.ID, b.ID)
	}
}
