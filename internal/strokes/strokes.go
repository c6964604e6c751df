// Package strokes records freehand strokes and the undo history.
package strokes

import (
	"errors"
	"log"

	"github.com/google/uuid"
)

// ErrNoActiveStroke is returned by Extend when no stroke has been begun.
var ErrNoActiveStroke = errors.New("no stroke in progress")

// Point is a position in CSS pixels of the drawing surface.
type Point struct {
	X, Y float64
}

// Stroke is one sealed, single-colour line.
type Stroke struct {
	ID     string
	Color  string
	Points []Point
}

// Store holds the sealed history and at most one in-progress stroke.
// It is not safe for concurrent use.
type Store struct {
	history []Stroke
	active  []Point
	drawing bool

	// newID is swapped in tests for deterministic IDs.
	newID func() string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{newID: func() string { return uuid.NewString() }}
}

// Begin starts a new stroke at p. An unsealed stroke is dropped.
func (s *Store) Begin(p Point) {
	if s.drawing && len(s.active) > 0 {
		log.Printf("strokes: discarding unsealed stroke of %d points", len(s.active))
	}
	s.active = []Point{p}
	s.drawing = true
}

// Extend appends p to the stroke in progress.
func (s *Store) Extend(p Point) error {
	if !s.drawing {
		return ErrNoActiveStroke
	}
	s.active = append(s.active, p)
	return nil
}

// Seal moves the stroke in progress into history tagged with color. It
// reports false when there was nothing to seal.
func (s *Store) Seal(color string) (Stroke, bool) {
	pts := s.active
	wasDrawing := s.drawing
	s.active = nil
	s.drawing = false
	if !wasDrawing || len(pts) == 0 {
		return Stroke{}, false
	}
	id := ""
	if s.newID != nil {
		id = s.newID()
	}
	st := Stroke{ID: id, Color: color, Points: pts}
	s.history = append(s.history, st)
	return st, true
}

// Undo removes the newest sealed stroke. The stroke in progress is left
// alone.
func (s *Store) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	s.history[len(s.history)-1] = Stroke{}
	s.history = s.history[:len(s.history)-1]
	return true
}

// Snapshot returns a copy of the history in insertion order.
func (s *Store) Snapshot() []Stroke {
	out := make([]Stroke, len(s.history))
	for i, st := range s.history {
		out[i] = Stroke{ID: st.ID, Color: st.Color, Points: append([]Point(nil), st.Points...)}
	}
	return out
}

// Active returns a copy of the stroke in progress.
func (s *Store) Active() ([]Point, bool) {
	if !s.drawing {
		return nil, false
	}
	return append([]Point(nil), s.active...), true
}

// Last returns the most recent point of the stroke in progress.
func (s *Store) Last() (Point, bool) {
	if !s.drawing || len(s.active) == 0 {
		return Point{}, false
	}
	return s.active[len(s.active)-1], true
}

// Drawing reports whether a stroke is in progress.
func (s *Store) Drawing() bool { return s.drawing }

// Len returns the number of sealed strokes.
func (s *Store) Len() int { return len(s.history) }

// Reset drops the history and any stroke in progress.
func (s *Store) Reset() {
	s.history = nil
	s.active = nil
	s.drawing = false
}
