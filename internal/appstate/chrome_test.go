package appstate

import (
	"image"
	"testing"
	"time"

	"github.com/example/scribble/internal/config"
	"github.com/example/scribble/internal/theme"
)

func newTestToolbar(t *testing.T) (*toolbar, *[]string) {
	t.Helper()
	pal, err := NewPalette(config.DefaultPalette())
	if err != nil {
		t.Fatal(err)
	}
	var log []string
	tb := newToolbar(styleFromTheme(theme.Default()), []toolAction{
		{label: "Undo", fn: func() { log = append(log, "undo") }},
		{label: "Home", fn: func() { log = append(log, "home") }},
	}, pal, func(i int) { log = append(log, pal.At(i).Name) })
	return tb, &log
}

func TestToolbarLayout(t *testing.T) {
	tb, _ := newTestToolbar(t)
	tb.layout(1)
	if tb.rect.Min != image.Pt(toolbarMargin, toolbarMargin) {
		t.Fatalf("toolbar at %v", tb.rect.Min)
	}
	prev := tb.buttons[0].Rect()
	for _, cb := range tb.buttons[1:] {
		r := cb.Rect()
		if r.Min.X < prev.Max.X {
			t.Fatalf("button %v overlaps %v", r, prev)
		}
		if !r.In(tb.rect) {
			t.Fatalf("button %v outside toolbar %v", r, tb.rect)
		}
		prev = r
	}

	small := tb.rect
	tb.layout(2)
	if tb.rect.Dx() <= small.Dx() || tb.rect.Dy() <= small.Dy() {
		t.Fatalf("toolbar did not grow with density: %v -> %v", small, tb.rect)
	}
}

func TestToolbarHit(t *testing.T) {
	tb, log := newTestToolbar(t)
	tb.layout(1)
	for _, idx := range []int{0, 1, 3} {
		r := tb.buttons[idx].Rect()
		got := tb.hit(r.Min.Add(image.Pt(1, 1)))
		if got != idx {
			t.Fatalf("hit in button %d returned %d", idx, got)
		}
		tb.buttons[got].Activate()
	}
	want := []string{"undo", "home", "black"}
	for i := range want {
		if (*log)[i] != want[i] {
			t.Fatalf("activations = %v, want %v", *log, want)
		}
	}
	if tb.hit(image.Pt(500, 500)) != -1 {
		t.Fatal("hit outside the toolbar")
	}
	tb.hidden = true
	if tb.hit(tb.buttons[0].Rect().Min) != -1 {
		t.Fatal("hidden toolbar still hit")
	}
}

func TestToolbarDraw(t *testing.T) {
	tb, _ := newTestToolbar(t)
	tb.layout(1)
	dst := image.NewRGBA(image.Rect(0, 0, 400, 100))
	tb.draw(dst)
	if got := dst.RGBAAt(tb.rect.Min.X+1, tb.rect.Min.Y+1); got.A == 0 {
		t.Fatal("toolbar background not drawn")
	}
	if got := dst.RGBAAt(390, 90); got.A != 0 {
		t.Fatalf("toolbar drew outside its rect: %+v", got)
	}

	hidden := image.NewRGBA(dst.Bounds())
	tb.hidden = true
	tb.draw(hidden)
	for _, v := range hidden.Pix {
		if v != 0 {
			t.Fatal("hidden toolbar drew pixels")
		}
	}
}

func TestBanner(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var b banner
	if b.active(now) {
		t.Fatal("empty banner active")
	}
	b.set("hello", now)
	if !b.active(now.Add(messageDuration / 2)) {
		t.Fatal("banner expired early")
	}
	if b.active(now.Add(messageDuration)) {
		t.Fatal("banner outlived its duration")
	}
	b.set("again", now)
	b.dismiss()
	if b.active(now) {
		t.Fatal("dismissed banner still active")
	}
}

func TestDrawMessage(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 300, 120))
	drawMessage(dst, "saved", faceAt(messageTextSize, 1), styleFromTheme(theme.Default()), 1)
	if got := dst.RGBAAt(150, 60); got.A == 0 {
		t.Fatal("message not drawn at the centre")
	}
	if got := dst.RGBAAt(1, 1); got.A != 0 {
		t.Fatal("message drew into the corner")
	}
}
