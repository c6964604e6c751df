package page

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/scribble/internal/hotspot"
)

func TestParse(t *testing.T) {
	input := `
title = Test
background = bg.png
hotspots = region
line_width = 1

[hotspot.one]
target = next.page
label = One
x = 0.25
y = 0.5
width = 0.1
height = 0.1
rotation = -5

[hotspot.two]
target = https://example.com
side = 50
`
	p, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Title != "Test" || p.Background != "bg.png" || p.LineWidth != 1 {
		t.Fatalf("root = %+v", p)
	}
	if p.Kind(hotspot.KindOverlay) != hotspot.KindRegion {
		t.Fatalf("kind = %v", p.Kind(hotspot.KindOverlay))
	}
	want := []hotspot.Spec{
		{ID: "one", Target: "next.page", Label: "One", X: 0.25, Y: 0.5, Width: 0.1, Height: 0.1, Rotation: -5},
		{ID: "two", Target: "https://example.com", Side: 50},
	}
	if len(p.Specs) != len(want) {
		t.Fatalf("specs = %+v", p.Specs)
	}
	for i := range want {
		if p.Specs[i] != want[i] {
			t.Errorf("spec %d = %+v, want %+v", i, p.Specs[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"[hotspot.a]\ntarget = x.page\nx = 1.5\n",
		"[hotspot.a]\ntarget = x.page\nwidth = -0.1\n",
		"[hotspot.a]\nx = 0.1\n",
		"[hotspot.a]\ntarget = a.page\n[hotspot.a]\ntarget = b.page\n",
		"[hotspot.]\n",
		"hotspots = diagonal\n",
		"[hotspot.a]\ntarget = a.page\ny = half\n",
	} {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestKindFallback(t *testing.T) {
	p := &Page{}
	if p.Kind(hotspot.KindRegion) != hotspot.KindRegion {
		t.Fatal("empty override should use the fallback")
	}
}

func TestIsPage(t *testing.T) {
	cases := map[string]bool{
		"2-a.page":                     true,
		"page:home":                    true,
		"embedded:home.page":           true,
		"embedded:home.png":            false,
		"https://example.com/x.page":   true,
		"https://example.com/x.page#a": true,
		"https://blog.naver.com/x":     false,
		"mailto:someone@example.com":   false,
	}
	for target, want := range cases {
		if got := IsPage(target); got != want {
			t.Errorf("IsPage(%q) = %v, want %v", target, got, want)
		}
	}
}

func TestLoadEmbeddedHome(t *testing.T) {
	p, err := Load(context.Background(), "embedded:home.page")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Background != "embedded:home.png" {
		t.Errorf("background = %q", p.Background)
	}
	if len(p.Specs) != 8 {
		t.Fatalf("home has %d hotspots, want 8", len(p.Specs))
	}
	if p.Specs[0].Target != "embedded:2-a.page" {
		t.Errorf("first target = %q", p.Specs[0].Target)
	}
	if p.Specs[1].Rotation != -5 {
		t.Errorf("b rotation = %v", p.Specs[1].Rotation)
	}
	for _, s := range p.Specs {
		next, err := Load(context.Background(), s.Target)
		if err != nil {
			t.Fatalf("Load(%s): %v", s.Target, err)
		}
		if len(next.Specs) == 0 || next.Specs[0].Target != "embedded:home.page" {
			t.Errorf("%s does not link back home: %+v", s.Target, next.Specs)
		}
	}
}

func TestLoadRegionPage(t *testing.T) {
	p, err := Load(context.Background(), "page:embedded:region.page")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Kind(hotspot.KindOverlay) != hotspot.KindRegion || p.LineWidth != 1 {
		t.Fatalf("region page = %+v", p)
	}
	if len(p.Specs) != 1 || p.Specs[0].Side != 50 {
		t.Fatalf("specs = %+v", p.Specs)
	}
	if p.Specs[0].Target != "https://blog.naver.com/xchoix831" {
		t.Fatalf("external target was rewritten: %q", p.Specs[0].Target)
	}
}

func TestLoadFileResolvesRelative(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "start.page")
	body := "background = bg.png\n[hotspot.n]\ntarget = next.page\nx = 0\ny = 0\nwidth = 1\nheight = 1\n"
	if err := os.WriteFile(ref, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(context.Background(), ref)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Background != filepath.Join(dir, "bg.png") {
		t.Errorf("background = %q", p.Background)
	}
	if p.Specs[0].Target != filepath.Join(dir, "next.page") {
		t.Errorf("target = %q", p.Specs[0].Target)
	}
}
