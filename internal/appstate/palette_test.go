package appstate

import (
	"testing"

	"github.com/example/scribble/internal/config"
)

func TestPaletteEnsure(t *testing.T) {
	p, err := NewPalette(config.DefaultPalette())
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	n := p.Len()
	if idx, err := p.Ensure("#1e64ff", ""); err != nil || idx != 2 {
		t.Fatalf("Ensure existing = %d, %v", idx, err)
	}
	if idx, err := p.Ensure("teal", "custom"); err != nil || idx != n {
		t.Fatalf("Ensure new = %d, %v", idx, err)
	}
	if p.At(n).Name != "custom" {
		t.Fatalf("new swatch named %q", p.At(n).Name)
	}
	if _, err := p.Ensure("nope", "bad"); err == nil {
		t.Fatal("expected error for an invalid colour")
	}
	if p.Len() != n+1 {
		t.Fatalf("palette has %d swatches", p.Len())
	}
}

func TestPaletteIndexAndClamp(t *testing.T) {
	p, err := NewPalette(config.DefaultPalette())
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Index("#000000"); got != 1 {
		t.Fatalf("Index(black) = %d", got)
	}
	if got := p.Index("#123456"); got != -1 {
		t.Fatalf("Index(unknown) = %d", got)
	}
	if got := p.At(-4).Name; got != "pink" {
		t.Fatalf("At(-4) = %q", got)
	}
	if got := p.At(100).Name; got != "white" {
		t.Fatalf("At(100) = %q", got)
	}
}

func TestNewPaletteRejectsBadEntry(t *testing.T) {
	if _, err := NewPalette([]config.PaletteEntry{{Name: "x", Color: "#12"}}); err == nil {
		t.Fatal("expected error")
	}
}
