//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"testing"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var testAtoms = atomSet{clipboard: 100, targets: 101, utf8: 102, textPlain: 103, png: 104}

func TestOfferTargets(t *testing.T) {
	r, ok := offer{text: []byte("x")}.answer(testAtoms, testAtoms.targets)
	if !ok || r.format != 32 || r.typ != xproto.AtomAtom {
		t.Fatalf("targets reply = %+v, %v", r, ok)
	}
	if r.length() != 4 {
		t.Fatalf("text offer advertised %d targets, want 4", r.length())
	}
	if got := xproto.Atom(xgb.Get32(r.payload[4:])); got != testAtoms.utf8 {
		t.Fatalf("second target = %d, want utf8", got)
	}

	r, _ = offer{image: []byte{1}}.answer(testAtoms, testAtoms.targets)
	if r.length() != 2 {
		t.Fatalf("image offer advertised %d targets, want 2", r.length())
	}
}

func TestOfferServesMatchingData(t *testing.T) {
	text := offer{text: []byte("page:2-a.page")}
	for _, target := range []xproto.Atom{testAtoms.utf8, xproto.AtomString, testAtoms.textPlain} {
		r, ok := text.answer(testAtoms, target)
		if !ok || string(r.payload) != "page:2-a.page" || r.typ != testAtoms.utf8 {
			t.Fatalf("target %d: reply %+v ok=%v", target, r, ok)
		}
	}
	if _, ok := text.answer(testAtoms, testAtoms.png); ok {
		t.Fatal("text offer served png")
	}
	if _, ok := (offer{image: []byte{1, 2}}).answer(testAtoms, testAtoms.utf8); ok {
		t.Fatal("image offer served text")
	}
	if _, ok := text.answer(testAtoms, 999); ok {
		t.Fatal("unknown target served")
	}
}
