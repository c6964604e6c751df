package navigate

import (
	"errors"
	"testing"
)

func TestNavigateRoutesPages(t *testing.T) {
	var pages, uris, external []string
	r := &Router{
		OpenPage:   func(ref string) { pages = append(pages, ref) },
		OpenURI:    func(uri string) error { uris = append(uris, uri); return nil },
		OnExternal: func(uri string) { external = append(external, uri) },
	}
	for _, target := range []string{"embedded:2-a.page", "page:embedded:home.page", "https://blog.naver.com/xchoix831", "mailto:x@example.com"} {
		if err := r.Navigate(target); err != nil {
			t.Fatalf("Navigate(%s): %v", target, err)
		}
	}
	if len(pages) != 2 || pages[0] != "embedded:2-a.page" || pages[1] != "embedded:home.page" {
		t.Errorf("pages = %v", pages)
	}
	if len(uris) != 2 || uris[0] != "https://blog.naver.com/xchoix831" {
		t.Errorf("uris = %v", uris)
	}
	if len(external) != 2 {
		t.Errorf("external = %v", external)
	}
}

func TestNavigateErrors(t *testing.T) {
	boom := errors.New("boom")
	r := &Router{OpenURI: func(string) error { return boom }}
	if err := r.Navigate(" "); !errors.Is(err, ErrEmptyTarget) {
		t.Errorf("expected ErrEmptyTarget, got %v", err)
	}
	if err := r.Navigate("https://example.com"); !errors.Is(err, boom) {
		t.Errorf("expected wrapped handler error, got %v", err)
	}
	if err := r.Navigate("x.page"); err == nil {
		t.Error("expected error without a page loader")
	}
}
