// Package navigate routes hotspot targets either to another page or to
// the desktop's URI handler.
package navigate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/scribble/internal/page"
)

// ErrEmptyTarget is returned for a hotspot without a target.
var ErrEmptyTarget = errors.New("empty hotspot target")

// Router dispatches hotspot targets.
type Router struct {
	// OpenPage loads a page reference. It is expected to return quickly
	// and load in the background.
	OpenPage func(ref string)
	// OpenURI hands anything that is not a page to the OS.
	OpenURI func(uri string) error
	// OnExternal, when set, is told about every URI handed to OpenURI.
	OnExternal func(uri string)
}

// Navigate opens target. Targets are not validated beyond telling pages
// apart from other URIs.
func (r *Router) Navigate(target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return ErrEmptyTarget
	}
	if page.IsPage(target) {
		if r.OpenPage == nil {
			return fmt.Errorf("navigate %s: no page loader", target)
		}
		r.OpenPage(page.Normalize(target))
		return nil
	}
	if r.OpenURI == nil {
		return fmt.Errorf("navigate %s: no uri handler", target)
	}
	if err := r.OpenURI(target); err != nil {
		return fmt.Errorf("navigate %s: %w", target, err)
	}
	if r.OnExternal != nil {
		r.OnExternal(target)
	}
	return nil
}
