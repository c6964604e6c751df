// Package page reads page files: a background image reference plus the
// hotspots laid over it.
//
//	title = Home
//	background = home.png
//	hotspots = overlay
//	line_width = 3
//
//	[hotspot.a]
//	target = 2-a.page
//	label = A
//	x = 0.24
//	y = 0.21
//	width = 0.1135
//	height = 0.1085
//	rotation = -5
package page

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/example/scribble/internal/asset"
	"github.com/example/scribble/internal/hotspot"
	"github.com/example/scribble/internal/rc"
)

// Extension marks a reference as a page rather than an external URI.
const Extension = ".page"

// Scheme explicitly marks a page reference.
const Scheme = "page:"

// Page is a parsed page file.
type Page struct {
	// Ref is where the page was loaded from. Relative references are
	// resolved against it.
	Ref        string
	Title      string
	Background string
	// Hotspots overrides the configured variant when set.
	Hotspots  string
	LineWidth float64
	Specs     []hotspot.Spec
}

// Parse reads a page. Out of range fractions are an error.
func Parse(r io.Reader) (*Page, error) {
	p := &Page{}
	index := map[string]int{}
	var current = -1

	onSection := func(section string, line int) error {
		current = -1
		id, ok := strings.CutPrefix(section, "hotspot.")
		if !ok {
			return nil
		}
		if id == "" {
			return fmt.Errorf("line %d: hotspot section without an id", line)
		}
		if _, dup := index[id]; dup {
			return fmt.Errorf("line %d: duplicate hotspot %q", line, id)
		}
		index[id] = len(p.Specs)
		current = len(p.Specs)
		p.Specs = append(p.Specs, hotspot.Spec{ID: id})
		return nil
	}

	err := rc.Scan(r, onSection, func(e rc.Entry) error {
		if e.Section == "" {
			return p.setRoot(e.Key, e.Value)
		}
		if current < 0 {
			return nil
		}
		return setSpecField(&p.Specs[current], e.Key, e.Value)
	})
	if err != nil {
		return nil, err
	}
	for _, s := range p.Specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if s.Target == "" {
			return nil, fmt.Errorf("hotspot %s: missing target", s.ID)
		}
	}
	return p, nil
}

func (p *Page) setRoot(key, value string) error {
	switch strings.ToLower(key) {
	case "title":
		p.Title = value
	case "background":
		p.Background = value
	case "hotspots":
		if _, err := hotspot.ParseKind(value); err != nil {
			return err
		}
		p.Hotspots = value
	case "line_width":
		w, err := strconv.ParseFloat(value, 64)
		if err != nil || w <= 0 {
			return fmt.Errorf("invalid line_width %q", value)
		}
		p.LineWidth = w
	}
	return nil
}

func setSpecField(s *hotspot.Spec, key, value string) error {
	switch strings.ToLower(key) {
	case "target":
		s.Target = value
		return nil
	case "label":
		s.Label = value
		return nil
	}
	var dst *float64
	switch strings.ToLower(key) {
	case "x":
		dst = &s.X
	case "y":
		dst = &s.Y
	case "width":
		dst = &s.Width
	case "height":
		dst = &s.Height
	case "rotation":
		dst = &s.Rotation
	case "side":
		dst = &s.Side
	default:
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("hotspot %s: %s: %w", s.ID, key, err)
	}
	*dst = v
	return nil
}

// Load fetches and parses the page at ref. The background and hotspot
// targets are resolved against ref.
func Load(ctx context.Context, ref string) (*Page, error) {
	ref = Normalize(ref)
	data, err := asset.Read(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", ref, err)
	}
	p, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", ref, err)
	}
	p.Ref = ref
	p.Background = asset.Resolve(ref, p.Background)
	for i := range p.Specs {
		if IsPage(p.Specs[i].Target) {
			p.Specs[i].Target = asset.Resolve(ref, Normalize(p.Specs[i].Target))
		}
	}
	return p, nil
}

// Kind returns the hotspot variant for the page, falling back to def.
func (p *Page) Kind(def hotspot.Kind) hotspot.Kind {
	if p.Hotspots == "" {
		return def
	}
	k, err := hotspot.ParseKind(p.Hotspots)
	if err != nil {
		return def
	}
	return k
}

// IsPage reports whether target names another page rather than an
// external URI.
func IsPage(target string) bool {
	target = strings.TrimSpace(target)
	if strings.HasPrefix(target, Scheme) {
		return true
	}
	if strings.HasPrefix(target, asset.EmbeddedScheme) {
		return strings.HasSuffix(target, Extension)
	}
	clean := target
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = clean[:i]
	}
	return path.Ext(clean) == Extension
}

// Normalize strips the page: scheme.
func Normalize(ref string) string {
	return strings.TrimPrefix(strings.TrimSpace(ref), Scheme)
}
