// Package assets embeds the bundled pages and background images.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed pages/*.page images/*.png
var embedded embed.FS

var (
	imagesMu sync.Mutex
	images   = map[string]image.Image{}
)

// lookup maps a name to its path in the embedded tree. Bare names are
// searched for under pages/ and images/.
func lookup(name string) (string, error) {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	candidates := []string{name, path.Join("pages", path.Base(name)), path.Join("images", path.Base(name))}
	for _, c := range candidates {
		if st, err := fs.Stat(embedded, c); err == nil && !st.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("embedded %s: %w", name, fs.ErrNotExist)
}

// ReadFile returns the raw bytes of an embedded file.
func ReadFile(name string) ([]byte, error) {
	p, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return embedded.ReadFile(p)
}

// Image returns the decoded embedded PNG. Decoded images are cached and
// shared, so callers must not modify them.
func Image(name string) (image.Image, error) {
	p, err := lookup(name)
	if err != nil {
		return nil, err
	}
	imagesMu.Lock()
	defer imagesMu.Unlock()
	if img, ok := images[p]; ok {
		return img, nil
	}
	data, err := embedded.ReadFile(p)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	images[p] = img
	return img, nil
}

// Pages lists the embedded page names.
func Pages() []string {
	entries, err := fs.ReadDir(embedded, "pages")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
