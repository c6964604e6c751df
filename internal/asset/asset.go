// Package asset resolves and fetches page and image references.
//
// A reference is one of:
//
//	embedded:<name>   a file compiled into the binary
//	http(s)://...     fetched over HTTP
//	file://<path>     a local file
//	<path>            a local file, or relative to the referring page
package asset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/example/scribble/assets"
)

// EmbeddedScheme prefixes references to bundled files.
const EmbeddedScheme = "embedded:"

// MaxSize caps how much is read from a single reference.
const MaxSize = 32 << 20

// ErrTooLarge is returned when a reference exceeds MaxSize.
var ErrTooLarge = errors.New("asset too large")

// HTTPClient is used for http and https references.
var HTTPClient = http.DefaultClient

// Read fetches the bytes behind ref.
func Read(ctx context.Context, ref string) ([]byte, error) {
	switch {
	case strings.HasPrefix(ref, EmbeddedScheme):
		return assets.ReadFile(strings.TrimPrefix(ref, EmbeddedScheme))
	case IsRemote(ref):
		return fetch(ctx, ref)
	}
	p := localPath(ref)
	st, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if st.Size() > MaxSize {
		return nil, fmt.Errorf("%s: %w", p, ErrTooLarge)
	}
	return os.ReadFile(p)
}

// Load fetches and decodes the image behind ref. PNG, JPEG, GIF, BMP and
// WebP are supported.
func Load(ctx context.Context, ref string) (image.Image, error) {
	if name, ok := strings.CutPrefix(ref, EmbeddedScheme); ok && strings.HasSuffix(name, ".png") {
		img, err := assets.Image(name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", ref, err)
		}
		return img, nil
	}
	data, err := Read(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", ref, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ref, err)
	}
	return img, nil
}

func fetch(ctx context.Context, ref string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	resp, err := HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: %s", ref, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", ref, err)
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("get %s: %w", ref, ErrTooLarge)
	}
	return data, nil
}

// IsRemote reports whether ref is an http or https URL.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func localPath(ref string) string {
	if u, err := url.Parse(ref); err == nil && u.Scheme == "file" {
		return filepath.FromSlash(u.Path)
	}
	return ref
}

// Resolve interprets ref relative to base, the reference of the page that
// mentions it. References with a scheme are returned unchanged. A path
// starting with "/" is rooted at the base's site or at the embedded root,
// and at the filesystem root only for local bases.
func Resolve(base, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || hasScheme(ref) {
		return ref
	}
	switch {
	case base == "":
		return ref
	case strings.HasPrefix(base, EmbeddedScheme):
		if strings.HasPrefix(ref, "/") {
			return EmbeddedScheme + path.Clean(ref)[1:]
		}
		dir := path.Dir(strings.TrimPrefix(base, EmbeddedScheme))
		return EmbeddedScheme + path.Join(dir, ref)
	case IsRemote(base):
		b, err := url.Parse(base)
		if err != nil {
			return ref
		}
		r, err := url.Parse(ref)
		if err != nil {
			return ref
		}
		return b.ResolveReference(r).String()
	}
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(localPath(base)), filepath.FromSlash(ref))
}

// hasScheme reports whether ref starts with a URI scheme. Single letter
// schemes are treated as Windows drive letters.
func hasScheme(ref string) bool {
	i := strings.Index(ref, ":")
	if i < 2 {
		return false
	}
	for _, c := range ref[:i] {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '+', c == '-', c == '.':
		default:
			return false
		}
	}
	return true
}
