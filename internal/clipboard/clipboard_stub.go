//go:build !(linux || freebsd || openbsd || netbsd || dragonfly) && !windows && !(darwin && cgo)

package clipboard

import (
	"errors"
	"image"
)

var errUnsupported = errors.New("clipboard is not supported on this platform")

func WriteImage(image.Image) error { return errUnsupported }

func WriteText(string) error { return errUnsupported }
