//go:build !linux && !darwin && !windows && !freebsd && !openbsd && !netbsd && !dragonfly

package platform

import "errors"

// ErrNoNotifier is returned where no notification service is known.
var ErrNoNotifier = errors.New("desktop notifications unsupported on this platform")

// Notify drops the notification and reports ErrNoNotifier.
func Notify(title, body string, opts Options) error {
	return ErrNoNotifier
}
