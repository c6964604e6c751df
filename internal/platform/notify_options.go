package platform

import (
	"errors"
	"strings"
	"time"
)

// AppName is reported to the desktop for notifications and opened URIs.
const AppName = "Scribble"

// ErrEmptyURI is returned by OpenURI for a blank URI.
var ErrEmptyURI = errors.New("empty uri")

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// Urgent asks the notification center to keep the message visible,
	// used for load failures.
	Urgent bool
	// Timeout overrides how long the notification stays up.
	Timeout time.Duration
}

func cleanURI(uri string) (string, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", ErrEmptyURI
	}
	return uri, nil
}
