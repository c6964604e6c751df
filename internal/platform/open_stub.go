//go:build !linux && !darwin && !windows && !freebsd && !openbsd && !netbsd && !dragonfly

package platform

import "fmt"

// OpenURI is unsupported on this platform.
func OpenURI(uri string) error {
	uri, err := cleanURI(uri)
	if err != nil {
		return err
	}
	return fmt.Errorf("open %s: no handler on this platform", uri)
}
