//go:build windows

package platform

import "os/exec"

// OpenURI hands uri to the shell's default handler.
func OpenURI(uri string) error {
	uri, err := cleanURI(uri)
	if err != nil {
		return err
	}
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", uri).Start()
}
