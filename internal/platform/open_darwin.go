//go:build darwin

package platform

import "os/exec"

// OpenURI hands uri to the default handler via open(1).
func OpenURI(uri string) error {
	uri, err := cleanURI(uri)
	if err != nil {
		return err
	}
	return exec.Command("open", uri).Start()
}
