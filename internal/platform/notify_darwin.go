//go:build darwin

package platform

import (
	"os/exec"
	"strings"
)

// Notify posts to Notification Center through osascript. Urgent
// notifications play the alert sound.
func Notify(title, body string, opts Options) error {
	var b strings.Builder
	b.WriteString("display notification ")
	b.WriteString(appleString(body))
	b.WriteString(" with title ")
	b.WriteString(appleString(title))
	b.WriteString(" subtitle ")
	b.WriteString(appleString(AppName))
	if opts.Urgent {
		b.WriteString(` sound name "Basso"`)
	}
	return exec.Command("osascript", "-e", b.String()).Run()
}

// appleString quotes s as an AppleScript string literal, which only knows
// backslash and double quote escapes.
func appleString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", " ", "\n", " ")
	return `"` + r.Replace(s) + `"`
}
