//go:build darwin

package platform

import "testing"

func TestAppleString(t *testing.T) {
	cases := map[string]string{
		`plain`:             `"plain"`,
		`say "hi"`:          `"say \"hi\""`,
		`C:\pages`:          `"C:\\pages"`,
		"two\nlines":        `"two lines"`,
		"café → home.page": `"café → home.page"`,
	}
	for in, want := range cases {
		if got := appleString(in); got != want {
			t.Errorf("appleString(%q) = %s, want %s", in, got, want)
		}
	}
}
