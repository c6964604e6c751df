// Package rc reads the line oriented configuration format shared by the
// config, theme and page files.
//
//	# comment
//	key = value
//	key: value
//	[section]
package rc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry is one key/value pair and the section it appeared in. Section is
// empty for the root.
type Entry struct {
	Section string
	Key     string
	Value   string
	Line    int
}

// SectionFunc is called when a section header is read, before any of the
// section's entries.
type SectionFunc func(section string, line int) error

// Scan reads r and calls fn for each entry. Blank lines and lines starting
// with # or // are skipped, as are lines without a separator.
func Scan(r io.Reader, onSection SectionFunc, fn func(Entry) error) error {
	scanner := bufio.NewScanner(r)
	var section string
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]"))
			if onSection != nil {
				if err := onSection(section, n); err != nil {
					return err
				}
			}
			continue
		}
		key, value, ok := split(line)
		if !ok {
			continue
		}
		if err := fn(Entry{Section: section, Key: key, Value: value, Line: n}); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return scanner.Err()
}

// split separates key and value at the first = or :, whichever comes
// first, so values such as URLs keep their colons.
func split(line string) (string, string, bool) {
	i := strings.IndexAny(line, "=:")
	if i <= 0 {
		return "", "", false
	}
	key := strings.TrimSpace(line[:i])
	value := strings.TrimSpace(line[i+1:])
	if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
		value = value[1 : len(value)-1]
	}
	return key, value, key != ""
}
