package rc

import (
	"errors"
	"strings"
	"testing"
)

func TestScan(t *testing.T) {
	input := `
# leading comment
page = embedded:home.page
color: "#ED005B"

[hotspot.a]
target = https://example.com/a:b
// comment
x: 0.25
not a pair
`
	var sections []string
	var got []Entry
	err := Scan(strings.NewReader(input), func(s string, _ int) error {
		sections = append(sections, s)
		return nil
	}, func(e Entry) error {
		got = append(got, e)
		return nil
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(sections) != 1 || sections[0] != "hotspot.a" {
		t.Fatalf("sections = %v", sections)
	}
	want := []Entry{
		{Key: "page", Value: "embedded:home.page", Line: 3},
		{Key: "color", Value: "#ED005B", Line: 4},
		{Section: "hotspot.a", Key: "target", Value: "https://example.com/a:b", Line: 7},
		{Section: "hotspot.a", Key: "x", Value: "0.25", Line: 9},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScanReportsLine(t *testing.T) {
	boom := errors.New("boom")
	err := Scan(strings.NewReader("a = 1\nb = 2\n"), nil, func(e Entry) error {
		if e.Key == "b" {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error %q does not name the line", err)
	}
}
