package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

var colorCache sync.Map // map[string]color.RGBA

// ParseColor resolves a colour token. It accepts #rgb, #rrggbb, #rrggbbaa
// and CSS colour names. The alpha in #rrggbbaa is straight, the result is
// premultiplied.
func ParseColor(token string) (color.RGBA, error) {
	token = strings.TrimSpace(token)
	if c, ok := colorCache.Load(token); ok {
		return c.(color.RGBA), nil
	}
	c, err := parseColor(token)
	if err != nil {
		return color.RGBA{}, err
	}
	colorCache.Store(token, c)
	return c, nil
}

// MustColor is ParseColor for tokens known to be valid. Unknown tokens
// come back as opaque black.
func MustColor(token string) color.RGBA {
	c, err := ParseColor(token)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}

func parseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty colour")
	}
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
		}
		r := uint8(v>>8) & 0xF
		g := uint8(v>>4) & 0xF
		b := uint8(v) & 0xF
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}, nil
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
		}
		n := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
		return color.RGBAModel.Convert(n).(color.RGBA), nil
	}
	return color.RGBA{}, fmt.Errorf("colour %q: invalid hex length", s)
}

// Hex formats c as #RRGGBB, or as #RRGGBBAA with straight alpha when it
// is translucent.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}
