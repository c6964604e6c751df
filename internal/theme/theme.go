package theme

import (
	"image/color"
)

// Theme defines the colours used by the window chrome and the hotspot
// buttons.
type Theme struct {
	Name string

	// Canvas
	Background color.RGBA // Letterbox fill around the background image

	// Toolbar
	Toolbar          color.RGBA
	ButtonBackground color.RGBA
	ButtonPressed    color.RGBA
	ButtonText       color.RGBA
	ButtonBorder     color.RGBA
	SwatchBorder     color.RGBA
	SwatchSelected   color.RGBA

	// Hotspot buttons
	HotspotFill    color.RGBA
	HotspotPressed color.RGBA
	HotspotBorder  color.RGBA
	HotspotText    color.RGBA

	// Message banner
	MessageBackground color.RGBA
	MessageText       color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:              "light",
		Background:        color.RGBA{255, 255, 255, 255},
		Toolbar:           straight(236, 236, 236, 230),
		ButtonBackground:  color.RGBA{250, 250, 250, 255},
		ButtonPressed:     color.RGBA{200, 200, 200, 255},
		ButtonText:        color.RGBA{0, 0, 0, 255},
		ButtonBorder:      color.RGBA{120, 120, 120, 255},
		SwatchBorder:      color.RGBA{90, 90, 90, 255},
		SwatchSelected:    color.RGBA{0, 0, 0, 255},
		HotspotFill:       straight(255, 255, 255, 150),
		HotspotPressed:    straight(237, 0, 91, 120),
		HotspotBorder:     color.RGBA{237, 0, 91, 255},
		HotspotText:       color.RGBA{40, 40, 40, 255},
		MessageBackground: straight(255, 255, 255, 230),
		MessageText:       color.RGBA{0, 0, 0, 255},
	}
}

// straight converts a colour with straight alpha to the premultiplied form
// stored in a Theme.
func straight(r, g, b, a uint8) color.RGBA {
	return color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: a}).(color.RGBA)
}

// Clone returns a copy of t.
func (t *Theme) Clone() *Theme {
	c := *t
	return &c
}
