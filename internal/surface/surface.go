// Package surface sizes the drawing surface for a viewport and fits the
// background image inside it.
package surface

import (
	"errors"
	"math"
)

// ErrImageNotLoaded is returned by Fit when the background image has no
// intrinsic size yet.
var ErrImageNotLoaded = errors.New("background image not loaded")

// Size describes the drawable surface for one viewport.
type Size struct {
	PixelWidth  int
	PixelHeight int
	CSSWidth    float64
	CSSHeight   float64
	// Scale maps CSS pixels to device pixels. Drawing commands are issued
	// in CSS pixels and multiplied by Scale.
	Scale float64
}

// Empty reports whether the surface has no drawable pixels.
func (s Size) Empty() bool { return s.PixelWidth <= 0 || s.PixelHeight <= 0 }

// ComputeSize returns the surface for a viewport of vw x vh CSS pixels at
// the given pixel density. A missing density falls back to 1.
func ComputeSize(vw, vh, density float64) Size {
	if density <= 0 || math.IsNaN(density) || math.IsInf(density, 0) {
		density = 1
	}
	if vw < 0 {
		vw = 0
	}
	if vh < 0 {
		vh = 0
	}
	return Size{
		PixelWidth:  int(vw * density),
		PixelHeight: int(vh * density),
		CSSWidth:    vw,
		CSSHeight:   vh,
		Scale:       density,
	}
}

// FromPixels builds the surface for a window that reports its size in
// device pixels, as shiny does.
func FromPixels(widthPx, heightPx int, density float64) Size {
	if density <= 0 || math.IsNaN(density) || math.IsInf(density, 0) {
		density = 1
	}
	return Size{
		PixelWidth:  widthPx,
		PixelHeight: heightPx,
		CSSWidth:    float64(widthPx) / density,
		CSSHeight:   float64(heightPx) / density,
		Scale:       density,
	}
}

// DensityFromPixelsPerPt converts shiny's PixelsPerPt to a device pixel
// ratio where 96 DPI is 1.
func DensityFromPixelsPerPt(ppp float32) float64 {
	if ppp <= 0 {
		return 1
	}
	return float64(ppp) * 0.75
}

// FitRect is the letterboxed placement of the background image in CSS
// pixels.
type FitRect struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// Contains reports whether the CSS point lies inside the image area.
func (f FitRect) Contains(x, y float64) bool {
	return x >= f.OffsetX && x < f.OffsetX+f.Width && y >= f.OffsetY && y < f.OffsetY+f.Height
}

// Fit scales an imageW x imageH image to fit the surface while keeping its
// aspect ratio, and centres it on the axis with spare room.
func Fit(pixelW, pixelH int, scale float64, imageW, imageH int) (FitRect, error) {
	if imageW <= 0 || imageH <= 0 {
		return FitRect{}, ErrImageNotLoaded
	}
	if pixelW <= 0 || pixelH <= 0 {
		return FitRect{}, nil
	}
	if scale <= 0 {
		scale = 1
	}
	cssW := float64(pixelW) / scale
	cssH := float64(pixelH) / scale
	imageAspect := float64(imageW) / float64(imageH)
	surfaceAspect := cssW / cssH

	var r FitRect
	if imageAspect > surfaceAspect {
		r.Width = cssW
		r.Height = r.Width / imageAspect
		r.OffsetY = (cssH - r.Height) / 2
	} else {
		r.Height = cssH
		r.Width = r.Height * imageAspect
		r.OffsetX = (cssW - r.Width) / 2
	}
	return r, nil
}
