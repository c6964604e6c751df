package appstate

import (
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Point sizes at a density of 1.
const (
	uiTextSize      = 13
	labelTextSize   = 14
	messageTextSize = 28
)

var goRegular *opentype.Font

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	goRegular = f
}

type faceKey struct {
	size  float64
	scale float64
}

var (
	facesMu sync.Mutex
	faces   = map[faceKey]font.Face{}
)

// faceAt returns a cached Go Regular face of size points rendered for a
// device scale. It falls back to the bitmap face if the font cannot be
// rasterized.
func faceAt(size, scale float64) font.Face {
	if scale <= 0 {
		scale = 1
	}
	k := faceKey{size: size, scale: scale}
	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[k]; ok {
		return f
	}
	f, err := opentype.NewFace(goRegular, &opentype.FaceOptions{Size: size, DPI: 72 * scale, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("font face: %v", err)
		return basicfont.Face7x13
	}
	faces[k] = f
	return f
}

// LabelFace returns the face used for hotspot button labels.
func LabelFace(scale float64) font.Face { return faceAt(labelTextSize, scale) }
