package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/piratemaker/assets"
)

// Sheets builds and caches placeholder frames. Each sheet is a flat block
// in its palette colour with a lighter band that steps across as the frame
// advances, and a facing marker on sequences ending in _left or _right.
type Sheets struct {
	palette *assets.Palette
	images  map[frameKey]*ebiten.Image
}

type frameKey struct {
	sheet string
	key   string
	frame int
	w, h  int
}

func NewSheets(p *assets.Palette) *Sheets {
	return &Sheets{palette: p, images: make(map[frameKey]*ebiten.Image)}
}

// Frame returns the image for one frame of a sheet sequence at the given
// size, generating it on first use.
func (s *Sheets) Frame(sheet, key string, frame, w, h int) (*ebiten.Image, error) {
	if sheet == "" {
		return nil, fmt.Errorf("render: empty sheet name")
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: sheet %s: bad size %dx%d", sheet, w, h)
	}
	k := frameKey{sheet: sheet, key: key, frame: frame, w: w, h: h}
	if img, ok := s.images[k]; ok {
		return img, nil
	}
	img := s.build(k)
	s.images[k] = img
	return img, nil
}

// Len reports how many frames have been generated.
func (s *Sheets) Len() int {
	return len(s.images)
}

func (s *Sheets) build(k frameKey) *ebiten.Image {
	base := s.palette.SheetColor(k.sheet)
	img := ebiten.NewImage(k.w, k.h)
	img.Fill(base)

	fw, fh := float32(k.w), float32(k.h)
	band := fw / 6
	if band < 1 {
		band = 1
	}
	x := float32(k.frame%6) * band
	vector.DrawFilledRect(img, x, 0, band, fh, lighten(base, 0.35), false)

	marker := fw / 5
	switch {
	case strings.HasSuffix(k.key, "_left"):
		vector.DrawFilledRect(img, 0, fh/4, marker, marker, color.Black, false)
	case strings.HasSuffix(k.key, "_right"):
		vector.DrawFilledRect(img, fw-marker, fh/4, marker, marker, color.Black, false)
	}
	vector.StrokeRect(img, 0, 0, fw, fh, 1, darken(base, 0.4), false)
	return img
}

func lighten(c color.RGBA, t float64) color.RGBA {
	mix := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*t) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

func darken(c color.RGBA, t float64) color.RGBA {
	mix := func(v uint8) uint8 { return uint8(float64(v) * (1 - t)) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
