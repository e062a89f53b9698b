package deposition

import (
	"image/color"
	"math"
)

// Palette scales the component colour by concentration/255 for each of the
// 256 display levels.
func (w *World) Palette() []color.RGBA {
	return componentPalette(w.cfg.Component.Color)
}

func componentPalette(c color.RGBA) []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		f := float64(i) / MaxValue
		palette[i] = color.RGBA{
			R: uint8(float64(c.R) * f),
			G: uint8(float64(c.G) * f),
			B: uint8(float64(c.B) * f),
			A: 255,
		}
	}
	return palette
}

// Cells returns the concentration floored to palette indices.
func (w *World) Cells() []uint8 {
	for i, v := range w.curr.Cells() {
		w.display[i] = uint8(math.Max(0, math.Min(MaxValue, math.Floor(v))))
	}
	return w.display
}
