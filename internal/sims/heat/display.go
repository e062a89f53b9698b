package heat

import "image/color"

var heatPalette = buildHeatPalette()

// Palette maps quantised heat onto a black-to-red ramp.
func (w *World) Palette() []color.RGBA { return heatPalette }

func buildHeatPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		palette[i] = color.RGBA{R: uint8(i), A: 255}
	}
	return palette
}

// FillRGBA paints heat into the red channel and fuel into the green channel
// of a single W*H image.
func (w *World) FillRGBA(buf []byte) {
	heat := w.heatCurr.Cells()
	fuel := w.fuelCurr.Cells()
	for i := range heat {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		buf[base+0] = uint8(clamp01(heat[i]) * 255)
		buf[base+1] = uint8(clamp01(fuel[i]) * 255)
		buf[base+2] = 0
		buf[base+3] = 255
	}
}
