package render

import (
	"image/color"

	"spread-ca/internal/core"
)

// Grayscale is the fallback ramp for sims without a palette.
var Grayscale = func() []color.RGBA {
	p := make([]color.RGBA, 256)
	for i := range p {
		v := uint8(i)
		p[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return p
}()

// FillSimRGBA writes the sim's current display into buf (4 bytes per cell).
// Sims with their own RGBA conversion are used as-is; otherwise cells are
// mapped through the sim's palette, or Grayscale.
func FillSimRGBA(buf []byte, sim core.Sim) {
	if p, ok := sim.(core.RGBAProvider); ok {
		p.FillRGBA(buf)
		return
	}
	palette := Grayscale
	if p, ok := sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	fillPaletteRGBA(buf, sim.Cells(), palette)
}

// FillMaskRGBA writes tint for marked cells and transparent black elsewhere.
func FillMaskRGBA(buf []byte, m *core.Mask, tint color.RGBA) {
	for i, c := range m.Cells() {
		base := i * 4
		if c != 0 {
			buf[base+0] = tint.R
			buf[base+1] = tint.G
			buf[base+2] = tint.B
			buf[base+3] = tint.A
			continue
		}
		buf[base+0] = 0
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 0
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
