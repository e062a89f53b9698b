package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a diffusion simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Inject applies a pointer stimulus at an in-range grid coordinate.
	Inject(x, y int) error
	// Total is the aggregate metric over the primary grid.
	Total() int64
	// Field exposes the primary scalar grid for reducers.
	Field() *Grid
	// Cells exposes a display buffer of palette indices, refreshed on demand.
	Cells() []uint8
}

// PaletteProvider is implemented by sims that supply their own colour ramp
// for the display buffer.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// RGBAProvider is implemented by sims whose display needs more than one
// channel per cell. FillRGBA writes 4*W*H bytes into buf.
type RGBAProvider interface {
	FillRGBA(buf []byte)
}

// MaskProvider is implemented by sims that track a secondary boolean layer.
type MaskProvider interface {
	Mask() *Mask
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
