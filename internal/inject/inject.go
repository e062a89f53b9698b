// Package inject turns pointer events in canvas pixel space into grid
// injections.
package inject

import (
	"fmt"
	"math"

	"spread-ca/internal/core"
)

// Target receives injections at in-range grid coordinates.
type Target interface {
	Inject(x, y int) error
}

// Mapper converts canvas pixel coordinates into grid coordinates.
type Mapper struct {
	GridW, GridH     int
	CanvasW, CanvasH float64
	Scale            float64
}

// NewMapper validates the geometry of a canvas showing a grid.
func NewMapper(gridW, gridH int, canvasW, canvasH, scale float64) (Mapper, error) {
	if gridW < 1 || gridH < 1 || canvasW <= 0 || canvasH <= 0 || scale <= 0 {
		return Mapper{}, fmt.Errorf("%w: mapper grid %dx%d canvas %gx%g scale %g",
			core.ErrConstruction, gridW, gridH, canvasW, canvasH, scale)
	}
	return Mapper{GridW: gridW, GridH: gridH, CanvasW: canvasW, CanvasH: canvasH, Scale: scale}, nil
}

// Map returns floor(p * grid / canvas / scale) per axis, clamped into the grid.
func (m Mapper) Map(px, py float64) (int, int) {
	x := int(math.Floor(px * float64(m.GridW) / m.CanvasW / m.Scale))
	y := int(math.Floor(py * float64(m.GridH) / m.CanvasH / m.Scale))
	return clampInt(x, 0, m.GridW-1), clampInt(y, 0, m.GridH-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Port tracks pointer state and injects on press and on every move while
// pressed.
type Port struct {
	mapper Mapper
	target Target
	down   bool

	// Count is the number of injections applied.
	Count int
}

// NewPort binds a mapper to a target.
func NewPort(m Mapper, target Target) (*Port, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: injection port requires a target", core.ErrConstruction)
	}
	return &Port{mapper: m, target: target}, nil
}

// Down presses the pointer and injects at (px, py).
func (p *Port) Down(px, py float64) error {
	p.down = true
	return p.apply(px, py)
}

// Move injects at (px, py) when the pointer is pressed.
func (p *Port) Move(px, py float64) error {
	if !p.down {
		return nil
	}
	return p.apply(px, py)
}

// Up releases the pointer.
func (p *Port) Up() { p.down = false }

// Pressed reports whether the pointer is held.
func (p *Port) Pressed() bool { return p.down }

// Mapper returns the active coordinate mapper.
func (p *Port) Mapper() Mapper { return p.mapper }

// SetMapper replaces the mapper, e.g. after the canvas is resized.
func (p *Port) SetMapper(m Mapper) { p.mapper = m }

func (p *Port) apply(px, py float64) error {
	x, y := p.mapper.Map(px, py)
	if err := p.target.Inject(x, y); err != nil {
		return fmt.Errorf("inject at (%d,%d): %w", x, y, err)
	}
	p.Count++
	return nil
}
