package core

import "fmt"

// Grid stores a fixed-size 2D field of scalar cell values in row-major order.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrConstruction, w, h)
	}
	return &Grid{W: w, H: h, data: make([]float64, w*h)}, nil
}

// MustGrid is like NewGrid but panics on invalid dimensions.
func MustGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

// Cells exposes the backing slice so rule loops and reducers can read values
// without per-cell bounds checks.
func (g *Grid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies within [0,W)×[0,H).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the value at (x, y).
func (g *Grid) Get(x, y int) (float64, error) {
	if !g.InBounds(x, y) {
		return 0, &IndexError{X: x, Y: y, W: g.W, H: g.H}
	}
	return g.data[y*g.W+x], nil
}

// Set overwrites the value at (x, y). Values are stored as given.
func (g *Grid) Set(x, y int, v float64) error {
	if !g.InBounds(x, y) {
		return &IndexError{X: x, Y: y, W: g.W, H: g.H}
	}
	g.data[y*g.W+x] = v
	return nil
}

// At is the unchecked counterpart of Get.
func (g *Grid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Put is the unchecked counterpart of Set.
func (g *Grid) Put(x, y int, v float64) { g.data[y*g.W+x] = v }

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]float64, len(g.data))}
	copy(c.data, g.data)
	return c
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.W != g.W || src.H != g.H {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrConstruction, src.W, src.H, g.W, g.H)
	}
	copy(g.data, src.data)
	return nil
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

var neighborOffsets4 = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors4 appends the in-bounds von Neumann neighbours of (x, y) to buf in
// left, right, up, down order. Out-of-bounds neighbours are skipped rather
// than wrapped.
func (g *Grid) Neighbors4(x, y int, buf []Point) []Point {
	buf = buf[:0]
	for _, d := range neighborOffsets4 {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= g.W || ny < 0 || ny >= g.H {
			continue
		}
		buf = append(buf, Point{X: nx, Y: ny})
	}
	return buf
}
