package core

import "fmt"

// Mask stores a write-once boolean flag per cell as bytes in row-major order.
type Mask struct {
	W, H int
	data []uint8
}

// NewMask allocates an unmarked mask with the given dimensions.
func NewMask(w, h int) (*Mask, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: mask size %dx%d", ErrConstruction, w, h)
	}
	return &Mask{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice (0 = unmarked, 1 = marked).
func (m *Mask) Cells() []uint8 { return m.data }

// Mark flags (x, y). Marking an already marked cell is a no-op.
func (m *Mask) Mark(x, y int) error {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return &IndexError{X: x, Y: y, W: m.W, H: m.H}
	}
	m.data[y*m.W+x] = 1
	return nil
}

// Marked reports whether (x, y) has been flagged.
func (m *Mask) Marked(x, y int) (bool, error) {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return false, &IndexError{X: x, Y: y, W: m.W, H: m.H}
	}
	return m.data[y*m.W+x] != 0, nil
}

// Count returns the number of marked cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear unmarks every cell.
func (m *Mask) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}
