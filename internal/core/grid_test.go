package core

import (
	"errors"
	"testing"
)

func TestNewGridZeroed(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			v, err := g.Get(x, y)
			if err != nil {
				t.Fatalf("Get(%d,%d): %v", x, y, err)
			}
			if v != 0 {
				t.Fatalf("cell (%d,%d) = %f, expected 0", x, y, v)
			}
		}
	}
}

func TestNewGridRejectsEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 4}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrConstruction) {
			t.Fatalf("NewGrid(%d,%d) err = %v, expected ErrConstruction", dims[0], dims[1], err)
		}
	}
}

func TestGridOutOfRange(t *testing.T) {
	g := MustGrid(2, 2)
	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range cases {
		if _, err := g.Get(c[0], c[1]); !errors.Is(err, ErrIndex) {
			t.Fatalf("Get(%d,%d) err = %v, expected ErrIndex", c[0], c[1], err)
		}
		err := g.Set(c[0], c[1], 1)
		var ie *IndexError
		if !errors.As(err, &ie) {
			t.Fatalf("Set(%d,%d) err = %v, expected *IndexError", c[0], c[1], err)
		}
		if ie.X != c[0] || ie.Y != c[1] || ie.W != 2 || ie.H != 2 {
			t.Fatalf("unexpected IndexError contents %+v", ie)
		}
	}
	for _, v := range g.Cells() {
		if v != 0 {
			t.Fatal("out-of-range Set must not touch the grid")
		}
	}
}

func TestGridSetDoesNotClamp(t *testing.T) {
	g := MustGrid(1, 1)
	if err := g.Set(0, 0, 1000); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := g.Get(0, 0); got != 1000 {
		t.Fatalf("expected stored value 1000, got %f", got)
	}
}

func TestGridCloneDoesNotAlias(t *testing.T) {
	g := MustGrid(3, 3)
	g.Put(1, 1, 5)
	c := g.Clone()
	c.Put(1, 1, 7)
	if g.At(1, 1) != 5 {
		t.Fatalf("clone write leaked into source: %f", g.At(1, 1))
	}
	if err := g.CopyFrom(MustGrid(2, 3)); !errors.Is(err, ErrConstruction) {
		t.Fatalf("CopyFrom mismatched size err = %v", err)
	}
}

func TestNeighbors4Edges(t *testing.T) {
	g := MustGrid(4, 4)
	var buf []Point
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 2},
		{3, 3, 2},
		{1, 0, 3},
		{0, 2, 3},
		{1, 1, 4},
	}
	for _, tt := range tests {
		buf = g.Neighbors4(tt.x, tt.y, buf)
		if len(buf) != tt.want {
			t.Fatalf("Neighbors4(%d,%d) = %d neighbours, expected %d", tt.x, tt.y, len(buf), tt.want)
		}
		for _, p := range buf {
			if !g.InBounds(p.X, p.Y) {
				t.Fatalf("neighbour %+v out of bounds", p)
			}
		}
	}

	single := MustGrid(1, 1)
	if n := len(single.Neighbors4(0, 0, nil)); n != 0 {
		t.Fatalf("1x1 grid should have no neighbours, got %d", n)
	}
}

func TestMaskWriteOnce(t *testing.T) {
	m, err := NewMask(3, 2)
	if err != nil {
		t.Fatalf("NewMask: %v", err)
	}
	if err := m.Mark(2, 1); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	if err := m.Mark(2, 1); err != nil {
		t.Fatalf("second Mark: %v", err)
	}
	if ok, _ := m.Marked(2, 1); !ok {
		t.Fatal("expected cell to be marked")
	}
	if m.Count() != 1 {
		t.Fatalf("expected 1 marked cell, got %d", m.Count())
	}
	if err := m.Mark(3, 0); !errors.Is(err, ErrIndex) {
		t.Fatalf("Mark out of range err = %v", err)
	}
}
