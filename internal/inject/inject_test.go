package inject

import (
	"errors"
	"testing"

	"spread-ca/internal/core"
)

type recorder struct {
	hits []core.Point
	err  error
}

func (r *recorder) Inject(x, y int) error {
	r.hits = append(r.hits, core.Point{X: x, Y: y})
	return r.err
}

func TestMapperFloorsAndScales(t *testing.T) {
	m, err := NewMapper(100, 50, 400, 200, 1)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	tests := []struct {
		px, py float64
		x, y   int
	}{
		{0, 0, 0, 0},
		{3.9, 3.9, 0, 0},
		{4, 4, 1, 1},
		{399.9, 199.9, 99, 49},
		{200, 100, 50, 25},
	}
	for _, tt := range tests {
		x, y := m.Map(tt.px, tt.py)
		if x != tt.x || y != tt.y {
			t.Errorf("Map(%v,%v) = (%d,%d), want (%d,%d)", tt.px, tt.py, x, y, tt.x, tt.y)
		}
	}

	scaled, _ := NewMapper(100, 100, 500, 500, 5)
	if x, y := scaled.Map(499, 250); x != 19 || y != 10 {
		t.Errorf("scaled Map = (%d,%d), want (19,10)", x, y)
	}
}

func TestMapperClamps(t *testing.T) {
	m, _ := NewMapper(10, 10, 100, 100, 1)
	if x, y := m.Map(-5, 250); x != 0 || y != 9 {
		t.Fatalf("Map outside canvas = (%d,%d), want (0,9)", x, y)
	}
	if x, y := m.Map(100, 100); x != 9 || y != 9 {
		t.Fatalf("Map on far edge = (%d,%d), want (9,9)", x, y)
	}
}

func TestNewMapperRejectsBadGeometry(t *testing.T) {
	if _, err := NewMapper(0, 10, 100, 100, 1); !errors.Is(err, core.ErrConstruction) {
		t.Fatalf("err = %v", err)
	}
	if _, err := NewMapper(10, 10, 100, 100, 0); !errors.Is(err, core.ErrConstruction) {
		t.Fatalf("err = %v", err)
	}
}

func TestPortDragInjectsEveryMove(t *testing.T) {
	m, _ := NewMapper(10, 10, 10, 10, 1)
	rec := &recorder{}
	port, err := NewPort(m, rec)
	if err != nil {
		t.Fatalf("NewPort: %v", err)
	}

	if err := port.Move(1, 1); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if len(rec.hits) != 0 {
		t.Fatal("move without press must not inject")
	}

	_ = port.Down(2, 2)
	_ = port.Move(2, 2)
	_ = port.Move(2, 2)
	_ = port.Move(3, 2)
	port.Up()
	_ = port.Move(4, 4)

	want := []core.Point{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	if len(rec.hits) != len(want) {
		t.Fatalf("hits = %v, want %v", rec.hits, want)
	}
	for i := range want {
		if rec.hits[i] != want[i] {
			t.Fatalf("hit %d = %+v, want %+v", i, rec.hits[i], want[i])
		}
	}
	if port.Count != 4 || port.Pressed() {
		t.Fatalf("count=%d pressed=%v", port.Count, port.Pressed())
	}
}

func TestPortPropagatesTargetErrors(t *testing.T) {
	m, _ := NewMapper(4, 4, 4, 4, 1)
	rec := &recorder{err: core.ErrIndex}
	port, _ := NewPort(m, rec)
	if err := port.Down(1, 1); !errors.Is(err, core.ErrIndex) {
		t.Fatalf("err = %v", err)
	}
	if port.Count != 0 {
		t.Fatalf("failed injections must not count, got %d", port.Count)
	}
	if _, err := NewPort(m, nil); !errors.Is(err, core.ErrConstruction) {
		t.Fatalf("nil target err = %v", err)
	}
}
