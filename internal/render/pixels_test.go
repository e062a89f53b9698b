package render

import (
	"image/color"
	"testing"

	"spread-ca/internal/core"
	"spread-ca/internal/sims/deposition"
	"spread-ca/internal/sims/heat"
)

func TestFillPaletteRGBAClampsIndex(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}}
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, []uint8{0, 200}, palette)
	if buf[0] != 1 || buf[4] != 2 || buf[7] != 255 {
		t.Fatalf("pixels = %v", buf)
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{3}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, expected transparent black", i, b)
		}
	}
}

func TestFillSimRGBAUsesComponentPalette(t *testing.T) {
	w, err := deposition.New(2, 1)
	if err != nil {
		t.Fatalf("deposition.New: %v", err)
	}
	if err := w.Deposit(1, 0); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	buf := make([]byte, 8)
	FillSimRGBA(buf, w)
	if buf[0] != 0 || buf[2] != 0 || buf[3] != 255 {
		t.Fatalf("empty cell pixel = %v", buf[:4])
	}
	// Full concentration shows the component's blue.
	if buf[4] != 0 || buf[5] != 0 || buf[6] != 255 {
		t.Fatalf("deposited cell pixel = %v", buf[4:])
	}
}

func TestFillSimRGBAUsesSimConversion(t *testing.T) {
	w, err := heat.New(3, 3)
	if err != nil {
		t.Fatalf("heat.New: %v", err)
	}
	if err := w.Ignite(0, 0); err != nil {
		t.Fatalf("Ignite: %v", err)
	}
	buf := make([]byte, 4*9)
	FillSimRGBA(buf, w)
	if buf[0] != 255 || buf[3] != 255 {
		t.Fatalf("ignited pixel = %v", buf[:4])
	}
}

func TestFillMaskRGBA(t *testing.T) {
	m, err := core.NewMask(2, 1)
	if err != nil {
		t.Fatalf("NewMask: %v", err)
	}
	_ = m.Mark(1, 0)
	tint := color.RGBA{R: 10, G: 20, B: 30, A: 40}
	buf := make([]byte, 8)
	FillMaskRGBA(buf, m, tint)
	if buf[3] != 0 {
		t.Fatalf("unmarked alpha = %d", buf[3])
	}
	if buf[4] != 10 || buf[5] != 20 || buf[6] != 30 || buf[7] != 40 {
		t.Fatalf("marked pixel = %v", buf[4:])
	}
}
