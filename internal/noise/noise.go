// Package noise supplies coherent scalar fields used to seed simulation grids.
package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Source samples a 2D coherent field normalised to [0,1].
type Source interface {
	Sample(x, y float64) float64
}

// Simplex wraps an OpenSimplex generator.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex returns a deterministic simplex source for the given seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Sample maps the raw [-1,1] simplex value onto [0,1].
func (s *Simplex) Sample(x, y float64) float64 {
	return clamp01((s.n.Eval2(x, y) + 1) / 2)
}

// Constant is a Source that returns the same value everywhere.
type Constant float64

// Sample returns c clamped to [0,1].
func (c Constant) Sample(x, y float64) float64 { return clamp01(float64(c)) }

// Bands blends a coarse and a fine sampling of the same source.
type Bands struct {
	Coarse     float64
	Fine       float64
	FineWeight float64
	Norm       float64
}

// DefaultBands matches the fuel field used by the heat simulation.
func DefaultBands() Bands {
	return Bands{Coarse: 0.01, Fine: 0.1, FineWeight: 0.2, Norm: 1.5}
}

// At evaluates (coarse + fine*FineWeight)/Norm at integer cell (x, y).
func (b Bands) At(src Source, x, y int) float64 {
	fx, fy := float64(x), float64(y)
	coarse := src.Sample(fx*b.Coarse, fy*b.Coarse)
	fine := src.Sample(fx*b.Fine, fy*b.Fine)
	norm := b.Norm
	if norm <= 0 {
		norm = 1
	}
	return clamp01((coarse + fine*b.FineWeight) / norm)
}

// Fill writes the blended field into dst, a row-major buffer of w*h cells.
func (b Bands) Fill(src Source, dst []float64, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if idx >= len(dst) {
				return
			}
			dst[idx] = b.At(src, x, y)
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
