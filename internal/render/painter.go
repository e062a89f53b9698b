//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"spread-ca/internal/core"
)

// GridPainter uploads a sim's display into an RGBA image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
}

// Upload copies the sim's display into the painter image. Call it while the
// sim is not stepping.
func (gp *GridPainter) Upload(sim core.Sim) {
	s := sim.Size()
	if s.W != gp.w || s.H != gp.h {
		return
	}
	FillSimRGBA(gp.buf, sim)
	gp.img.WritePixels(gp.buf)
}

// Draw paints the last upload onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
