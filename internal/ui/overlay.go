//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spread-ca/internal/core"
	"spread-ca/internal/render"
)

var (
	maskTint   = color.RGBA{R: 255, G: 120, B: 40, A: 90}
	cursorTint = color.RGBA{R: 230, G: 230, B: 240, A: 160}
)

// Overlay draws optional debugging visuals on top of the base simulation:
// the deposited-cell mask (toggled with D) and the grid cell under the
// pointer.
type Overlay struct {
	scale    int
	showMask bool

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image

	cursorX, cursorY int
	hasCursor        bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showMask = !o.showMask
	}
}

// ShowMask reports whether the mask layer is visible.
func (o *Overlay) ShowMask() bool { return o.showMask }

// SetCursor records the grid cell under the pointer. ok=false hides it.
func (o *Overlay) SetCursor(x, y int, ok bool) {
	o.cursorX, o.cursorY, o.hasCursor = x, y, ok
}

// UploadMask copies m into the overlay image. It is skipped while the layer
// is hidden.
func (o *Overlay) UploadMask(m *core.Mask) {
	if !o.showMask || m == nil {
		return
	}
	total := m.W * m.H
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != m.W || o.maskImg.Bounds().Dy() != m.H {
		o.maskImg = ebiten.NewImage(m.W, m.H)
		o.maskBuf = make([]byte, 4*total)
	}
	render.FillMaskRGBA(o.maskBuf, m, maskTint)
	o.maskImg.WritePixels(o.maskBuf)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showMask && o.maskImg != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(o.scale), float64(o.scale))
		screen.DrawImage(o.maskImg, op)
	}
	if o.hasCursor && o.scale >= 3 {
		o.drawCell(screen, o.cursorX, o.cursorY, cursorTint)
	}
}

func (o *Overlay) drawCell(screen *ebiten.Image, x, y int, col color.RGBA) {
	s := float64(o.scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(x)*s, float64(y)*s)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
