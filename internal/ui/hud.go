//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"spread-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Panel is what the HUD displays and adjusts. The engine satisfies it,
// adding clock readouts to the simulation's own parameters.
type Panel interface {
	Name() string
	Size() core.Size
	core.ParameterProvider
}

// readouts are shown below the controls when present in the snapshot.
var readouts = []string{"tick", "total"}

var (
	panelBG    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBG   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	barBG      = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	barFill    = color.RGBA{R: 70, G: 110, B: 190, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

// HUD renders the settings panel to the right of the simulation view. Each
// control row has -/+ buttons and a bar that can be clicked to jump to a
// value; the mouse wheel nudges the row under the cursor.
type HUD struct {
	src    Panel
	width  int
	title  string
	offset int

	panel *ebiten.Image
	pixel *ebiten.Image
	snap  core.ParameterSnapshot

	rows   []controlRow
	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
}

type controlRow struct {
	ctrl  core.ParameterControl
	value float64
	text  string
	known bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
	bar   image.Rectangle
}

// NewHUD constructs a HUD for the provided panel source and width.
func NewHUD(src Panel, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width, title: panelTitle(src.Name())}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := src.(core.ParameterControlsProvider); ok {
		for i, ctrl := range p.ParameterControls() {
			h.rows = append(h.rows, newRow(ctrl, i, width))
		}
	}
	h.ints, _ = src.(core.IntParameterSetter)
	h.floats, _ = src.(core.FloatParameterSetter)
	return h
}

func newRow(ctrl core.ParameterControl, i, width int) controlRow {
	top := controlsTop + i*rowHeight
	by := top + labelBaseline - buttonSize + 6
	plus := image.Rect(width-panelPadding-buttonSize, by, width-panelPadding, by+buttonSize)
	minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
	barTop := top + labelBaseline + 8
	return controlRow{
		ctrl:  ctrl,
		text:  "--",
		top:   top,
		minus: minus,
		plus:  plus,
		bar:   image.Rect(panelPadding, barTop, width-panelPadding, barTop+barHeight),
	}
}

func panelTitle(name string) string {
	if name == "" {
		return "Controls"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}

// Update refreshes the cached values and handles clicks and wheel input on
// the panel, which starts at panelOffsetX in screen space.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offset = panelOffsetX
	h.snap = h.src.Parameters()
	for i := range h.rows {
		h.refresh(&h.rows[i])
	}
	h.handleInput()
}

func (h *HUD) refresh(r *controlRow) {
	r.known = false
	r.text = "--"
	p, ok := h.snap.Lookup(r.ctrl.Key)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return
	}
	r.value = v
	r.text = formatValue(r.ctrl, v)
	r.known = true
}

func (h *HUD) handleInput() {
	if len(h.rows) == 0 || h.width <= 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offset
	if px < 0 || px >= h.width {
		return
	}
	pt := image.Pt(px, my)

	if _, wy := ebiten.Wheel(); wy != 0 {
		for i := range h.rows {
			r := &h.rows[i]
			if my >= r.top && my < r.top+rowHeight {
				h.nudge(r, int(math.Copysign(1, wy)))
				return
			}
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	for i := range h.rows {
		r := &h.rows[i]
		switch {
		case pt.In(r.minus):
			h.nudge(r, -1)
		case pt.In(r.plus):
			h.nudge(r, 1)
		case pt.In(r.bar):
			frac := float64(px-r.bar.Min.X) / float64(r.bar.Dx())
			h.set(r, r.ctrl.Min+frac*(r.ctrl.Max-r.ctrl.Min))
		default:
			continue
		}
		return
	}
}

func (h *HUD) nudge(r *controlRow, dir int) {
	h.set(r, r.value+float64(dir)*stepOf(r.ctrl))
}

// set clamps and snaps target to the control's step before handing it to
// the setter. The row only changes if the setter accepts.
func (h *HUD) set(r *controlRow, target float64) {
	if !r.known {
		return
	}
	step := stepOf(r.ctrl)
	target = r.ctrl.Clamp(r.ctrl.Min + math.Round((target-r.ctrl.Min)/step)*step)
	if math.Abs(target-r.value) < 1e-9 {
		return
	}
	var ok bool
	switch r.ctrl.Type {
	case core.ParamTypeInt:
		if h.ints != nil {
			target = math.Round(target)
			ok = h.ints.SetIntParameter(r.ctrl.Key, int(target))
		}
	case core.ParamTypeFloat:
		if h.floats != nil {
			ok = h.floats.SetFloatParameter(r.ctrl.Key, target)
		}
	}
	if ok {
		r.value = target
		r.text = formatValue(r.ctrl, target)
	}
}

// Draw paints the HUD panel at offsetX, as tall as the scaled grid.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.src.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	y := controlsTop + len(h.rows)*rowHeight
	if len(h.rows) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop+labelBaseline, dimColor)
		y = controlsTop + rowHeight
	}
	for i := range h.rows {
		h.drawRow(face, &h.rows[i])
	}
	for _, key := range readouts {
		if p, ok := h.snap.Lookup(key); ok {
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, dimColor)
			y += labelBaseline
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRow(face font.Face, r *controlRow) {
	base := r.top + labelBaseline
	text.Draw(h.panel, r.ctrl.Label, face, panelPadding, base, textColor)
	valueCol := textColor
	if !r.known {
		valueCol = dimColor
	}
	w := text.BoundString(face, r.text).Dx()
	text.Draw(h.panel, r.text, face, r.minus.Min.X-buttonGap-w, base, valueCol)

	h.fillRect(r.minus, buttonBG)
	h.fillRect(r.plus, buttonBG)
	h.drawCentered(face, r.minus, "-")
	h.drawCentered(face, r.plus, "+")

	h.fillRect(r.bar, barBG)
	if r.known && r.ctrl.Max > r.ctrl.Min {
		frac := (r.value - r.ctrl.Min) / (r.ctrl.Max - r.ctrl.Min)
		fill := r.bar
		fill.Max.X = fill.Min.X + int(math.Round(frac*float64(r.bar.Dx())))
		h.fillRect(fill, barFill)
	}
}

func (h *HUD) fillRect(rect image.Rectangle, col color.RGBA) {
	if rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawCentered(face font.Face, rect image.Rectangle, label string) {
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, face, x, y, textColor)
}

func stepOf(ctrl core.ParameterControl) float64 {
	if ctrl.Step > 0 {
		return ctrl.Step
	}
	if ctrl.Type == core.ParamTypeInt {
		return 1
	}
	return 0.05
}

// formatValue prints ints plainly and floats with as many decimals as the
// step needs.
func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	precision := 1
	for s := stepOf(ctrl); s < 0.1 && precision < 6; s *= 10 {
		precision++
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

const (
	panelPadding   = 12
	rowHeight      = 44
	buttonSize     = 20
	buttonGap      = 6
	barHeight      = 6
	headerBaseline = 18
	labelBaseline  = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
