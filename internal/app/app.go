//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"time"

	"spread-ca/internal/core"
	"spread-ca/internal/engine"
	"spread-ca/internal/inject"
	"spread-ca/internal/render"
	"spread-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an engine-driven simulation to the ebiten.Game interface.
type Game struct {
	eng     *engine.Engine
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	port    *inject.Port
	log     *slog.Logger

	size     core.Size
	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided engine. Pointer presses on the grid
// inject into the simulation.
func New(eng *engine.Engine, scale int, seed int64, hudWidth int) (*Game, error) {
	if scale < 1 {
		scale = 1
	}
	size := eng.Size()
	m, err := inject.NewMapper(size.W, size.H, float64(size.W*scale), float64(size.H*scale), 1)
	if err != nil {
		return nil, err
	}
	port, err := inject.NewPort(m, eng)
	if err != nil {
		return nil, err
	}
	return &Game{
		eng:      eng,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(scale),
		hud:      ui.NewHUD(eng, hudWidth),
		port:     port,
		log:      slog.Default(),
		size:     size,
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}, nil
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.eng.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.gridWidth())
	g.handlePointer()

	now := time.Now()
	switch {
	case g.tickOnce:
		g.eng.Advance(now)
		g.tickOnce = false
	case !g.paused:
		g.eng.Frame(now)
	}
	return nil
}

func (g *Game) gridWidth() int  { return g.size.W * g.scale }
func (g *Game) gridHeight() int { return g.size.H * g.scale }

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	onGrid, err := routePointer(g.port, pointerEvent{
		X:            mx,
		Y:            my,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}, g.gridWidth(), g.gridHeight())
	if onGrid {
		x, y := g.port.Mapper().Map(float64(mx), float64(my))
		g.overlay.SetCursor(x, y, true)
	} else {
		g.overlay.SetCursor(0, 0, false)
	}
	if err != nil {
		g.log.Warn("injection failed", "err", err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.eng.View(func(sim core.Sim) {
		g.painter.Upload(sim)
		if mp, ok := sim.(core.MaskProvider); ok {
			g.overlay.UploadMask(mp.Mask())
		}
	})
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + g.hudWidth, g.gridHeight()
}

// Title returns the window title for the running simulation.
func (g *Game) Title() string {
	return fmt.Sprintf("spread-ca: %s", g.eng.Name())
}
