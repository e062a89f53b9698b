package heat

import (
	"fmt"
	"math"

	"spread-ca/internal/core"
	"spread-ca/internal/metric"
	"spread-ca/internal/noise"
)

// World holds the coupled heat and fuel layers of the combustion model.
type World struct {
	cfg Config

	w, h int

	heatCurr *core.Grid
	heatNext *core.Grid
	fuelCurr *core.Grid
	fuelNext *core.Grid
	display  []uint8

	src      noise.Source
	newNoise func(seed int64) noise.Source

	nbuf []core.Point
}

// New returns a heat simulation with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world whose fuel is seeded from simplex noise.
func NewWithConfig(cfg Config) (*World, error) {
	world, err := build(cfg)
	if err != nil {
		return nil, err
	}
	world.newNoise = func(seed int64) noise.Source { return noise.NewSimplex(seed) }
	world.src = world.newNoise(cfg.Seed)
	return world, nil
}

// NewWithSource returns a world whose fuel is seeded from src on every Reset.
func NewWithSource(cfg Config, src noise.Source) (*World, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: heat world requires a noise source", core.ErrConstruction)
	}
	world, err := build(cfg)
	if err != nil {
		return nil, err
	}
	world.src = src
	return world, nil
}

func build(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrConstruction, err)
	}
	grids := make([]*core.Grid, 4)
	for i := range grids {
		g, err := core.NewGrid(cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		grids[i] = g
	}
	return &World{
		cfg:      cfg,
		w:        cfg.Width,
		h:        cfg.Height,
		heatCurr: grids[0],
		heatNext: grids[1],
		fuelCurr: grids[2],
		fuelNext: grids[3],
		display:  make([]uint8, cfg.Width*cfg.Height),
		nbuf:     make([]core.Point, 0, 4),
	}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "heat" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Heat exposes the current heat layer.
func (w *World) Heat() *core.Grid { return w.heatCurr }

// Fuel exposes the current fuel layer.
func (w *World) Fuel() *core.Grid { return w.fuelCurr }

// Field exposes the heat layer as the primary grid.
func (w *World) Field() *core.Grid { return w.heatCurr }

// Reset clears heat, reseeds fuel from the noise field and lights the
// centre cell.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if w.newNoise != nil {
		w.src = w.newNoise(effective)
	}
	w.heatCurr.Clear()
	w.heatNext.Clear()

	bands := noise.DefaultBands()
	bands.Coarse = w.cfg.CoarseFreq
	bands.Fine = w.cfg.FineFreq
	bands.Fill(w.src, w.fuelCurr.Cells(), w.w, w.h)
	copy(w.fuelNext.Cells(), w.fuelCurr.Cells())

	if w.cfg.Params.InitialHeat > 0 {
		w.heatCurr.Put(w.w/2, w.h/2, clamp01(w.cfg.Params.InitialHeat))
	}
}

// Step advances the combustion by one tick. All reads use the previous
// tick's layers; writes land in the next pair, which is swapped in at the end.
func (w *World) Step() {
	heatPrev, fuelPrev := w.heatCurr.Cells(), w.fuelCurr.Cells()
	heatNext, fuelNext := w.heatNext.Cells(), w.fuelNext.Cells()
	copy(heatNext, heatPrev)
	copy(fuelNext, fuelPrev)

	spread := w.cfg.Params.SpreadFactor
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			heat := heatPrev[idx]
			if heat <= 0 {
				continue
			}
			hasFuel := false
			w.nbuf = w.heatCurr.Neighbors4(x, y, w.nbuf)
			for _, n := range w.nbuf {
				nIdx := n.Y*w.w + n.X
				fuel := fuelPrev[nIdx]
				if fuel <= 0 {
					continue
				}
				hasFuel = true
				increase := heat * spread * fuel
				heatNext[nIdx] = math.Min(1, heatNext[nIdx]+increase)
				fuelNext[nIdx] = math.Max(0, fuelNext[nIdx]-increase)
			}
			decay := w.cfg.Params.IdleDecay
			if hasFuel {
				decay = w.cfg.Params.BurnDecay
			}
			heatNext[idx] = math.Max(0, heatNext[idx]-decay)
		}
	}

	w.heatCurr, w.heatNext = w.heatNext, w.heatCurr
	w.fuelCurr, w.fuelNext = w.fuelNext, w.fuelCurr
}

// Ignite sets the heat at (x, y) to the maximum.
func (w *World) Ignite(x, y int) error {
	return w.heatCurr.Set(x, y, 1)
}

// Inject ignites the cell under the pointer.
func (w *World) Inject(x, y int) error { return w.Ignite(x, y) }

// Total is floor(sum of heat).
func (w *World) Total() int64 { return metric.Total(w.heatCurr.Cells()) }

// FuelTotal is floor(sum of fuel).
func (w *World) FuelTotal() int64 { return metric.Total(w.fuelCurr.Cells()) }

// Cells returns heat quantised to [0,255].
func (w *World) Cells() []uint8 {
	for i, v := range w.heatCurr.Cells() {
		w.display[i] = uint8(clamp01(v)*255 + 0.5)
	}
	return w.display
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

func init() {
	core.Register("heat", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
