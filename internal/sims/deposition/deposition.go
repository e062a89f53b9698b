package deposition

import (
	"fmt"
	"math"
	"time"

	"spread-ca/internal/core"
	"spread-ca/internal/metric"
)

const (
	// SpreadRate is the fraction of value*viscosity moved out of a cell per tick.
	SpreadRate = 0.1
	// MaxValue caps the concentration of any cell.
	MaxValue = 255.0
)

// World stores the concentration grid of one component and the mask of
// cells that ever received a deposit.
type World struct {
	cfg Config

	w, h int

	curr      *core.Grid
	next      *core.Grid
	deposited *core.Mask
	display   []uint8

	nbuf []core.Point
}

// New returns a deposition simulation with the provided dimensions using
// defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a deposition world configured from cfg.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrConstruction, err)
	}
	curr, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	mask, err := core.NewMask(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &World{
		cfg:       cfg,
		w:         cfg.Width,
		h:         cfg.Height,
		curr:      curr,
		next:      curr.Clone(),
		deposited: mask,
		display:   make([]uint8, cfg.Width*cfg.Height),
		nbuf:      make([]core.Point, 0, 4),
	}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "deposition" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Component returns the deposited component descriptor.
func (w *World) Component() Component { return w.cfg.Component }

// Field exposes the concentration grid.
func (w *World) Field() *core.Grid { return w.curr }

// Mask exposes the deposited-cell mask.
func (w *World) Mask() *core.Mask { return w.deposited }

// Reset clears the grid and the deposited mask. The seed is unused because
// the world starts empty.
func (w *World) Reset(seed int64) {
	w.curr.Clear()
	w.next.Clear()
	w.deposited.Clear()
}

// Step spreads every non-empty cell into its in-bounds von Neumann
// neighbours.
func (w *World) Step() {
	if w.cfg.InPlace {
		w.stepInPlace()
	} else {
		w.stepBuffered()
	}
	w.curr, w.next = w.next, w.curr
}

// stepInPlace writes neighbour shares into the live grid while the pass is
// running. Each visited cell's own result (its value at visit time minus what
// it spread) goes to the next buffer, so shares pushed into already visited
// cells are dropped when the buffers swap and shares pushed ahead are picked
// up by the cell when it is visited.
func (w *World) stepInPlace() {
	live := w.curr.Cells()
	result := w.next.Cells()
	visc := w.cfg.Component.Viscosity
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			value := live[idx]
			if value > 0 {
				w.nbuf = w.curr.Neighbors4(x, y, w.nbuf)
				if n := len(w.nbuf); n > 0 {
					total := value * visc * SpreadRate
					per := total / float64(n)
					for _, p := range w.nbuf {
						nIdx := p.Y*w.w + p.X
						live[nIdx] = math.Min(MaxValue, live[nIdx]+per)
					}
					value -= total
				}
			}
			result[idx] = value
		}
	}
}

// stepBuffered reads only the previous tick and accumulates into the next
// buffer.
func (w *World) stepBuffered() {
	prev := w.curr.Cells()
	next := w.next.Cells()
	copy(next, prev)
	visc := w.cfg.Component.Viscosity
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			value := prev[idx]
			if value <= 0 {
				continue
			}
			w.nbuf = w.curr.Neighbors4(x, y, w.nbuf)
			n := len(w.nbuf)
			if n == 0 {
				continue
			}
			total := value * visc * SpreadRate
			per := total / float64(n)
			for _, p := range w.nbuf {
				nIdx := p.Y*w.w + p.X
				next[nIdx] = math.Min(MaxValue, next[nIdx]+per)
			}
			next[idx] -= total
		}
	}
}

// Deposit adds the configured amount at (x, y), capped at MaxValue, and marks
// the cell as deposited.
func (w *World) Deposit(x, y int) error {
	current, err := w.curr.Get(x, y)
	if err != nil {
		return err
	}
	w.curr.Put(x, y, math.Min(MaxValue, current+float64(w.cfg.DepositAmount)))
	return w.deposited.Mark(x, y)
}

// Inject deposits under the pointer.
func (w *World) Inject(x, y int) error { return w.Deposit(x, y) }

// Total is floor(sum of concentration).
func (w *World) Total() int64 { return metric.Total(w.curr.Cells()) }

// ApplySettings installs deposit amount and viscosity. Values are assumed
// validated by the caller.
func (w *World) ApplySettings(s core.Settings) {
	if s.DepositAmount != nil {
		w.cfg.DepositAmount = *s.DepositAmount
	}
	if s.Viscosity != nil {
		w.cfg.Component.Viscosity = *s.Viscosity
	}
	if s.UpdateInterval != nil {
		w.cfg.UpdateInterval = *s.UpdateInterval
	}
}

// TickInterval is the minimum spacing between ticks.
func (w *World) TickInterval() time.Duration { return w.cfg.UpdateInterval }

func init() {
	core.Register("deposition", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
