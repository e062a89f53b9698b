// Package engine drives a diffusion simulation: it gates ticks on wall-clock
// time, serialises injection with stepping, applies settings between ticks
// and keeps the aggregate metric current.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"spread-ca/internal/core"
	"spread-ca/internal/metric"
)

// State is the clock-side view of a running simulation.
type State struct {
	Tick       uint64
	LastUpdate time.Time
	Interval   time.Duration
	Total      int64
}

// Snapshot is a copy of the primary grid taken between ticks.
type Snapshot struct {
	State
	W, H  int
	Cells []float64
}

// Observer is notified after every fired tick.
type Observer interface {
	Observe(state State, summary metric.Summary) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes engine logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithInterval overrides the sim's own tick spacing. Zero advances on every
// frame.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) { e.gate.SetInterval(d) }
}

// WithObserver attaches a per-tick observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// Engine owns a simulation and its clock. All methods are safe for concurrent
// use; one mutex covers the grids, the clock and pending settings.
type Engine struct {
	mu sync.Mutex

	sim      core.Sim
	gate     *core.Gate
	state    State
	pending  core.Settings
	observer Observer
	log      *slog.Logger
}

// New wraps sim. Sims implementing core.Pacer are gated by their tick
// interval; others advance on every frame.
func New(sim core.Sim, opts ...Option) (*Engine, error) {
	if sim == nil {
		return nil, fmt.Errorf("%w: engine requires a simulation", core.ErrConstruction)
	}
	var interval time.Duration
	if p, ok := sim.(core.Pacer); ok {
		interval = p.TickInterval()
	}
	e := &Engine{
		sim:  sim,
		gate: core.NewGate(interval),
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state.Total = sim.Total()
	e.state.Interval = e.gate.Interval()
	e.gate.Reset(time.Now())
	e.log.Debug("engine ready", "sim", sim.Name(), "interval", e.gate.Interval())
	return e, nil
}

// Name returns the wrapped simulation's name.
func (e *Engine) Name() string { return e.sim.Name() }

// Size returns the wrapped simulation's grid size.
func (e *Engine) Size() core.Size { return e.sim.Size() }

// Interval returns the current tick spacing.
func (e *Engine) Interval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gate.Interval()
}

// State returns the clock state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Reset reseeds the simulation and restarts the tick counter.
func (e *Engine) Reset(seed int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sim.Reset(seed)
	e.state = State{Interval: e.gate.Interval(), Total: e.sim.Total()}
	e.gate.Reset(time.Now())
	e.log.Info("simulation reset", "sim", e.sim.Name(), "seed", seed)
}

// Frame runs one host frame at now: pending settings are applied, then the
// simulation advances if the gate allows it. It reports whether a tick fired.
func (e *Engine) Frame(now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyPendingLocked()
	if !e.gate.Ready(now) {
		return false
	}
	e.tickLocked(now)
	return true
}

// Advance forces a single tick regardless of the gate.
func (e *Engine) Advance(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyPendingLocked()
	e.gate.Reset(now)
	e.tickLocked(now)
}

func (e *Engine) tickLocked(now time.Time) {
	e.sim.Step()
	e.state.Tick++
	e.state.LastUpdate = now
	e.state.Interval = e.gate.Interval()
	e.state.Total = e.sim.Total()
	if e.observer == nil {
		return
	}
	summary := metric.Summarize(e.sim.Field().Cells())
	if err := e.observer.Observe(e.state, summary); err != nil {
		e.log.Warn("tick observer failed", "tick", e.state.Tick, "err", err)
	}
}

// Inject applies a stimulus at grid coordinate (x, y) immediately. The next
// fired tick reads it.
func (e *Engine) Inject(x, y int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sim.Inject(x, y)
}

// UpdateSettings validates a partial settings update and queues it for the
// start of the next frame. Invalid values are rejected as a whole.
func (e *Engine) UpdateSettings(s core.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.DepositAmount != nil || s.Viscosity != nil {
		if _, ok := e.sim.(core.SettingsReceiver); !ok {
			return fmt.Errorf("%w: %s has no deposit or viscosity settings", core.ErrConfig, e.sim.Name())
		}
	}
	if s.UpdateInterval != nil {
		if _, ok := e.sim.(core.Pacer); !ok {
			return fmt.Errorf("%w: %s advances on every frame", core.ErrConfig, e.sim.Name())
		}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = e.pending.Merge(s)
	return nil
}

func (e *Engine) applyPendingLocked() {
	if e.pending.Empty() {
		return
	}
	s := e.pending
	e.pending = core.Settings{}
	if s.UpdateInterval != nil {
		e.gate.SetInterval(*s.UpdateInterval)
	}
	if r, ok := e.sim.(core.SettingsReceiver); ok {
		r.ApplySettings(s)
	}
	e.log.Debug("settings applied", "sim", e.sim.Name(), "tick", e.state.Tick)
}

// Snapshot copies the primary grid and clock state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	g := e.sim.Field()
	cells := make([]float64, len(g.Cells()))
	copy(cells, g.Cells())
	return Snapshot{State: e.state, W: g.W, H: g.H, Cells: cells}
}

// View runs fn with exclusive access to the simulation, for renderers that
// read cell buffers directly.
func (e *Engine) View(fn func(sim core.Sim)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.sim)
}

// Run calls Frame on every tick of a frame-rate ticker until ctx is done.
func (e *Engine) Run(ctx context.Context, frame time.Duration) error {
	if frame <= 0 {
		frame = time.Second / 60
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			e.log.Info("engine stopped", "sim", e.sim.Name(), "tick", e.State().Tick)
			return ctx.Err()
		case now := <-ticker.C:
			e.Frame(now)
		}
	}
}
