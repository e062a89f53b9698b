// Command spread-run drives a simulation without a window: it injects at the
// given points, advances the engine and reports the aggregate metric.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"spread-ca/internal/config"
	"spread-ca/internal/core"
	"spread-ca/internal/engine"
	"spread-ca/internal/metric"
	"spread-ca/internal/telemetry"
)

type pointList []core.Point

func (l *pointList) String() string {
	parts := make([]string, len(*l))
	for i, p := range *l {
		parts[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func (l *pointList) Set(value string) error {
	p, err := parsePoint(value)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

func parsePoint(s string) (core.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return core.Point{}, fmt.Errorf("point %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return core.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return core.Point{X: x, Y: y}, nil
}

type options struct {
	configPath string
	sim        string
	seed       int64
	width      int
	height     int
	ticks      int
	realtime   time.Duration
	out        string
	every      int
	logLevel   string
	inPlace    bool
	points     pointList

	set map[string]bool
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&o.sim, "sim", "", "simulation to run (heat, deposition)")
	fs.Int64Var(&o.seed, "seed", 0, "seed for the simulation reset")
	fs.IntVar(&o.width, "width", 0, "grid width override")
	fs.IntVar(&o.height, "height", 0, "grid height override")
	fs.IntVar(&o.ticks, "ticks", 100, "ticks to advance when not running in real time")
	fs.DurationVar(&o.realtime, "realtime", 0, "run the gated clock for this long instead of forcing ticks")
	fs.StringVar(&o.out, "out", "", "directory for ticks.csv and config.yaml")
	fs.IntVar(&o.every, "every", 0, "record every Nth tick")
	fs.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.BoolVar(&o.inPlace, "in-place", false, "spread deposition mid-pass instead of double-buffered")
	fs.Var(&o.points, "at", "injection point x,y (repeatable)")
}

// resolve loads the config file and applies explicitly set flags.
func (o *options) resolve() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.set["sim"] {
		cfg.Sim = o.sim
	}
	if o.set["seed"] {
		cfg.Seed = o.seed
	}
	if o.set["log-level"] {
		cfg.LogLevel = o.logLevel
	}
	if o.set["out"] {
		cfg.Telemetry.Dir = o.out
	}
	if o.set["every"] {
		cfg.Telemetry.Every = o.every
	}
	if o.set["in-place"] {
		cfg.Deposition.InPlace = o.inPlace
	}
	if o.set["width"] {
		cfg.Heat.Width = o.width
		cfg.Deposition.Width = o.width
	}
	if o.set["height"] {
		cfg.Heat.Height = o.height
		cfg.Deposition.Height = o.height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	opts := &options{}
	opts.bind(flag.CommandLine)
	flag.Parse()
	opts.set = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts *options, stdout io.Writer) error {
	cfg, err := opts.resolve()
	if err != nil {
		return err
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	sim, err := cfg.NewSim()
	if err != nil {
		return err
	}

	rec, err := telemetry.Create(cfg.Telemetry.Dir, cfg.Sim, cfg.Telemetry.Every)
	if err != nil {
		return err
	}
	if err := record(ctx, cfg, opts, sim, rec, logger, stdout); err != nil {
		rec.Close()
		return err
	}
	return finish(rec, cfg)
}

// finish closes the tick log and saves the effective config next to it.
func finish(rec io.Closer, cfg *config.Config) error {
	if err := rec.Close(); err != nil {
		return fmt.Errorf("closing telemetry: %w", err)
	}
	if cfg.Telemetry.Dir == "" {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(cfg.Telemetry.Dir, "config.yaml"))
}

// record drives the engine over sim and reports the final summary.
func record(ctx context.Context, cfg *config.Config, opts *options, sim core.Sim, rec *telemetry.Recorder, logger *slog.Logger, stdout io.Writer) error {
	engOpts := []engine.Option{engine.WithLogger(logger)}
	if rec != nil {
		rec.SetLogger(logger)
		engOpts = append(engOpts, engine.WithObserver(rec))
	}
	eng, err := engine.New(sim, engOpts...)
	if err != nil {
		return err
	}

	for _, p := range opts.points {
		if err := eng.Inject(p.X, p.Y); err != nil {
			return fmt.Errorf("inject at (%d,%d): %w", p.X, p.Y, err)
		}
	}
	logger.Info("run started", "sim", cfg.Sim, "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", sim.Size().W, sim.Size().H), "injections", len(opts.points))

	if opts.realtime > 0 {
		rctx, cancel := context.WithTimeout(ctx, opts.realtime)
		defer cancel()
		if err := eng.Run(rctx, cfg.Frame()); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
	} else {
		now := time.Now()
		step := eng.Interval()
		for i := 0; i < opts.ticks; i++ {
			if ctx.Err() != nil {
				break
			}
			eng.Advance(now.Add(time.Duration(i) * step))
		}
	}

	snap := eng.Snapshot()
	summary := metric.Summarize(snap.Cells)
	logger.Info("run complete", "tick", snap.Tick, "summary", summary)
	fmt.Fprintf(stdout, "sim=%s ticks=%d total=%d max=%.4f nonzero=%d\n",
		cfg.Sim, snap.Tick, summary.Total, summary.Max, summary.Nonzero)
	return nil
}
