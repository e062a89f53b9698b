//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"spread-ca/internal/app"
	"spread-ca/internal/config"
	"spread-ca/internal/engine"
	"spread-ca/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal(err)
	}

	rec, err := telemetry.Create(cfg.Telemetry.Dir, cfg.Sim, cfg.Telemetry.Every)
	if err != nil {
		log.Fatal(err)
	}
	defer rec.Close()

	opts := []engine.Option{engine.WithLogger(logger)}
	if rec != nil {
		opts = append(opts, engine.WithObserver(rec))
	}
	eng, err := engine.New(sim, opts...)
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(eng, cfg.Display.Scale, cfg.Seed, flags.HUDWidth)
	if err != nil {
		log.Fatal(err)
	}
	size := sim.Size()

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(max(1, 1000/cfg.FrameMS))
	ebiten.SetWindowSize(size.W*cfg.Display.Scale+flags.HUDWidth, size.H*cfg.Display.Scale)

	logger.Info("window open", "sim", cfg.Sim, "scale", cfg.Display.Scale)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
