package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"spread-ca/internal/core"
	"spread-ca/internal/sims/deposition"
	"spread-ca/internal/sims/heat"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sim != "deposition" || cfg.Seed != 1337 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	dc, err := cfg.DepositionConfig()
	if err != nil {
		t.Fatalf("DepositionConfig: %v", err)
	}
	if dc.Component != deposition.DefaultComponent() {
		t.Fatalf("component = %+v, expected the reference component", dc.Component)
	}
	if dc.DepositAmount != 255 || dc.UpdateInterval != 10*time.Millisecond || dc.InPlace {
		t.Fatalf("deposition defaults = %+v", dc)
	}
	hc := cfg.HeatConfig()
	if hc.Params.SpreadFactor != 0.02 || hc.Params.IdleDecay != 0.01 || hc.Params.BurnDecay != 0.0001 {
		t.Fatalf("heat defaults = %+v", hc.Params)
	}
}

func TestUserFileOverridesOnlyPresentKeys(t *testing.T) {
	path := writeFile(t, "sim: heat\nheat:\n  width: 64\ndeposition:\n  component:\n    viscosity: 0.9\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sim != "heat" || cfg.Heat.Width != 64 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Heat.Height != 200 {
		t.Fatalf("height = %d, expected default 200", cfg.Heat.Height)
	}
	if cfg.Deposition.Component.Viscosity != 0.9 || cfg.Deposition.Component.ID != "A" {
		t.Fatalf("component = %+v", cfg.Deposition.Component)
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"viscosity", "deposition:\n  component:\n    viscosity: 1.5\n"},
		{"deposit amount", "deposition:\n  deposit_amount: 0\n"},
		{"interval", "deposition:\n  update_interval_ms: 250\n"},
		{"unknown sim", "sim: lava\n"},
		{"colour", "deposition:\n  component:\n    color: blue\n"},
		{"log level", "log_level: loud\n"},
		{"heat decay", "heat:\n  idle_decay: -1\n"},
		{"scale", "display:\n  scale: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if !errors.Is(err, core.ErrConfig) {
				t.Errorf("Load err = %v, want ErrConfig", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestNewSim(t *testing.T) {
	cfg := Default()
	cfg.Deposition.Width = 8
	cfg.Deposition.Height = 6
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if sim.Name() != "deposition" || sim.Size() != (core.Size{W: 8, H: 6}) {
		t.Fatalf("sim = %s %+v", sim.Name(), sim.Size())
	}

	cfg.Sim = "heat"
	cfg.Heat.Width = 10
	cfg.Heat.Height = 10
	sim, err = cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim heat: %v", err)
	}
	if sim.Total() != 0 {
		t.Fatalf("fresh heat total = %d", sim.Total())
	}
}

func TestWriteYAMLReloads(t *testing.T) {
	cfg := Default()
	cfg.Deposition.Component.Viscosity = 0.35
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.Deposition.Component.Viscosity != 0.35 {
		t.Fatalf("viscosity = %f", back.Deposition.Component.Viscosity)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("ParseLevel(debug) = %v, %v", level, err)
	}
}

func TestNewSimUsesSectionValues(t *testing.T) {
	cfg := Default()
	cfg.Deposition.Width = 7
	cfg.Deposition.Height = 3
	cfg.Deposition.DepositAmount = 100
	cfg.Deposition.UpdateIntervalMS = 40
	cfg.Deposition.InPlace = true
	cfg.Deposition.Component.Color = "#10a0ff"
	cfg.Deposition.Component.Viscosity = 0.35
	want, err := cfg.DepositionConfig()
	if err != nil {
		t.Fatalf("DepositionConfig: %v", err)
	}
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if got := sim.(*deposition.World).Config(); got != want {
		t.Fatalf("deposition config = %+v, want %+v", got, want)
	}

	cfg.Sim = "heat"
	cfg.Seed = 42
	cfg.Heat.Width = 12
	cfg.Heat.Height = 9
	cfg.Heat.SpreadFactor = 0.07
	cfg.Heat.BurnDecay = 0.003
	sim, err = cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim heat: %v", err)
	}
	if got := sim.(*heat.World).Config(); got != cfg.HeatConfig() {
		t.Fatalf("heat config = %+v, want %+v", got, cfg.HeatConfig())
	}
}

func TestDefaultDepositionConservesInterior(t *testing.T) {
	cfg := Default()
	cfg.Deposition.Width = 3
	cfg.Deposition.Height = 3
	cfg.Deposition.Component.Viscosity = 1
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if err := sim.Inject(1, 1); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	sim.Step()

	g := sim.Field()
	if got := g.At(1, 1); got != 229.5 {
		t.Fatalf("centre = %v, want 229.5", got)
	}
	for _, p := range []core.Point{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}} {
		if got := g.At(p.X, p.Y); got != 6.375 {
			t.Fatalf("neighbour %+v = %v, want 6.375", p, got)
		}
	}
	if sim.Total() != 255 {
		t.Fatalf("total = %d, want 255", sim.Total())
	}
}
