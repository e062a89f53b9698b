package app

import (
	"errors"
	"flag"
	"io"
	"testing"

	"spread-ca/internal/core"
)

func parse(t *testing.T, args ...string) (*Flags, *flag.FlagSet) {
	t.Helper()
	f := NewFlags()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f, fs
}

func TestUnsetFlagsKeepFileValues(t *testing.T) {
	f, fs := parse(t)
	cfg, err := f.Load(fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sim != "deposition" || cfg.Display.Scale != 1 || cfg.Deposition.InPlace {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestSetFlagsOverride(t *testing.T) {
	f, fs := parse(t, "-sim", "heat", "-scale", "3", "-seed", "7", "-in-place")
	cfg, err := f.Load(fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sim != "heat" || cfg.Display.Scale != 3 || cfg.Seed != 7 || !cfg.Deposition.InPlace {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestInvalidOverrideRejected(t *testing.T) {
	f, fs := parse(t, "-sim", "lava")
	if _, err := f.Load(fs); !errors.Is(err, core.ErrConfig) {
		t.Fatalf("Load err = %v, want ErrConfig", err)
	}
}
