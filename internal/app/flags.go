package app

import (
	"flag"

	"spread-ca/internal/config"
)

// Flags represents the command-line parameters for the application. Values
// given on the command line override the loaded configuration file.
type Flags struct {
	ConfigPath string
	Sim        string
	Scale      int
	Seed       int64
	LogLevel   string
	InPlace    bool
	HUDWidth   int

	set map[string]bool
}

// NewFlags returns Flags populated with defaults.
func NewFlags() *Flags {
	return &Flags{Scale: 1, Seed: 1337, LogLevel: "info", HUDWidth: 240}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "YAML configuration file")
	fs.StringVar(&f.Sim, "sim", f.Sim, "simulation to run (heat, deposition)")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixel scale multiplier")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for simulation reset")
	fs.StringVar(&f.LogLevel, "log-level", f.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&f.InPlace, "in-place", f.InPlace, "spread deposition mid-pass like the original app instead of double-buffered")
	fs.IntVar(&f.HUDWidth, "hud", f.HUDWidth, "width of the parameter panel in pixels, 0 to hide")
}

// Load reads the configuration file and applies every flag that was set
// explicitly on fs.
func (f *Flags) Load(fs *flag.FlagSet) (*config.Config, error) {
	f.set = map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if f.set["sim"] {
		cfg.Sim = f.Sim
	}
	if f.set["scale"] {
		cfg.Display.Scale = f.Scale
	}
	if f.set["seed"] {
		cfg.Seed = f.Seed
	}
	if f.set["log-level"] {
		cfg.LogLevel = f.LogLevel
	}
	if f.set["in-place"] {
		cfg.Deposition.InPlace = f.InPlace
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
