// Package config loads simulation settings from YAML, layered over embedded
// defaults.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"spread-ca/internal/core"
	"spread-ca/internal/sims/deposition"
	"spread-ca/internal/sims/heat"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of a run.
type Config struct {
	Sim      string `yaml:"sim"`
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
	FrameMS  int    `yaml:"frame_ms"`

	Heat       HeatConfig       `yaml:"heat"`
	Deposition DepositionConfig `yaml:"deposition"`
	Display    DisplayConfig    `yaml:"display"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// HeatConfig holds the combustion model parameters.
type HeatConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	CoarseFreq   float64 `yaml:"coarse_freq"`
	FineFreq     float64 `yaml:"fine_freq"`
	SpreadFactor float64 `yaml:"spread_factor"`
	IdleDecay    float64 `yaml:"idle_decay"`
	BurnDecay    float64 `yaml:"burn_decay"`
	InitialHeat  float64 `yaml:"initial_heat"`
}

// DepositionConfig holds the component deposition parameters.
type DepositionConfig struct {
	Width            int             `yaml:"width"`
	Height           int             `yaml:"height"`
	DepositAmount    int             `yaml:"deposit_amount"`
	UpdateIntervalMS int             `yaml:"update_interval_ms"`
	InPlace          bool            `yaml:"in_place"`
	Component        ComponentConfig `yaml:"component"`
}

// ComponentConfig describes the deposited substance.
type ComponentConfig struct {
	ID         string  `yaml:"id"`
	Color      string  `yaml:"color"`
	Reactivity float64 `yaml:"reactivity"`
	Viscosity  float64 `yaml:"viscosity"`
}

// DisplayConfig holds window settings for the GUI host.
type DisplayConfig struct {
	Scale int `yaml:"scale"`
}

// TelemetryConfig controls per-tick CSV output. An empty Dir disables it.
type TelemetryConfig struct {
	Dir   string `yaml:"dir"`
	Every int    `yaml:"every"`
}

// Load reads path over the embedded defaults and validates the result. An
// empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Validate checks ranges across all sections.
func (c *Config) Validate() error {
	if _, ok := core.Sims()[c.Sim]; !ok {
		return fmt.Errorf("%w: unknown sim %q (have %s)", core.ErrConfig, c.Sim, strings.Join(core.SimNames(), ", "))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.FrameMS < 1 {
		return fmt.Errorf("%w: frame_ms %d must be positive", core.ErrConfig, c.FrameMS)
	}
	if c.Display.Scale < 1 {
		return fmt.Errorf("%w: display scale %d must be at least 1", core.ErrConfig, c.Display.Scale)
	}
	if c.Telemetry.Every < 1 {
		return fmt.Errorf("%w: telemetry every %d must be at least 1", core.ErrConfig, c.Telemetry.Every)
	}
	if err := c.HeatConfig().Validate(); err != nil {
		return err
	}
	dc, err := c.DepositionConfig()
	if err != nil {
		return err
	}
	return dc.Validate()
}

// Frame returns the host frame period.
func (c *Config) Frame() time.Duration {
	return time.Duration(c.FrameMS) * time.Millisecond
}

// HeatConfig converts the heat section into the simulation's config.
func (c *Config) HeatConfig() heat.Config {
	h := heat.DefaultConfig()
	h.Width = c.Heat.Width
	h.Height = c.Heat.Height
	h.Seed = c.Seed
	h.CoarseFreq = c.Heat.CoarseFreq
	h.FineFreq = c.Heat.FineFreq
	h.Params = heat.Params{
		SpreadFactor: c.Heat.SpreadFactor,
		IdleDecay:    c.Heat.IdleDecay,
		BurnDecay:    c.Heat.BurnDecay,
		InitialHeat:  c.Heat.InitialHeat,
	}
	return h
}

// DepositionConfig converts the deposition section into the simulation's
// config.
func (c *Config) DepositionConfig() (deposition.Config, error) {
	d := deposition.DefaultConfig()
	d.Width = c.Deposition.Width
	d.Height = c.Deposition.Height
	d.DepositAmount = c.Deposition.DepositAmount
	d.UpdateInterval = time.Duration(c.Deposition.UpdateIntervalMS) * time.Millisecond
	d.InPlace = c.Deposition.InPlace
	col, err := deposition.ParseHexColor(c.Deposition.Component.Color)
	if err != nil {
		return d, err
	}
	d.Component = deposition.Component{
		ID:         c.Deposition.Component.ID,
		Color:      col,
		Reactivity: c.Deposition.Component.Reactivity,
		Viscosity:  c.Deposition.Component.Viscosity,
	}
	return d, nil
}

// SimOptions flattens the active sim's section into the key/value form the
// registered factories accept.
func (c *Config) SimOptions() map[string]string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	switch c.Sim {
	case "heat":
		h := c.Heat
		return map[string]string{
			"w":             strconv.Itoa(h.Width),
			"h":             strconv.Itoa(h.Height),
			"seed":          strconv.FormatInt(c.Seed, 10),
			"coarse_freq":   f(h.CoarseFreq),
			"fine_freq":     f(h.FineFreq),
			"spread_factor": f(h.SpreadFactor),
			"idle_decay":    f(h.IdleDecay),
			"burn_decay":    f(h.BurnDecay),
			"initial_heat":  f(h.InitialHeat),
		}
	case "deposition":
		d := c.Deposition
		return map[string]string{
			"w":                  strconv.Itoa(d.Width),
			"h":                  strconv.Itoa(d.Height),
			"id":                 d.Component.ID,
			"color":              d.Component.Color,
			"reactivity":         f(d.Component.Reactivity),
			"viscosity":          f(d.Component.Viscosity),
			"deposit_amount":     strconv.Itoa(d.DepositAmount),
			"update_interval_ms": strconv.Itoa(d.UpdateIntervalMS),
			"in_place":           strconv.FormatBool(d.InPlace),
		}
	}
	return nil
}

// NewSim validates the config, builds the configured simulation through the
// sim registry and resets it with the run seed.
func (c *Config) NewSim() (core.Sim, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sim %q", core.ErrConfig, c.Sim)
	}
	sim, err := factory(c.SimOptions())
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", c.Sim, err)
	}
	sim.Reset(c.Seed)
	return sim, nil
}

// ParseLevel maps debug/info/warn/error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", core.ErrConfig, s)
	}
	return level, nil
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
