package heat

import (
	"fmt"
	"strconv"

	"spread-ca/internal/core"
)

// Params holds the transfer and decay coefficients of the heat rule.
type Params struct {
	// SpreadFactor scales heat*fuel into the per-neighbour heat increase.
	SpreadFactor float64
	// IdleDecay is subtracted from a burning cell with no fuelled neighbour.
	IdleDecay float64
	// BurnDecay is subtracted from a burning cell that fed at least one neighbour.
	BurnDecay float64
	// InitialHeat is placed at the centre cell on Reset. Zero leaves the
	// grid cold.
	InitialHeat float64
}

// Config controls the heat simulation dimensions and fuel seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	CoarseFreq float64
	FineFreq   float64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      200,
		Height:     200,
		Seed:       1337,
		CoarseFreq: 0.01,
		FineFreq:   0.1,
		Params: Params{
			SpreadFactor: 0.02,
			IdleDecay:    0.01,
			BurnDecay:    0.0001,
			InitialHeat:  0.1,
		},
	}
}

// Validate reports coefficients outside their accepted ranges.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: heat grid %dx%d", core.ErrConfig, c.Width, c.Height)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"spread_factor", c.Params.SpreadFactor},
		{"idle_decay", c.Params.IdleDecay},
		{"burn_decay", c.Params.BurnDecay},
		{"initial_heat", c.Params.InitialHeat},
	} {
		if f.v < 0 || f.v > 1 {
			return fmt.Errorf("%w: %s %v outside [0,1]", core.ErrConfig, f.name, f.v)
		}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["coarse_freq"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.CoarseFreq = parsed
		}
	}
	if v, ok := cfg["fine_freq"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.FineFreq = parsed
		}
	}
	if v, ok := cfg["spread_factor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SpreadFactor = parsed
		}
	}
	if v, ok := cfg["idle_decay"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.IdleDecay = parsed
		}
	}
	if v, ok := cfg["burn_decay"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.BurnDecay = parsed
		}
	}
	if v, ok := cfg["initial_heat"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.InitialHeat = parsed
		}
	}
	return c
}
