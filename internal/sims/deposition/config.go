package deposition

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"spread-ca/internal/core"
)

// Component describes the deposited substance. Only Viscosity changes at
// runtime.
type Component struct {
	ID    string
	Color color.RGBA
	// Reactivity is carried for future reaction rules and is not read by
	// the spread step.
	Reactivity float64
	// Viscosity in [0,1] scales the fraction of a cell spread per tick.
	Viscosity float64
}

// DefaultComponent returns the blue reference component.
func DefaultComponent() Component {
	return Component{
		ID:         "A",
		Color:      color.RGBA{B: 255, A: 255},
		Reactivity: 1.0,
		Viscosity:  0.2,
	}
}

// Config controls the deposition simulation.
type Config struct {
	Width  int
	Height int

	Component Component

	// DepositAmount is added to a cell per injection, in [1,255].
	DepositAmount int
	// UpdateInterval is the minimum wall-clock spacing between ticks.
	UpdateInterval time.Duration
	// InPlace spreads into the live grid mid-pass so later cells observe
	// partially updated neighbours, and shares pushed into already visited
	// cells are lost. When false (the default) every read comes from a
	// frozen snapshot of the previous tick.
	InPlace bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          500,
		Height:         500,
		Component:      DefaultComponent(),
		DepositAmount:  core.MaxDepositAmount,
		UpdateInterval: core.MinUpdateInterval,
		InPlace:        false,
	}
}

// Settings returns the runtime tunables of c as a full Settings value.
func (c Config) Settings() core.Settings {
	return core.Settings{
		DepositAmount:  core.Ptr(c.DepositAmount),
		UpdateInterval: core.Ptr(c.UpdateInterval),
		Viscosity:      core.Ptr(c.Component.Viscosity),
	}
}

// Validate reports dimensions or tunables outside their accepted ranges.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: deposition grid %dx%d", core.ErrConfig, c.Width, c.Height)
	}
	return c.Settings().Validate()
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
	if v, ok := cfg["id"]; ok && v != "" {
		c.Component.ID = v
	}
	if v, ok := cfg["color"]; ok {
		if parsed, err := ParseHexColor(v); err == nil {
			c.Component.Color = parsed
		}
	}
	if v, ok := cfg["reactivity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Component.Reactivity = parsed
		}
	}
	if v, ok := cfg["viscosity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= core.MinViscosity && parsed <= core.MaxViscosity {
			c.Component.Viscosity = parsed
		}
	}
	if v, ok := cfg["deposit_amount"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= core.MinDepositAmount && parsed <= core.MaxDepositAmount {
			c.DepositAmount = parsed
		}
	}
	if v, ok := cfg["update_interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			d := time.Duration(parsed) * time.Millisecond
			if d >= core.MinUpdateInterval && d <= core.MaxUpdateInterval {
				c.UpdateInterval = d
			}
		}
	}
	if v, ok := cfg["in_place"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.InPlace = parsed
		}
	}
	return c
}

// ParseHexColor parses "#RRGGBB" (the leading '#' is optional) into an opaque
// colour.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: colour %q", core.ErrConfig, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: colour %q: %w", core.ErrConfig, s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
