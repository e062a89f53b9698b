package heat

import (
	"math"

	"spread-ca/internal/core"
)

// Parameters reports the configuration and live totals.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.cfg.Width),
				core.IntParam("h", "Height", w.cfg.Height),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Combustion",
			Params: []core.Parameter{
				core.FloatParam("spread_factor", "Spread factor", p.SpreadFactor),
				core.FloatParam("idle_decay", "Idle decay", p.IdleDecay),
				core.FloatParam("burn_decay", "Burn decay", p.BurnDecay),
			},
		},
		{
			Name: "Totals",
			Params: []core.Parameter{
				core.Int64Param("total_heat", "Total heat", w.Total()),
				core.Int64Param("total_fuel", "Total fuel", w.FuelTotal()),
			},
		},
	}}
}

// ParameterControls lists the coefficients adjustable at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "spread_factor", Label: "Spread", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1},
		{Key: "idle_decay", Label: "Idle decay", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 1},
		{Key: "burn_decay", Label: "Burn decay", Type: core.ParamTypeFloat, Step: 0.0001, Min: 0, Max: 1},
	}
}

// SetFloatParameter updates a coefficient. Out-of-range values are rejected.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if value < 0 || value > 1 || math.IsNaN(value) {
		return false
	}
	switch key {
	case "spread_factor":
		w.cfg.Params.SpreadFactor = value
	case "idle_decay":
		w.cfg.Params.IdleDecay = value
	case "burn_decay":
		w.cfg.Params.BurnDecay = value
	default:
		return false
	}
	return true
}
