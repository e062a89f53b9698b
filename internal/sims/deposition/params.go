package deposition

import (
	"spread-ca/internal/core"
)

// Parameters reports the component, the tunables and the live totals.
func (w *World) Parameters() core.ParameterSnapshot {
	c := w.cfg.Component
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.cfg.Width),
				core.IntParam("h", "Height", w.cfg.Height),
				core.BoolParam("in_place", "In-place spread", w.cfg.InPlace),
			},
		},
		{
			Name: "Component",
			Params: []core.Parameter{
				core.StringParam("id", "Component", c.ID),
				core.FloatParam("reactivity", "Reactivity", c.Reactivity),
				core.FloatParam(core.KeyViscosity, "Viscosity", c.Viscosity),
			},
		},
		{
			Name: "Deposit",
			Params: []core.Parameter{
				core.IntParam(core.KeyDepositAmount, "Deposit amount", w.cfg.DepositAmount),
				core.IntParam(core.KeyUpdateInterval, "Update interval (ms)", int(w.cfg.UpdateInterval.Milliseconds())),
				core.IntParam("deposited_cells", "Deposited cells", w.deposited.Count()),
				core.Int64Param("total_component", "Total component", w.Total()),
			},
		},
	}}
}

// ParameterControls lists the settings exposed to the panel.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: core.KeyDepositAmount, Label: "Deposit", Type: core.ParamTypeInt, Step: 16, Min: core.MinDepositAmount, Max: core.MaxDepositAmount},
		{Key: core.KeyUpdateInterval, Label: "Interval ms", Type: core.ParamTypeInt, Step: 5, Min: 10, Max: 100},
		{Key: core.KeyViscosity, Label: "Viscosity", Type: core.ParamTypeFloat, Step: 0.01, Min: core.MinViscosity, Max: core.MaxViscosity},
	}
}

// SetIntParameter validates and applies an integer setting.
func (w *World) SetIntParameter(key string, value int) bool {
	s, ok := core.IntSetting(key, value)
	if !ok || s.Validate() != nil {
		return false
	}
	w.ApplySettings(s)
	return true
}

// SetFloatParameter validates and applies a floating point setting.
func (w *World) SetFloatParameter(key string, value float64) bool {
	s, ok := core.FloatSetting(key, value)
	if !ok || s.Validate() != nil {
		return false
	}
	w.ApplySettings(s)
	return true
}
