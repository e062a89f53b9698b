package engine

import (
	"spread-ca/internal/core"
)

// Parameters merges the simulation's snapshot with the clock state.
func (e *Engine) Parameters() core.ParameterSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	var snap core.ParameterSnapshot
	if p, ok := e.sim.(core.ParameterProvider); ok {
		snap = p.Parameters()
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Clock",
		Params: []core.Parameter{
			core.Int64Param("tick", "Tick", int64(e.state.Tick)),
			core.IntParam(core.KeyUpdateInterval, "Update interval (ms)", int(e.gate.Interval().Milliseconds())),
			core.Int64Param("total", "Total", e.state.Total),
		},
	})
	return snap
}

// ParameterControls returns the simulation's controls.
func (e *Engine) ParameterControls() []core.ParameterControl {
	if p, ok := e.sim.(core.ParameterControlsProvider); ok {
		return p.ParameterControls()
	}
	return nil
}

// SetIntParameter routes settings keys through UpdateSettings and forwards
// anything else to the simulation.
func (e *Engine) SetIntParameter(key string, value int) bool {
	if s, ok := core.IntSetting(key, value); ok {
		return e.UpdateSettings(s) == nil
	}
	setter, ok := e.sim.(core.IntParameterSetter)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return setter.SetIntParameter(key, value)
}

// SetFloatParameter routes settings keys through UpdateSettings and forwards
// anything else to the simulation.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	if s, ok := core.FloatSetting(key, value); ok {
		return e.UpdateSettings(s) == nil
	}
	setter, ok := e.sim.(core.FloatParameterSetter)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return setter.SetFloatParameter(key, value)
}
