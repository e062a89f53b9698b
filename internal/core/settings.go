package core

import (
	"fmt"
	"time"
)

// Settings bounds.
const (
	MinDepositAmount = 1
	MaxDepositAmount = 255

	MinUpdateInterval = 10 * time.Millisecond
	MaxUpdateInterval = 100 * time.Millisecond

	MinViscosity = 0.0
	MaxViscosity = 1.0
)

// Settings is a partial update of the live tunables. Nil fields are left
// unchanged.
type Settings struct {
	DepositAmount  *int
	UpdateInterval *time.Duration
	Viscosity      *float64
}

// Empty reports whether no field is set.
func (s Settings) Empty() bool {
	return s.DepositAmount == nil && s.UpdateInterval == nil && s.Viscosity == nil
}

// Validate rejects out-of-range values.
func (s Settings) Validate() error {
	if s.DepositAmount != nil {
		if v := *s.DepositAmount; v < MinDepositAmount || v > MaxDepositAmount {
			return fmt.Errorf("%w: deposit amount %d outside [%d,%d]", ErrConfig, v, MinDepositAmount, MaxDepositAmount)
		}
	}
	if s.UpdateInterval != nil {
		if v := *s.UpdateInterval; v < MinUpdateInterval || v > MaxUpdateInterval {
			return fmt.Errorf("%w: update interval %s outside [%s,%s]", ErrConfig, v, MinUpdateInterval, MaxUpdateInterval)
		}
	}
	if s.Viscosity != nil {
		if v := *s.Viscosity; v < MinViscosity || v > MaxViscosity || v != v {
			return fmt.Errorf("%w: viscosity %v outside [%v,%v]", ErrConfig, v, MinViscosity, MaxViscosity)
		}
	}
	return nil
}

// Merge overlays the fields set in next onto s.
func (s Settings) Merge(next Settings) Settings {
	if next.DepositAmount != nil {
		s.DepositAmount = next.DepositAmount
	}
	if next.UpdateInterval != nil {
		s.UpdateInterval = next.UpdateInterval
	}
	if next.Viscosity != nil {
		s.Viscosity = next.Viscosity
	}
	return s
}

// SettingsReceiver is implemented by sims that accept runtime settings. The
// engine validates before calling ApplySettings.
type SettingsReceiver interface {
	ApplySettings(s Settings)
}

// Ptr returns a pointer to v, for building partial Settings.
func Ptr[T any](v T) *T { return &v }

// Setting keys shared by sims, the engine and the settings panel.
const (
	KeyDepositAmount  = "deposit_amount"
	KeyUpdateInterval = "update_interval_ms"
	KeyViscosity      = "viscosity"
)

// IntSetting maps an integer panel key onto a partial Settings value.
func IntSetting(key string, value int) (Settings, bool) {
	switch key {
	case KeyDepositAmount:
		return Settings{DepositAmount: Ptr(value)}, true
	case KeyUpdateInterval:
		return Settings{UpdateInterval: Ptr(time.Duration(value) * time.Millisecond)}, true
	}
	return Settings{}, false
}

// FloatSetting maps a floating point panel key onto a partial Settings value.
func FloatSetting(key string, value float64) (Settings, bool) {
	if key == KeyViscosity {
		return Settings{Viscosity: Ptr(value)}, true
	}
	return Settings{}, false
}

// Pacer is implemented by sims that want their ticks spaced by a minimum
// wall-clock interval. Sims without it advance on every frame.
type Pacer interface {
	TickInterval() time.Duration
}
