package core

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		ok   bool
	}{
		{"empty", Settings{}, true},
		{"deposit min", Settings{DepositAmount: Ptr(1)}, true},
		{"deposit max", Settings{DepositAmount: Ptr(255)}, true},
		{"deposit zero", Settings{DepositAmount: Ptr(0)}, false},
		{"deposit high", Settings{DepositAmount: Ptr(256)}, false},
		{"interval min", Settings{UpdateInterval: Ptr(10 * time.Millisecond)}, true},
		{"interval low", Settings{UpdateInterval: Ptr(5 * time.Millisecond)}, false},
		{"interval high", Settings{UpdateInterval: Ptr(101 * time.Millisecond)}, false},
		{"viscosity edges", Settings{Viscosity: Ptr(1.0)}, true},
		{"viscosity negative", Settings{Viscosity: Ptr(-0.01)}, false},
		{"viscosity nan", Settings{Viscosity: Ptr(math.NaN())}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrConfig) {
				t.Errorf("expected ErrConfig, got %v", err)
			}
		})
	}
}

func TestSettingsMerge(t *testing.T) {
	base := Settings{DepositAmount: Ptr(10), Viscosity: Ptr(0.2)}
	merged := base.Merge(Settings{Viscosity: Ptr(0.7)})
	if *merged.DepositAmount != 10 || *merged.Viscosity != 0.7 || merged.UpdateInterval != nil {
		t.Fatalf("unexpected merge result %+v", merged)
	}
	if !(Settings{}).Empty() || merged.Empty() {
		t.Fatal("Empty misreports")
	}
}
