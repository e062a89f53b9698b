//go:build !ebiten

package ui

import "spread-ca/internal/core"

// Panel mirrors the GUI build's panel source.
type Panel interface {
	Name() string
	Size() core.Size
	core.ParameterProvider
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Panel, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
