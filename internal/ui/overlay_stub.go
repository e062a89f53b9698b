//go:build !ebiten

package ui

import "spread-ca/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// ShowMask is always false in headless builds.
func (o *Overlay) ShowMask() bool { return false }

// SetCursor is a no-op in headless builds.
func (o *Overlay) SetCursor(int, int, bool) {}

// UploadMask is a no-op in headless builds.
func (o *Overlay) UploadMask(*core.Mask) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
