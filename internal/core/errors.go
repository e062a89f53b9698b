package core

import (
	"errors"
	"fmt"
)

var (
	// ErrIndex reports grid access outside [0,W)×[0,H).
	ErrIndex = errors.New("grid index out of range")
	// ErrConfig reports a settings value outside its accepted range.
	ErrConfig = errors.New("invalid configuration")
	// ErrConstruction reports a missing collaborator or unusable dimensions
	// at setup time.
	ErrConstruction = errors.New("invalid construction")
)

// IndexError carries the offending coordinate and the grid bounds.
type IndexError struct {
	X, Y int
	W, H int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("grid index (%d,%d) out of range %dx%d", e.X, e.Y, e.W, e.H)
}

// Unwrap lets errors.Is match ErrIndex.
func (e *IndexError) Unwrap() error { return ErrIndex }
