package app

import "spread-ca/internal/inject"

// pointerEvent is one frame of left-button state at canvas position X, Y.
type pointerEvent struct {
	X, Y         int
	JustPressed  bool
	Pressed      bool
	JustReleased bool
}

// routePointer feeds ev into port. Presses and drags only inject while the
// pointer is over the gridW x gridH canvas, so a drag that wanders onto the
// panel does not keep painting the edge column.
func routePointer(port *inject.Port, ev pointerEvent, gridW, gridH int) (onGrid bool, err error) {
	onGrid = ev.X >= 0 && ev.Y >= 0 && ev.X < gridW && ev.Y < gridH
	px, py := float64(ev.X), float64(ev.Y)
	switch {
	case ev.JustReleased:
		port.Up()
	case ev.JustPressed:
		if onGrid {
			err = port.Down(px, py)
		}
	case ev.Pressed && onGrid:
		err = port.Move(px, py)
	}
	return onGrid, err
}
