package core

import "time"

// Gate decides whether a frame should advance the simulation, based on the
// wall-clock time elapsed since the last tick that fired.
type Gate struct {
	interval time.Duration
	last     time.Time
}

// NewGate constructs a Gate that fires at most once per interval. An interval
// of zero or less yields an ungated clock that fires on every frame.
func NewGate(interval time.Duration) *Gate {
	g := &Gate{}
	g.SetInterval(interval)
	return g
}

// SetInterval changes the minimum spacing between ticks. It is safe to call
// from the main loop.
func (g *Gate) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	g.interval = interval
}

// Interval returns the configured spacing.
func (g *Gate) Interval() time.Duration { return g.interval }

// Last returns the time of the most recent fired tick.
func (g *Gate) Last() time.Time { return g.last }

// Reset anchors the gate at now so the next tick waits a full interval.
func (g *Gate) Reset(now time.Time) { g.last = now }

// Ready reports whether a tick should fire at now and, if so, records now as
// the last tick time.
func (g *Gate) Ready(now time.Time) bool {
	if g.interval <= 0 {
		g.last = now
		return true
	}
	if g.last.IsZero() {
		g.last = now
	}
	if now.Sub(g.last) >= g.interval {
		g.last = now
		return true
	}
	return false
}
