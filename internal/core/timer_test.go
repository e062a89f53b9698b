package core

import (
	"testing"
	"time"
)

func TestGateUngatedFiresEveryFrame(t *testing.T) {
	g := NewGate(0)
	now := time.Unix(100, 0)
	for i := 0; i < 5; i++ {
		if !g.Ready(now) {
			t.Fatalf("frame %d: ungated gate should always fire", i)
		}
	}
}

func TestGateWaitsForInterval(t *testing.T) {
	g := NewGate(10 * time.Millisecond)
	start := time.Unix(100, 0)
	g.Reset(start)

	if g.Ready(start.Add(4 * time.Millisecond)) {
		t.Fatal("gate fired before the interval elapsed")
	}
	if !g.Ready(start.Add(10 * time.Millisecond)) {
		t.Fatal("gate should fire once the interval elapsed")
	}
	if g.Ready(start.Add(15 * time.Millisecond)) {
		t.Fatal("gate should measure from the last fired tick")
	}
	if !g.Ready(start.Add(25 * time.Millisecond)) {
		t.Fatal("gate should fire again after another interval")
	}
	if got := g.Last(); !got.Equal(start.Add(25 * time.Millisecond)) {
		t.Fatalf("last tick = %v", got)
	}
}

func TestGateFirstFrameAnchors(t *testing.T) {
	g := NewGate(10 * time.Millisecond)
	now := time.Unix(5, 0)
	if g.Ready(now) {
		t.Fatal("first frame of a gated clock only anchors the timer")
	}
	if !g.Ready(now.Add(10 * time.Millisecond)) {
		t.Fatal("expected tick after one interval")
	}
}
