package telemetry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestCollectorWindows(t *testing.T) {
	c := NewCollector(10)

	if c.ShouldFlush(5) {
		t.Error("window of 10 should not flush at step 5")
	}
	if !c.ShouldFlush(10) {
		t.Error("window of 10 should flush at step 10")
	}

	for i := 0; i < 10; i++ {
		c.AddTime(16)
	}
	ws := c.Flush(Sample{Step: 10})
	if ws.WindowStartStep != 0 || ws.WindowEndStep != 10 {
		t.Errorf("window = [%d,%d], want [0,10]", ws.WindowStartStep, ws.WindowEndStep)
	}
	if math.Abs(ws.SimTimeSec-0.16) > 1e-9 {
		t.Errorf("sim time = %v, want 0.16", ws.SimTimeSec)
	}

	if c.ShouldFlush(15) {
		t.Error("next window should start at step 10")
	}
	if !c.ShouldFlush(20) {
		t.Error("next window should flush at step 20")
	}
}

func TestMeasure(t *testing.T) {
	reference := []r2.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	s := Sample{
		Step:       42,
		Outer:      []r2.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 13}, {X: 0, Y: 11}},
		Velocities: []r2.Vec{{X: 0, Y: 0}, {X: 3, Y: 4}},
		Anchors:    reference,
		Blend:      0.25,
		Recovery:   0.5,
	}

	ws := Measure(s, reference)

	if ws.WindowEndStep != 42 {
		t.Errorf("WindowEndStep = %d, want 42", ws.WindowEndStep)
	}
	if math.Abs(ws.MaxSpeed-5) > 1e-12 {
		t.Errorf("MaxSpeed = %v, want 5", ws.MaxSpeed)
	}
	if math.Abs(ws.MeanSpeed-2.5) > 1e-12 {
		t.Errorf("MeanSpeed = %v, want 2.5", ws.MeanSpeed)
	}
	if math.Abs(ws.DisplacementMax-3) > 1e-12 {
		t.Errorf("DisplacementMax = %v, want 3", ws.DisplacementMax)
	}
	if math.Abs(ws.AnchorErrorMean-1) > 1e-12 {
		t.Errorf("AnchorErrorMean = %v, want 1", ws.AnchorErrorMean)
	}
	if ws.Blend != 0.25 || ws.Recovery != 0.5 {
		t.Errorf("interaction state not copied: blend=%v recovery=%v", ws.Blend, ws.Recovery)
	}
}

func TestMeasureRingHasNoAnchorError(t *testing.T) {
	ws := Measure(Sample{Outer: []r2.Vec{{X: 1, Y: 1}}}, nil)
	if ws.AnchorErrorMax != 0 || ws.DisplacementMax != 0 {
		t.Errorf("expected zero anchor/displacement stats without references, got %+v", ws)
	}
}

func TestCollectorReference(t *testing.T) {
	c := NewCollector(1)
	outline := []r2.Vec{{X: 1, Y: 2}, {X: 3, Y: 4}}
	c.SetReference(outline)
	outline[0] = r2.Vec{X: 99, Y: 99}

	if got := c.Reference(0); got != (r2.Vec{X: 1, Y: 2}) {
		t.Errorf("Reference(0) = %v, want copy taken at SetReference", got)
	}
	if got := c.Reference(5); got != (r2.Vec{}) {
		t.Errorf("Reference(5) = %v, want zero", got)
	}
}
