package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/config"
)

func TestStiffnessScales(t *testing.T) {
	cfg := config.SofteningConfig{Ring: 0.2, Spoke: 0.4}
	tests := []struct {
		t                float64
		wantRing, wantSp float64
	}{
		{0, 1, 1},
		{1, 0.2, 0.4},
		{0.5, 0.6, 0.7},
		{-1, 1, 1},
		{2, 0.2, 0.4},
	}
	for _, tc := range tests {
		ring, spoke := StiffnessScales(tc.t, cfg)
		if math.Abs(ring-tc.wantRing) > 1e-12 || math.Abs(spoke-tc.wantSp) > 1e-12 {
			t.Errorf("StiffnessScales(%v) = %v, %v; want %v, %v", tc.t, ring, spoke, tc.wantRing, tc.wantSp)
		}
	}
}

func TestRescaleStiffness_DoesNotCompound(t *testing.T) {
	cfg := config.Default()
	store := NewPointStore()
	body, err := BuildNetwork(store, r2.Vec{X: 100, Y: 100}, true, RingOutline(r2.Vec{X: 100, Y: 100}, 50, 12), cfg)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 50; i++ {
		RescaleStiffness(body, 0.8, cfg.Softening)
	}
	ring, spoke := StiffnessScales(0.8, cfg.Softening)
	for _, c := range body.Ring {
		if math.Abs(c.AppliedStiffness-c.BaseStiffness*ring) > 1e-15 {
			t.Fatalf("%s link applied %v, want %v", c.Kind, c.AppliedStiffness, c.BaseStiffness*ring)
		}
	}
	for _, c := range body.Spokes {
		if math.Abs(c.AppliedStiffness-c.BaseStiffness*spoke) > 1e-15 {
			t.Fatalf("spoke applied %v, want %v", c.AppliedStiffness, c.BaseStiffness*spoke)
		}
	}

	RescaleStiffness(body, 0, cfg.Softening)
	for _, c := range body.Ring {
		if c.AppliedStiffness != c.BaseStiffness {
			t.Fatalf("base stiffness not restored: %v != %v", c.AppliedStiffness, c.BaseStiffness)
		}
	}
}
