package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/blob/config"
)

func testBlendConfig() config.BlendConfig {
	return config.BlendConfig{ActiveTauMs: 120, IdleTauMs: 900, RecoveryMs: 20000}
}

// ---------- Blend smoothing ----------

func TestBlender_StartsIdleAndRecovered(t *testing.T) {
	b := NewBlender(testBlendConfig())
	if b.Active || b.Blend != 0 || b.Recovery != 1 {
		t.Errorf("got active=%v blend=%v recovery=%v, want false/0/1", b.Active, b.Blend, b.Recovery)
	}
	if b.Softening() != 0 {
		t.Errorf("softening = %v, want 0 before any interaction", b.Softening())
	}
}

func TestBlender_ActiveTimeConstant(t *testing.T) {
	b := NewBlender(testBlendConfig())
	b.SetActive(true)
	b.Advance(120)

	want := 1 - math.Exp(-1)
	if math.Abs(b.Blend-want) > 1e-12 {
		t.Errorf("blend after one tau = %v, want %v", b.Blend, want)
	}
	if b.Recovery != 0 {
		t.Errorf("recovery = %v while active, want 0", b.Recovery)
	}
}

func TestBlender_IdleDecayIsSlower(t *testing.T) {
	b := NewBlender(testBlendConfig())
	b.SetActive(true)
	for i := 0; i < 200; i++ {
		b.Advance(16)
	}
	if b.Blend < 0.99 {
		t.Fatalf("blend = %v, want ~1 after sustained interaction", b.Blend)
	}

	b.SetActive(false)
	b.Advance(120)
	// One active tau of idle time only covers a fraction of the idle tau
	want := math.Exp(-120.0 / 900.0)
	if math.Abs(b.Blend-want) > 0.01 {
		t.Errorf("blend after 120ms idle = %v, want ~%v", b.Blend, want)
	}
}

// ---------- Recovery ramp ----------

func TestBlender_RecoveryRampsLinearly(t *testing.T) {
	b := NewBlender(testBlendConfig())
	b.SetActive(true)
	b.Advance(16)
	b.SetActive(false)

	b.Advance(5000)
	if math.Abs(b.Recovery-0.25) > 1e-12 {
		t.Errorf("recovery after 5s = %v, want 0.25", b.Recovery)
	}
	b.Advance(60000)
	if b.Recovery != 1 {
		t.Errorf("recovery = %v, want clamped to 1", b.Recovery)
	}
}

func TestBlender_SofteningAfterRelease(t *testing.T) {
	b := NewBlender(testBlendConfig())
	b.SetActive(true)
	b.Advance(16)
	b.SetActive(false)

	// Zero recovery means fully softened right after release
	if b.Softening() != 1 {
		t.Errorf("softening right after release = %v, want 1", b.Softening())
	}
	b.Advance(5000)
	want := 1 - math.Pow(0.25, 1.5)
	if math.Abs(b.Softening()-want) > 1e-12 {
		t.Errorf("softening = %v, want %v", b.Softening(), want)
	}
}

func TestBlender_StaysInUnitRange(t *testing.T) {
	dts := []float64{0, 1, 16, 32, 1e9, -5, math.NaN(), math.Inf(1), math.Inf(-1)}
	b := NewBlender(testBlendConfig())
	for i := 0; i < 500; i++ {
		b.SetActive(i%7 < 3)
		b.Advance(dts[i%len(dts)])
		if b.Blend < 0 || b.Blend > 1 || math.IsNaN(b.Blend) {
			t.Fatalf("step %d: blend = %v out of [0,1]", i, b.Blend)
		}
		if b.Recovery < 0 || b.Recovery > 1 || math.IsNaN(b.Recovery) {
			t.Fatalf("step %d: recovery = %v out of [0,1]", i, b.Recovery)
		}
		if b.Active && b.Recovery != 0 {
			t.Fatalf("step %d: recovery = %v while active", i, b.Recovery)
		}
	}
}
