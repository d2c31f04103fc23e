package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/config"
)

func TestContainmentForce(t *testing.T) {
	cfg := config.Default().Boundary
	b := Bounds{Width: 400, Height: 400}
	tests := []struct {
		name   string
		pos    r2.Vec
		active bool
		want   r2.Vec
		inside bool
	}{
		{"interior", r2.Vec{X: 200, Y: 200}, false, r2.Vec{}, false},
		{"left margin", r2.Vec{X: 5, Y: 200}, false, r2.Vec{X: cfg.IdleGain * (cfg.MarginX - 5)}, true},
		{"past left edge", r2.Vec{X: -5, Y: 200}, false, r2.Vec{X: cfg.IdleGain * (cfg.MarginX + 5)}, true},
		{"right margin", r2.Vec{X: 395, Y: 200}, false, r2.Vec{X: -cfg.IdleGain * (395 - (400 - cfg.MarginX))}, true},
		{"bottom margin", r2.Vec{X: 200, Y: 390}, false, r2.Vec{Y: -cfg.IdleGain * (390 - (400 - cfg.MarginY))}, true},
		{"top margin active", r2.Vec{X: 200, Y: 10}, true, r2.Vec{Y: cfg.InteractGain * (cfg.MarginY - 10)}, true},
		{"corner", r2.Vec{X: 2, Y: 2}, false, r2.Vec{X: cfg.IdleGain * (cfg.MarginX - 2), Y: cfg.IdleGain * (cfg.MarginY - 2)}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, inside := ContainmentForce(tc.pos, b, cfg, tc.active)
			if inside != tc.inside {
				t.Errorf("inside = %v, want %v", inside, tc.inside)
			}
			if math.Abs(got.X-tc.want.X) > 1e-12 || math.Abs(got.Y-tc.want.Y) > 1e-12 {
				t.Errorf("force = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestContainmentForce_Disabled(t *testing.T) {
	cfg := config.Default().Boundary
	for _, b := range []Bounds{{}, {Width: 400}, {Width: -1, Height: 300}, {Width: math.Inf(1), Height: 300}} {
		if _, inside := ContainmentForce(r2.Vec{X: -50, Y: -50}, b, cfg, false); inside {
			t.Errorf("bounds %+v should disable containment", b)
		}
	}
}

func TestContainmentForce_IdleStrongerThanActive(t *testing.T) {
	cfg := config.Default().Boundary
	b := Bounds{Width: 400, Height: 400}
	idle, _ := ContainmentForce(r2.Vec{X: 3, Y: 200}, b, cfg, false)
	active, _ := ContainmentForce(r2.Vec{X: 3, Y: 200}, b, cfg, true)
	if idle.X <= active.X {
		t.Errorf("idle push %v should exceed interacting push %v", idle.X, active.X)
	}
}

func TestBoundarySystem_PushesInward(t *testing.T) {
	cfg := config.Default()
	store := NewPointStore()
	center := r2.Vec{X: 40, Y: 200}
	body, err := BuildNetwork(store, center, true, RingOutline(center, 45, 18), cfg)
	if err != nil {
		t.Fatal(err)
	}
	sys := NewBoundarySystem(store)
	sys.SetBounds(Bounds{Width: 400, Height: 400})
	sys.Update(body, cfg, 1, false)

	// Point 9 sits at angle pi, five units past the left edge
	kin, _, _ := store.Get(body.Outer[9])
	if kin.Vel.X <= 0 {
		t.Errorf("point past left edge has vx = %v, want > 0", kin.Vel.X)
	}
	// Point 0 is well inside
	kin, _, _ = store.Get(body.Outer[0])
	if kin.Vel != (r2.Vec{}) {
		t.Errorf("interior point velocity = %v, want zero", kin.Vel)
	}
}

func TestBoundarySystem_ReleasesPinned(t *testing.T) {
	cfg := config.Default()
	store := NewPointStore()
	center := r2.Vec{X: 40, Y: 200}
	body, err := BuildNetwork(store, center, true, RingOutline(center, 45, 18), cfg)
	if err != nil {
		t.Fatal(err)
	}
	_, _, st := store.Get(body.Outer[9])
	st.Pinned = true

	sys := NewBoundarySystem(store)
	sys.SetBounds(Bounds{Width: 400, Height: 400})
	sys.Update(body, cfg, 1, false)

	kin, _, _ := store.Get(body.Outer[9])
	if kin.Vel.X <= 0 {
		t.Errorf("pinned point past left edge has vx = %v, want > 0", kin.Vel.X)
	}
	if st.Pinned {
		t.Error("point in margin is still pinned")
	}
}

func TestBoundarySystem_OuterPushedHarderThanCenter(t *testing.T) {
	cfg := config.Default()
	store := NewPointStore()
	center := r2.Vec{X: 200, Y: 200}
	body, err := BuildNetwork(store, center, true, RingOutline(center, 45, 18), cfg)
	if err != nil {
		t.Fatal(err)
	}
	depth := r2.Vec{X: 4, Y: 200}
	ck, _, _ := store.Get(body.Center)
	ok, _, _ := store.Get(body.Outer[0])
	ck.Pos, ok.Pos = depth, depth

	sys := NewBoundarySystem(store)
	sys.SetBounds(Bounds{Width: 400, Height: 400})
	sys.Update(body, cfg, 1, false)

	if ck.Vel.X <= 0 {
		t.Fatalf("center vx = %v, want > 0", ck.Vel.X)
	}
	if ok.Vel.X <= ck.Vel.X {
		t.Errorf("outer vx %v should exceed center vx %v", ok.Vel.X, ck.Vel.X)
	}
	want := ck.Vel.X * cfg.Boundary.OuterScale / cfg.Boundary.CenterScale
	if math.Abs(ok.Vel.X-want) > 1e-9 {
		t.Errorf("outer vx = %v, want %v", ok.Vel.X, want)
	}
}

func TestBoundarySystem_ReflectsOutwardVelocity(t *testing.T) {
	cfg := config.Default()
	store := NewPointStore()
	center := r2.Vec{X: 200, Y: 200}
	body, err := BuildNetwork(store, center, true, RingOutline(center, 45, 18), cfg)
	if err != nil {
		t.Fatal(err)
	}
	kin, mat, _ := store.Get(body.Outer[0])
	kin.Pos = r2.Vec{X: -5, Y: 200}
	kin.Vel = r2.Vec{X: -2}

	sys := NewBoundarySystem(store)
	sys.SetBounds(Bounds{Width: 400, Height: 400})
	sys.Update(body, cfg, 1, false)

	bc := cfg.Boundary
	push := bc.IdleGain * (bc.MarginX + 5) * bc.OuterScale
	want := (2*mat.Restitution + push) * (1 - bc.IdleDamping)
	if math.Abs(kin.Vel.X-want) > 1e-9 {
		t.Errorf("reflected vx = %v, want %v", kin.Vel.X, want)
	}
	if kin.Vel.Y != 0 {
		t.Errorf("vy = %v, want 0", kin.Vel.Y)
	}
}

func TestBoundarySystem_SetBoundsSanitizes(t *testing.T) {
	sys := NewBoundarySystem(NewPointStore())
	sys.SetBounds(Bounds{Width: math.NaN(), Height: -3})
	if b := sys.Bounds(); b.Width != 0 || b.Height != 0 || b.Enabled() {
		t.Errorf("bounds = %+v, want disabled zero bounds", b)
	}
}
