package outline

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestGeneratorsReturnRequestedCount(t *testing.T) {
	center := r2.Vec{X: 200, Y: 200}
	tests := []struct {
		name string
		pts  []r2.Vec
	}{
		{"polygon", Polygon(center, 80, 5, 20)},
		{"star", Star(center, 90, 40, 5, 30)},
		{"rose", Rose(center, 90, 3, 0.4, 36)},
		{"heart", Heart(center, 160, 40)},
	}
	want := []int{20, 30, 36, 40}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.pts) != want[i] {
				t.Fatalf("got %d points, want %d", len(tc.pts), want[i])
			}
			for j, p := range tc.pts {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) {
					t.Fatalf("point %d is NaN", j)
				}
			}
		})
	}
}

func TestInvalidArguments(t *testing.T) {
	if Polygon(r2.Vec{}, 10, 2, 10) != nil {
		t.Error("polygon with 2 sides should be nil")
	}
	if Star(r2.Vec{}, 10, 5, 1, 10) != nil {
		t.Error("star with 1 tip should be nil")
	}
	if Resample(nil, 10) != nil {
		t.Error("resampling nothing should be nil")
	}
}

func TestResampleEvenSpacing(t *testing.T) {
	square := []r2.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	pts := Resample(square, 8)

	// Perimeter 40 split into 8 gives a point every 5 units
	want := []r2.Vec{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 10, Y: 10}, {X: 5, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 5}}
	for i := range want {
		if r2.Norm(r2.Sub(pts[i], want[i])) > 1e-9 {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestPolygonVerticesOnCircumcircle(t *testing.T) {
	center := r2.Vec{X: 50, Y: 50}
	// One sample per side lands exactly on the vertices
	pts := Polygon(center, 30, 6, 6)
	for i, p := range pts {
		d := r2.Norm(r2.Sub(p, center))
		if math.Abs(d-30) > 1e-9 {
			t.Errorf("vertex %d at distance %v, want 30", i, d)
		}
	}
}

func TestWindingIsConsistent(t *testing.T) {
	center := r2.Vec{X: 0, Y: 0}
	a := SignedArea(Polygon(center, 10, 4, 16))
	b := SignedArea(Heart(center, 100, 64))
	if a == 0 || b == 0 {
		t.Fatal("expected non-zero area")
	}
	if math.Signbit(a) != math.Signbit(b) {
		t.Errorf("polygon (%v) and heart (%v) wind in opposite directions", a, b)
	}
}
