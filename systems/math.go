package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// degenerateEps is the distance under which two points are treated as coincident.
const degenerateEps = 1e-9

// Clamp functions for common value ranges

// clampFloat clamps a value between min and max.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp01 clamps a value to the [0, 1] range. NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp interpolates from a to b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Vector helpers

// unitOr returns the unit vector of v, or fallback when v is (near) zero.
func unitOr(v, fallback r2.Vec) (r2.Vec, float64) {
	d := r2.Norm(v)
	if d < degenerateEps || !finite(d) {
		return fallback, 0
	}
	return r2.Scale(1/d, v), d
}

// clampNorm limits the magnitude of v to max. Infinite or overflowing vectors
// keep their direction and clamp to max. NaN maps to zero.
func clampNorm(v r2.Vec, max float64) r2.Vec {
	if max <= 0 {
		return v
	}
	if math.IsNaN(v.X) || math.IsNaN(v.Y) {
		return r2.Vec{}
	}
	if math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
		v = r2.Vec{X: infSign(v.X), Y: infSign(v.Y)}
	}
	n := r2.Norm(v)
	if math.IsInf(n, 0) {
		v = r2.Scale(1/math.Max(math.Abs(v.X), math.Abs(v.Y)), v)
		n = r2.Norm(v)
	}
	if n > max {
		return r2.Scale(max/n, v)
	}
	return v
}

// infSign returns the sign of an infinite x, or 0 when x is finite.
func infSign(x float64) float64 {
	switch {
	case math.IsInf(x, 1):
		return 1
	case math.IsInf(x, -1):
		return -1
	}
	return 0
}

// finite reports whether x is neither NaN nor infinite.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// finiteVec reports whether both components of v are finite.
func finiteVec(v r2.Vec) bool {
	return finite(v.X) && finite(v.Y)
}

// unitX is the fallback direction for coincident points.
var unitX = r2.Vec{X: 1}
