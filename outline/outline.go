// Package outline generates target outlines for anchored soft bodies.
// Every generator returns points in ring order, counter-clockwise in a
// y-down screen frame, resampled to the requested count.
package outline

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon returns n points evenly spaced along the perimeter of a regular
// polygon with the given number of sides and circumradius.
func Polygon(center r2.Vec, radius float64, sides, n int) []r2.Vec {
	if sides < 3 || n <= 0 {
		return nil
	}
	verts := make([]r2.Vec, sides)
	for i := range verts {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(sides)
		verts[i] = r2.Add(center, r2.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
	return Resample(verts, n)
}

// Star returns n points along a star with the given number of tips.
func Star(center r2.Vec, outer, inner float64, tips, n int) []r2.Vec {
	if tips < 2 || n <= 0 {
		return nil
	}
	verts := make([]r2.Vec, 2*tips)
	for i := range verts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/float64(tips)
		verts[i] = r2.Add(center, r2.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)})
	}
	return Resample(verts, n)
}

// Rose returns n points along a rose curve r = radius * (base + (1-base)|cos(k*t)|).
// base keeps the petals from collapsing into the center.
func Rose(center r2.Vec, radius float64, k int, base float64, n int) []r2.Vec {
	return Parametric(center, func(t float64) r2.Vec {
		r := radius * (base + (1-base)*math.Abs(math.Cos(float64(k)*t/2)))
		return r2.Vec{X: r * math.Cos(t), Y: r * math.Sin(t)}
	}, n)
}

// Heart returns n points along the classic heart curve scaled to roughly size wide.
func Heart(center r2.Vec, size float64, n int) []r2.Vec {
	s := size / 32
	return Parametric(center, func(t float64) r2.Vec {
		x := 16 * math.Pow(math.Sin(t), 3)
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		return r2.Vec{X: s * x, Y: -s * y}
	}, n)
}

// Parametric samples a closed curve f over t in [0, 2pi) densely, then
// resamples it to n points evenly spaced by arc length.
func Parametric(center r2.Vec, f func(t float64) r2.Vec, n int) []r2.Vec {
	if n <= 0 {
		return nil
	}
	const dense = 720
	pts := make([]r2.Vec, dense)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / dense
		pts[i] = r2.Add(center, f(t))
	}
	return Resample(pts, n)
}

// Resample walks the closed polyline and returns n points evenly spaced by arc length,
// starting at the first vertex.
func Resample(closed []r2.Vec, n int) []r2.Vec {
	if len(closed) == 0 || n <= 0 {
		return nil
	}
	m := len(closed)
	seg := make([]float64, m)
	var total float64
	for i := range closed {
		seg[i] = r2.Norm(r2.Sub(closed[(i+1)%m], closed[i]))
		total += seg[i]
	}
	out := make([]r2.Vec, n)
	if total == 0 {
		for i := range out {
			out[i] = closed[0]
		}
		return out
	}

	step := total / float64(n)
	i, walked := 0, 0.0
	for k := 0; k < n; k++ {
		target := step * float64(k)
		for i < m-1 && walked+seg[i] < target {
			walked += seg[i]
			i++
		}
		t := 0.0
		if seg[i] > 0 {
			t = (target - walked) / seg[i]
		}
		a, b := closed[i], closed[(i+1)%m]
		out[k] = r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
	}
	return out
}

// SignedArea returns the shoelace area of the closed polyline.
// It is negative for clockwise winding in a y-up frame.
func SignedArea(closed []r2.Vec) float64 {
	var a float64
	for i := range closed {
		p, q := closed[i], closed[(i+1)%len(closed)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
