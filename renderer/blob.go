// Package renderer draws the soft body with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/camera"
	"github.com/pthm-cable/blob/components"
)

// Style holds the blob colors and sizes.
type Style struct {
	Fill          rl.Color
	Outline       rl.Color
	Point         rl.Color
	Pinned        rl.Color
	Link          rl.Color
	Spoke         rl.Color
	Anchor        rl.Color
	Velocity      rl.Color
	Bounds        rl.Color
	PointSize     float32
	OutlineW      float32
	VelocityScale float32 // World length per unit of speed
}

// DefaultStyle returns the default blob palette.
func DefaultStyle() Style {
	return Style{
		Fill:          rl.Color{R: 90, G: 170, B: 220, A: 200},
		Outline:       rl.Color{R: 200, G: 235, B: 255, A: 255},
		Point:         rl.Color{R: 240, G: 240, B: 240, A: 255},
		Pinned:        rl.Color{R: 255, G: 200, B: 80, A: 255},
		Link:          rl.Color{R: 120, G: 120, B: 140, A: 140},
		Spoke:         rl.Color{R: 90, G: 110, B: 90, A: 120},
		Anchor:        rl.Color{R: 255, G: 120, B: 120, A: 200},
		Velocity:      rl.Color{R: 120, G: 255, B: 120, A: 220},
		Bounds:        rl.Color{R: 80, G: 80, B: 90, A: 255},
		PointSize:     3,
		OutlineW:      2,
		VelocityScale: 4,
	}
}

// BlobRenderer draws the filled outline and optional debug layers.
type BlobRenderer struct {
	Style Style
	cam   *camera.Camera

	screen []rl.Vector2 // Scratch buffer of outline points in screen space
}

// NewBlobRenderer creates a renderer that projects through cam.
func NewBlobRenderer(cam *camera.Camera) *BlobRenderer {
	return &BlobRenderer{Style: DefaultStyle(), cam: cam}
}

func (r *BlobRenderer) project(p r2.Vec) rl.Vector2 {
	x, y := r.cam.WorldToScreen(float32(p.X), float32(p.Y))
	return rl.Vector2{X: x, Y: y}
}

// DrawBody fills the outline as a fan around the center and strokes it.
func (r *BlobRenderer) DrawBody(center r2.Vec, outer []r2.Vec) {
	n := len(outer)
	if n < 3 {
		return
	}
	if cap(r.screen) < n {
		r.screen = make([]rl.Vector2, n)
	}
	r.screen = r.screen[:n]
	for i, p := range outer {
		r.screen[i] = r.project(p)
	}
	c := r.project(center)

	for i := 0; i < n; i++ {
		a, b := r.screen[i], r.screen[(i+1)%n]
		// raylib only fills counter-clockwise triangles, so emit both windings.
		rl.DrawTriangle(c, b, a, r.Style.Fill)
		rl.DrawTriangle(c, a, b, r.Style.Fill)
	}
	r.strokeScreen()
}

// DrawOutline strokes the outline without filling it.
func (r *BlobRenderer) DrawOutline(outer []r2.Vec) {
	n := len(outer)
	if n < 2 {
		return
	}
	if cap(r.screen) < n {
		r.screen = make([]rl.Vector2, n)
	}
	r.screen = r.screen[:n]
	for i, p := range outer {
		r.screen[i] = r.project(p)
	}
	r.strokeScreen()
}

// strokeScreen draws the closed polyline in the scratch buffer.
func (r *BlobRenderer) strokeScreen() {
	n := len(r.screen)
	for i := 0; i < n; i++ {
		rl.DrawLineEx(r.screen[i], r.screen[(i+1)%n], r.Style.OutlineW, r.Style.Outline)
	}
}

// DrawPoints marks every outer point, highlighting pinned ones.
func (r *BlobRenderer) DrawPoints(outer []r2.Vec, pinned func(i int) bool) {
	for i, p := range outer {
		color := r.Style.Point
		if pinned != nil && pinned(i) {
			color = r.Style.Pinned
		}
		rl.DrawCircleV(r.project(p), r.Style.PointSize, color)
	}
}

// DrawLinks draws ring constraints and spokes using current positions.
func (r *BlobRenderer) DrawLinks(body *components.SoftBody, pos func(e components.Constraint) (a, b r2.Vec)) {
	if body == nil {
		return
	}
	for _, c := range body.Ring {
		a, b := pos(c)
		rl.DrawLineV(r.project(a), r.project(b), r.Style.Link)
	}
	for _, c := range body.Spokes {
		a, b := pos(c)
		rl.DrawLineV(r.project(a), r.project(b), r.Style.Spoke)
	}
}

// DrawAnchors draws the target outline of an anchored shape.
func (r *BlobRenderer) DrawAnchors(anchors []r2.Vec) {
	n := len(anchors)
	for i := 0; i < n; i++ {
		rl.DrawLineV(r.project(anchors[i]), r.project(anchors[(i+1)%n]), r.Style.Anchor)
	}
}

// DrawVelocities draws a short vector per point.
func (r *BlobRenderer) DrawVelocities(pos, vel []r2.Vec) {
	for i := range pos {
		if i >= len(vel) {
			break
		}
		tip := r2.Add(pos[i], r2.Scale(float64(r.Style.VelocityScale), vel[i]))
		rl.DrawLineV(r.project(pos[i]), r.project(tip), r.Style.Velocity)
	}
}

// DrawBounds outlines the containment rectangle.
func (r *BlobRenderer) DrawBounds(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	tl := r.project(r2.Vec{})
	br := r.project(r2.Vec{X: width, Y: height})
	rl.DrawRectangleLinesEx(rl.Rectangle{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}, 1, r.Style.Bounds)
}
