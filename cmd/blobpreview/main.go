// Outline preview tool - interactive shape generator with sliders and a
// live soft body built from the current outline.
//
// Usage: go run ./cmd/blobpreview
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/config"
	"github.com/pthm-cable/blob/engine"
	"github.com/pthm-cable/blob/outline"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 600
	panelWidth   = windowWidth - previewSize - 30
)

var shapeKinds = []string{"ring", "polygon", "star", "rose", "heart"}

// OutlineParams holds the generator parameters.
type OutlineParams struct {
	Kind      int
	Points    int
	Radius    float32
	Sides     int
	InnerFrac float32 // Star inner radius as a fraction of the outer
	Tips      int
	RoseK     int
	RoseBase  float32
}

func defaultParams() OutlineParams {
	return OutlineParams{
		Kind:      2,
		Points:    24,
		Radius:    180,
		Sides:     4,
		InnerFrac: 0.5,
		Tips:      5,
		RoseK:     4,
		RoseBase:  0.55,
	}
}

// generate returns the outline for p, or nil for the free ring.
func generate(p OutlineParams, center r2.Vec) []r2.Vec {
	r := float64(p.Radius)
	switch shapeKinds[p.Kind] {
	case "polygon":
		return outline.Polygon(center, r, p.Sides, p.Points)
	case "star":
		return outline.Star(center, r, r*float64(p.InnerFrac), p.Tips, p.Points)
	case "rose":
		return outline.Rose(center, r, p.RoseK, float64(p.RoseBase), p.Points)
	case "heart":
		return outline.Heart(center, r*2, p.Points)
	}
	return nil
}

// ringOutline is the rest outline of a free ring, for drawing only.
func ringOutline(center r2.Vec, radius float64, n int) []r2.Vec {
	pts := make([]r2.Vec, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = r2.Add(center, r2.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
	return pts
}

// hostSnippet renders the host config section for the current parameters.
func hostSnippet(p OutlineParams) string {
	shape := shapeKinds[p.Kind]
	if shape == "polygon" {
		shape = "square"
	}
	return fmt.Sprintf(`host:
  shape: %s
  points: %d
  radius_fraction: %.2f`, shape, p.Points, float64(p.Radius)/float64(min(windowWidth, windowHeight)))
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Blob Outline Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cfg := config.Default()
	eng := engine.New(engine.Options{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	defer eng.Close()
	eng.SetBounds(previewSize, previewSize)

	params := defaultParams()
	center := r2.Vec{X: previewSize / 2, Y: previewSize / 2}
	offset := rl.Vector2{X: 10, Y: 10}

	simulating := false
	needsRegen := true
	var anchors []r2.Vec
	var buildErr error

	rebuild := func() {
		anchors = generate(params, center)
		if anchors == nil {
			_, buildErr = eng.ResetRing(center, float64(params.Radius), params.Points)
		} else {
			_, buildErr = eng.ResetAnchored(anchors)
		}
	}

	for !rl.WindowShouldClose() {
		if needsRegen {
			rebuild()
			needsRegen = false
		}

		if simulating && buildErr == nil {
			// Push one outer point while space is held
			if rl.IsKeyDown(rl.KeySpace) {
				eng.SetPointer(0, true)
				eng.ApplyForce(0, 8, -4)
			} else {
				eng.SetPointer(0, false)
			}
			eng.Step(float64(rl.GetFrameTime()) * 1000)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview area
		rl.DrawRectangle(int32(offset.X), int32(offset.Y), previewSize, previewSize, rl.Color{R: 24, G: 28, B: 36, A: 255})
		rl.DrawRectangleLines(int32(offset.X), int32(offset.Y), previewSize, previewSize, rl.DarkGray)

		ref := anchors
		if ref == nil {
			ref = ringOutline(center, float64(params.Radius), params.Points)
		}
		drawLoop(ref, offset, rl.Color{R: 90, G: 110, B: 140, A: 255})
		for _, a := range ref {
			rl.DrawCircleV(toScreen(a, offset), 2, rl.Color{R: 120, G: 150, B: 190, A: 255})
		}

		if simulating && buildErr == nil {
			rs := eng.RenderState()
			drawLoop(rs.Outer, offset, rl.Color{R: 120, G: 220, B: 170, A: 255})
			rl.DrawCircleV(toScreen(rs.Center, offset), 3, rl.Color{R: 240, G: 200, B: 90, A: 255})
		}

		statsY := int32(previewSize + 25)
		area := 0.0
		if len(ref) >= 3 {
			area = math.Abs(outline.SignedArea(ref))
		}
		rl.DrawText(fmt.Sprintf("Points: %d  Area: %.0f", len(ref), area), 15, statsY, 16, rl.DarkGray)
		if buildErr != nil {
			rl.DrawText(buildErr.Error(), 15, statsY+20, 16, rl.Maroon)
		} else if simulating {
			rl.DrawText(fmt.Sprintf("Steps: %d  Max speed: %.3f  (hold SPACE to push)", eng.Steps(), eng.MaxSpeed()), 15, statsY+20, 16, rl.DarkGray)
		}

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Outline Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		var changed bool
		panelY, changed = intSlider(panelX, panelY, "Shape: "+shapeKinds[params.Kind], &params.Kind, 0, len(shapeKinds)-1)
		needsRegen = needsRegen || changed
		panelY, changed = intSlider(panelX, panelY, "Points", &params.Points, 3, 96)
		needsRegen = needsRegen || changed
		panelY, changed = floatSlider(panelX, panelY, "Radius", &params.Radius, 40, 280, "%.0f")
		needsRegen = needsRegen || changed

		// Separator
		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		switch shapeKinds[params.Kind] {
		case "polygon":
			panelY, changed = intSlider(panelX, panelY, "Sides", &params.Sides, 3, 12)
			needsRegen = needsRegen || changed
		case "star":
			panelY, changed = intSlider(panelX, panelY, "Tips", &params.Tips, 3, 12)
			needsRegen = needsRegen || changed
			panelY, changed = floatSlider(panelX, panelY, "Inner radius fraction", &params.InnerFrac, 0.1, 0.95, "%.2f")
			needsRegen = needsRegen || changed
		case "rose":
			panelY, changed = intSlider(panelX, panelY, "Petals (k)", &params.RoseK, 1, 9)
			needsRegen = needsRegen || changed
			panelY, changed = floatSlider(panelX, panelY, "Base fraction", &params.RoseBase, 0.1, 0.9, "%.2f")
			needsRegen = needsRegen || changed
		}
		panelY += 10

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(simulating, "Stop", "Simulate")) {
			simulating = !simulating
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			needsRegen = true
		}
		panelY += 55

		// Output YAML
		snippet := hostSnippet(params)
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range strings.Split(snippet, "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(snippet)
		}

		rl.EndDrawing()
	}
}

func intSlider(x, y float32, label string, v *int, lo, hi int) (float32, bool) {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	y += 18
	nv := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprint(lo), fmt.Sprint(hi),
		float32(*v), float32(lo), float32(hi),
	)
	rl.DrawText(fmt.Sprintf("%d", *v), int32(x+float32(panelWidth-70)), int32(y+2), 16, rl.DarkGray)
	changed := int(nv) != *v
	*v = int(nv)
	return y + 35, changed
}

func floatSlider(x, y float32, label string, v *float32, lo, hi float32, format string) (float32, bool) {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	y += 18
	nv := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf(format, lo), fmt.Sprintf(format, hi),
		*v, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, *v), int32(x+float32(panelWidth-70)), int32(y+2), 16, rl.DarkGray)
	changed := nv != *v
	*v = nv
	return y + 35, changed
}

func drawLoop(pts []r2.Vec, offset rl.Vector2, c rl.Color) {
	for i := range pts {
		a := toScreen(pts[i], offset)
		b := toScreen(pts[(i+1)%len(pts)], offset)
		rl.DrawLineEx(a, b, 2, c)
	}
}

func toScreen(p r2.Vec, offset rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(p.X) + offset.X, Y: float32(p.Y) + offset.Y}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
