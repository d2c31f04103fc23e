package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > MinStepsPerUpdate {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < MaxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	// Shape presets on 1-5, R rebuilds the current one
	for i, name := range ShapeNames {
		if rl.IsKeyPressed(rl.KeyOne + int32(i)) {
			g.switchShape(name)
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.reloadShape()
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		g.SaveSnapshot()
	}

	// Panels
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		g.tuning.Toggle()
	}

	// Overlay toggles
	g.handleOverlayKeys()

	// Camera controls
	g.handleCameraInput()

	// Pointer drag and pinch
	g.handlePointerInput()
}

// switchShape loads a preset, keeping the current body on failure.
func (g *Game) switchShape(name string) {
	if err := g.loadShape(name); err != nil {
		g.logger.Error("failed to load shape", "shape", name, "error", err)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.engine.SetBounds(float64(w), float64(h))
	g.camera.Resize(w, h, true)
	g.inspector.Resize(int32(w))
	g.layoutPanels()

	g.logger.Debug("window resized", "width", w, "height", h)
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(PanSpeed) / g.camera.Zoom

	// Arrow key panning
	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}

	// Zoom controls: mouse wheel or +/- keys
	if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 {
		g.camera.ZoomBy(1 + wheelMove*WheelZoomStep)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(KeyZoomFactor)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(1 / KeyZoomFactor)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}

// handlePointerInput maps mouse buttons to engine pointers.
// Left drags the nearest outer point, right pinches the body.
func (g *Game) handlePointerInput() {
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !g.clickUI(mouse.X, mouse.Y) {
		g.beginDrag()
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) && g.dragIndex >= 0 {
		g.engine.SetPointer(pointerDrag, false)
		g.dragIndex = -1
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonRight) && !g.pinching {
		g.engine.SetPointer(pointerPinch, true)
		g.pinching = true
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonRight) && g.pinching {
		g.engine.SetPointer(pointerPinch, false)
		g.pinching = false
	}
}

// clickUI routes a click to the panels. Returns true if a panel took it.
func (g *Game) clickUI(mx, my float32) bool {
	if g.controls.HandleClick(mx, my, g.overlays) {
		return true
	}
	return g.tuning.Contains(mx, my) || g.inspector.Contains(mx, my)
}

// cursorWorld returns the mouse position in world coordinates.
func (g *Game) cursorWorld() r2.Vec {
	if g.camera == nil {
		return r2.Vec{}
	}
	mouse := rl.GetMousePosition()
	wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
	return r2.Vec{X: float64(wx), Y: float64(wy)}
}
