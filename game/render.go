package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blob/ui"
)

// Background color behind the body.
var colorBackground = rl.Color{R: 18, G: 20, B: 26, A: 255}

// Controls legend shown at the bottom of the screen.
const controlsLegend = "LMB drag | RMB pinch | 1-5 shapes | R reset | F5 snapshot | Space pause | </> speed | Tab overlays | T tuning | Arrows/wheel camera"

// layoutPanels positions the screen-anchored panels for the current window size.
func (g *Game) layoutPanels() {
	w, h := int32(g.screenWidth), int32(g.screenHeight)
	g.perfPanel.SetPosition(w-260, h-120)
	g.tuning.SetPosition(10, h-312)
}

// Draw renders the body, overlays and UI panels.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	// World layers
	g.drawBodyLayer()
	g.drawActiveOverlays()
	g.drawSelection()

	// Screen layers
	g.hud.Draw(g.hudData())
	g.hud.DrawControls(int32(g.screenWidth), int32(g.screenHeight), controlsLegend)
	g.controls.Draw(g.overlays)
	g.inspector.Draw(g.engine)
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}

	res := g.tuning.Draw(g.engine)
	if res.Changed {
		g.logger.Debug("tuning changed",
			"outer_damping", g.engine.Config().Network.OuterDamping,
			"center_damping", g.engine.Config().Network.CenterDamping,
			"anchor_strength", g.engine.Config().Anchor.Strength,
			"anchor_interact", g.engine.Config().Anchor.InteractStrength,
		)
	}
	if res.Reset {
		g.reloadShape()
	}

	rl.EndDrawing()
}

// drawSelection rings the inspected point.
func (g *Game) drawSelection() {
	i, ok := g.inspector.Selected()
	if !ok {
		return
	}
	kin, _, _, err := g.engine.Point(i)
	if err != nil {
		return
	}
	sx, sy := g.camera.WorldToScreen(float32(kin.Pos.X), float32(kin.Pos.Y))
	g.inspector.DrawHighlight(sx, sy, HighlightRange)
}

// hudData collects the values shown in the HUD.
func (g *Game) hudData() ui.HUDData {
	return ui.HUDData{
		Title:          "Blob",
		Mode:           g.engine.Mode().String(),
		Shape:          g.shape,
		Points:         g.engine.PointCount(),
		BodyID:         uint32(g.engine.BodyID()),
		Blend:          g.engine.Blend(),
		Recovery:       g.engine.Recovery(),
		Interacting:    g.engine.Interacting(),
		MaxSpeed:       g.engine.MaxSpeed(),
		Steps:          g.engine.Steps(),
		StepsPerUpdate: g.stepsPerUpdate,
		FPS:            rl.GetFPS(),
		Paused:         g.paused,
	}
}
