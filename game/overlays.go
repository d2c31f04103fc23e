package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blob/ui"
)

// handleOverlayKeys checks for overlay toggle key presses.
func (g *Game) handleOverlayKeys() {
	for _, desc := range g.overlays.All() {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			on := g.overlays.Toggle(desc.ID)
			g.logger.Debug("overlay toggled", "overlay", string(desc.ID), "enabled", on)
		}
	}
}

// drawBodyLayer draws the body itself in fill or wireframe style.
func (g *Game) drawBodyLayer() {
	rs := g.engine.RenderState()
	if len(rs.Outer) == 0 {
		return
	}
	if g.overlays.IsEnabled(ui.OverlayWireframe) {
		g.blob.DrawOutline(rs.Outer)
		return
	}
	g.blob.DrawBody(rs.Center, rs.Outer)
}

// drawActiveOverlays renders all currently enabled debug layers in registry order.
func (g *Game) drawActiveOverlays() {
	rs := g.engine.RenderState()
	for _, id := range g.overlays.EnabledOverlays() {
		switch id {
		case ui.OverlayLinks, ui.OverlaySpokes:
			// Drawn together below so each layer keeps its own color.
		case ui.OverlayPoints:
			g.blob.DrawPoints(rs.Outer, g.engine.Pinned)
		case ui.OverlayAnchors:
			g.blob.DrawAnchors(g.engine.Anchors())
		case ui.OverlayVelocity:
			pos := append(rs.Outer, rs.Center)
			g.blob.DrawVelocities(pos, g.engine.Velocities())
		case ui.OverlayBounds:
			w, h := g.engine.Bounds()
			g.blob.DrawBounds(w, h)
		}
	}
	g.drawLinkLayers()
}

// drawLinkLayers draws ring links and spokes if their overlays are on.
func (g *Game) drawLinkLayers() {
	body := g.engine.Body()
	if body == nil {
		return
	}
	view := *body
	if !g.overlays.IsEnabled(ui.OverlayLinks) {
		view.Ring = nil
	}
	if !g.overlays.IsEnabled(ui.OverlaySpokes) {
		view.Spokes = nil
	}
	if view.Ring == nil && view.Spokes == nil {
		return
	}
	g.blob.DrawLinks(&view, g.engine.LinkEnds)
}
