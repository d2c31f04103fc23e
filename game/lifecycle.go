package game

import (
	"math"
)

// shapeRadius returns the preset radius for the current screen size.
func (g *Game) shapeRadius() float64 {
	side := math.Min(float64(g.screenWidth), float64(g.screenHeight))
	return side * g.cfg.Host.RadiusFraction
}

// loadShape replaces the live body with the named preset centered on screen.
// On error the previous body is kept.
func (g *Game) loadShape(name string) error {
	center := g.screenCenter()
	radius := g.shapeRadius()

	anchors, err := ShapeOutline(name, center, radius, g.points)
	if err != nil {
		return err
	}

	if anchors == nil {
		_, err = g.engine.ResetRing(center, radius, g.points)
	} else {
		_, err = g.engine.ResetAnchored(anchors)
	}
	if err != nil {
		return err
	}

	g.shape = name
	g.releasePointers()
	g.collector.SetReference(g.engine.RenderState().Outer)
	if g.inspector != nil {
		g.inspector.Deselect()
	}

	g.logger.Info("shape loaded",
		"shape", name,
		"mode", g.engine.Mode().String(),
		"points", g.engine.PointCount(),
		"id", g.engine.BodyID(),
	)
	return nil
}

// reloadShape rebuilds the current preset, logging failures.
func (g *Game) reloadShape() {
	if err := g.loadShape(g.shape); err != nil {
		g.logger.Error("failed to reload shape", "shape", g.shape, "error", err)
	}
}

// releasePointers lifts every pointer the host holds.
func (g *Game) releasePointers() {
	if g.dragIndex >= 0 {
		g.engine.SetPointer(pointerDrag, false)
		g.dragIndex = -1
	}
	if g.pinching {
		g.engine.SetPointer(pointerPinch, false)
		g.pinching = false
	}
}
