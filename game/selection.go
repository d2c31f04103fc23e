package game

import "gonum.org/v1/gonum/spatial/r2"

// beginDrag grabs the outer point nearest the cursor within the pick radius
// and selects it in the inspector. A miss clears the selection.
func (g *Game) beginDrag() {
	i, ok := g.pick(g.cursorWorld())
	if !ok {
		g.inspector.Deselect()
		return
	}
	g.dragIndex = i
	g.engine.SetPointer(pointerDrag, true)
	g.inspector.Select(i)
}

// pick returns the outer point within the pick radius of a world position.
// The radius is given in screen pixels and shrinks as the camera zooms in.
func (g *Game) pick(p r2.Vec) (int, bool) {
	zoom := 1.0
	if g.camera != nil {
		zoom = float64(g.camera.Zoom)
	}
	i, d := g.engine.Nearest(p)
	if i < 0 || d > g.cfg.Host.PickRadius/zoom {
		return -1, false
	}
	return i, true
}
