// Package inspector shows the components of a selected mass point.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blob/components"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 26
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
	ColorHighlight   = rl.Color{R: 255, G: 220, B: 90, A: 255}
)

// PointSource provides point components by index. Index n is the center.
type PointSource interface {
	Point(i int) (components.Kinematics, components.Material, components.Settle, error)
}

// Inspector tracks the selected point and draws its panel.
type Inspector struct {
	selected    int
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates an inspector anchored to the right edge of the screen.
func NewInspector(screenWidth int32) *Inspector {
	ins := &Inspector{}
	ins.Resize(screenWidth)
	return ins
}

// Resize re-anchors the panel after a window resize.
func (ins *Inspector) Resize(screenWidth int32) {
	ins.panelX = screenWidth - PanelWidth - 10
	ins.panelY = 10
}

// Select marks point i as selected.
func (ins *Inspector) Select(i int) {
	ins.selected = i
	ins.hasSelected = i >= 0
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the selected point index.
func (ins *Inspector) Selected() (int, bool) {
	return ins.selected, ins.hasSelected
}

// Contains reports whether a screen position lies over the panel.
func (ins *Inspector) Contains(x, y float32) bool {
	return ins.hasSelected &&
		int32(x) >= ins.panelX && int32(x) <= ins.panelX+PanelWidth &&
		int32(y) >= ins.panelY && int32(y) <= ins.panelY+ins.panelHeight()
}

// Draw renders the panel for the selected point. A point that no longer
// exists, for example after a reset to a smaller shape, clears the selection.
func (ins *Inspector) Draw(src PointSource) {
	if !ins.hasSelected {
		return
	}
	kin, mat, st, err := src.Point(ins.selected)
	if err != nil {
		ins.Deselect()
		return
	}

	x, y := ins.panelX, ins.panelY
	rl.DrawRectangle(x, y, PanelWidth, ins.panelHeight(), ColorPanelBg)
	rl.DrawRectangleLines(x, y, PanelWidth, ins.panelHeight(), ColorPanelBorder)

	rl.DrawRectangle(x, y, PanelWidth, HeaderHeight, ColorPanelHeader)
	title := fmt.Sprintf("Point %d", ins.selected)
	if mat.Role == components.RoleCenter {
		title = "Center"
	}
	rl.DrawText(title, x+PanelPadding, y+6, 16, rl.White)
	y += HeaderHeight + 6

	for _, section := range []struct {
		name string
		data any
	}{
		{"Kinematics", kin},
		{"Material", mat},
		{"Settle", st},
	} {
		rl.DrawText(section.name, x+PanelPadding, y, 14, ColorSectionText)
		y += 18
		for _, f := range ExtractFields(section.data) {
			y += DrawField(x+PanelPadding+6, y, f)
		}
		y += 6
	}
}

// panelHeight fits the three component sections.
func (ins *Inspector) panelHeight() int32 {
	rows := len(ExtractFields(components.Kinematics{})) +
		len(ExtractFields(components.Material{})) +
		len(ExtractFields(components.Settle{}))
	return HeaderHeight + 6 + 3*(18+6) + int32(rows)*18 + PanelPadding
}

// DrawHighlight rings the selected point at screen position (sx, sy).
func (ins *Inspector) DrawHighlight(sx, sy, radius float32) {
	if !ins.hasSelected {
		return
	}
	rl.DrawCircleLines(int32(sx), int32(sy), radius, ColorHighlight)
}
