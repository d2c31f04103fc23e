package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blob/config"
)

// Tunable is the runtime tuning surface of the engine.
type Tunable interface {
	SetDamping(outer, center *float64)
	SetAnchorStrength(base float64, interact *float64)
	Config() *config.Config
}

// TuningPanel renders raygui sliders over the live engine parameters.
type TuningPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// TuningResult reports what the user did with the panel this frame.
type TuningResult struct {
	Changed bool // A parameter was updated
	Reset   bool // Reset button pressed
}

// NewTuningPanel creates a tuning panel.
func NewTuningPanel(x, y, width int32) *TuningPanel {
	return &TuningPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *TuningPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Toggle switches panel visibility.
func (p *TuningPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *TuningPanel) IsVisible() bool {
	return p.visible
}

// Contains reports whether a screen point lies over the visible panel.
func (p *TuningPanel) Contains(mx, my float32) bool {
	if !p.visible {
		return false
	}
	return mx >= float32(p.x) && mx < float32(p.x+p.width) &&
		my >= float32(p.y) && my < float32(p.y+p.height())
}

func (p *TuningPanel) height() int32 {
	return 4*53 + 90
}

// Draw renders the sliders and applies changes to t.
func (p *TuningPanel) Draw(t Tunable) TuningResult {
	var res TuningResult
	if !p.visible {
		return res
	}

	r := p.renderer
	padding := r.Theme.Padding
	r.DrawPanel(p.x, p.y, p.width, p.height())

	cfg := t.Config()
	panelX := float32(p.x + padding)
	panelY := float32(p.y + padding)
	sliderWidth := float32(p.width - padding*2 - 60)

	rl.DrawText("Tuning", int32(panelX), int32(panelY), 16, rl.White)
	panelY += 25

	slider := func(label, minText, maxText string, value, min, max float32) float32 {
		rl.DrawText(label, int32(panelX), int32(panelY), r.Theme.FontSize, r.Theme.LabelColor)
		panelY += 16
		v := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: sliderWidth, Height: 18},
			minText, maxText,
			value, min, max,
		)
		rl.DrawText(fmt.Sprintf("%.3f", v), int32(panelX+sliderWidth+8), int32(panelY+2), r.Theme.FontSize, r.Theme.ValueColor)
		panelY += 37
		return v
	}

	outer := float32(cfg.Network.OuterDamping)
	if v := slider("Outer damping", "", "", outer, 0, 0.5); v != outer {
		d := float64(v)
		t.SetDamping(&d, nil)
		res.Changed = true
	}

	center := float32(cfg.Network.CenterDamping)
	if v := slider("Center damping", "", "", center, 0, 0.5); v != center {
		d := float64(v)
		t.SetDamping(nil, &d)
		res.Changed = true
	}

	base := float32(cfg.Anchor.Strength)
	if v := slider("Anchor strength", "", "", base, 0, 1); v != base {
		t.SetAnchorStrength(float64(v), nil)
		res.Changed = true
	}

	interact := float32(cfg.Anchor.InteractStrength)
	if v := slider("Anchor (handled)", "", "", interact, 0, 1); v != interact {
		s := float64(v)
		t.SetAnchorStrength(cfg.Anchor.Strength, &s)
		res.Changed = true
	}

	panelY += 5
	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset Shape") {
		res.Reset = true
	}

	return res
}
