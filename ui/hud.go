package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blob/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title          string
	Mode           string
	Shape          string
	Points         int
	BodyID         uint32
	Blend          float64
	Recovery       float64
	Interacting    bool
	MaxSpeed       float64
	Steps          int64
	StepsPerUpdate int
	FPS            int32
	Paused         bool
}

// StatusSections describes the body status panel.
func StatusSections() []SectionDescriptor {
	hud := func(data any) HUDData {
		d, _ := data.(HUDData)
		return d
	}
	return []SectionDescriptor{
		{
			ID:    "body",
			Title: "Body",
			Fields: []FieldDescriptor{
				{ID: "shape", Label: "Shape", Widget: WidgetText, TextGetter: func(d any) string { return hud(d).Shape }},
				{ID: "mode", Label: "Mode", Widget: WidgetText, TextGetter: func(d any) string { return hud(d).Mode }},
				{ID: "id", Label: "Body", Widget: WidgetText, TextGetter: func(d any) string { return fmt.Sprintf("#%d", hud(d).BodyID) }},
				{ID: "points", Label: "Points", Widget: WidgetText, Format: "%.0f", Getter: func(d any) float32 { return float32(hud(d).Points) }},
			},
		},
		{
			ID:    "interaction",
			Title: "Interaction",
			Fields: []FieldDescriptor{
				{ID: "active", Label: "Active", Widget: WidgetText, TextGetter: func(d any) string { return yesNo(hud(d).Interacting) }},
				{ID: "blend", Label: "Blend", Widget: WidgetBar, Range: DefaultRange(), Getter: func(d any) float32 { return float32(hud(d).Blend) }},
				{ID: "recovery", Label: "Recovery", Widget: WidgetBar, Range: DefaultRange(), Getter: func(d any) float32 { return float32(hud(d).Recovery) }},
			},
		},
		{
			ID:    "motion",
			Title: "Motion",
			Fields: []FieldDescriptor{
				{ID: "max_speed", Label: "Max speed", Widget: WidgetText, Format: "%.3f", Getter: func(d any) float32 { return float32(hud(d).MaxSpeed) }},
			},
		},
	}
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	sections []SectionDescriptor
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		sections: StatusSections(),
		width:    220,
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Steps: %d | Speed: %dx | FPS: %d", data.Steps, data.StepsPerUpdate, data.FPS),
		10, 35, 16, rl.LightGray,
	)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 55, 16, rl.Yellow)

	r := h.renderer
	padding := r.Theme.Padding
	var height int32
	for _, sd := range h.sections {
		height += r.SectionHeight(sd, data)
	}
	x, y := int32(10), int32(80)
	r.DrawPanel(x, y, h.width, height+padding*2)
	y += padding
	for _, sd := range h.sections {
		y = r.DrawSection(x+padding, y, sd, data, h.width-padding*2)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the per-phase step timing panel.
type PerfPanel struct {
	renderer *Renderer
	registry *telemetry.PhaseRegistry
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		registry: telemetry.NewPhaseRegistry(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel with phases in step order.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y

	rl.DrawText("Step Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Tick: %s (%.0f/s)", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond), x, y, 14, rl.Yellow)
	y += 16

	for _, info := range p.registry.All() {
		avg := stats.PhaseAvg[info.ID]
		pct := stats.PhasePct[info.ID]

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 30 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-12s %6s %5.1f%%", info.Name, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
