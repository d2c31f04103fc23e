package game

// Screen dimensions used when the config leaves them unset.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Steps-per-update bounds for the < > keys.
const (
	MinStepsPerUpdate = 1
	MaxStepsPerUpdate = 10
)

// Camera controls.
const (
	PanSpeed       = 8.0  // Screen pixels per frame at 1x zoom
	WheelZoomStep  = 0.1  // Zoom factor change per wheel notch
	KeyZoomFactor  = 1.25 // Zoom factor per +/- press
	HighlightRange = 8.0  // Inspector highlight ring radius in pixels
)

// DragScript describes a scripted pointer drag for headless runs.
// A zero Duration disables it.
type DragScript struct {
	Start    int64   // Step at which the pointer goes down
	Duration int64   // Steps the pointer stays down
	Point    int     // Outer point index to pull
	Dx, Dy   float64 // Target offset from the point's rest position
}

// Active reports whether the drag is held at the given step.
func (d DragScript) Active(step int64) bool {
	return d.Duration > 0 && step >= d.Start && step < d.Start+d.Duration
}
