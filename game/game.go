// Package game hosts the blob engine: a raylib viewer with pointer input
// and overlays, and a headless scenario runner with telemetry output.
package game

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/blob/camera"
	"github.com/pthm-cable/blob/config"
	"github.com/pthm-cable/blob/engine"
	"github.com/pthm-cable/blob/inspector"
	"github.com/pthm-cable/blob/renderer"
	"github.com/pthm-cable/blob/telemetry"
	"github.com/pthm-cable/blob/ui"
)

// Options configures a game instance.
type Options struct {
	Config         *config.Config // Nil uses config.Cfg()
	Logger         *slog.Logger   // Nil uses slog.Default()
	LogStats       bool           // Log window stats via slog
	OutputDir      string         // CSV and config snapshot directory (empty = disabled)
	Headless       bool           // No window, fixed timestep
	StepsPerUpdate int            // Engine steps per Update call
	Shape          string         // Initial shape preset (empty = config)
	Points         int            // Outer point count (0 = config)
	Drag           DragScript     // Scripted drag for headless runs
}

// Game holds the host state around one engine.
type Game struct {
	cfg    *config.Config
	logger *slog.Logger
	engine *engine.Engine

	// Shape
	shape  string
	points int

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)

	// Rendering (nil when headless)
	camera    *camera.Camera
	blob      *renderer.BlobRenderer
	inspector *inspector.Inspector
	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	controls  *ui.ControlsPanel
	tuning    *ui.TuningPanel
	overlays  *ui.OverlayRegistry

	// Pointer state
	dragIndex int // Outer point held by the mouse, -1 when none
	pinching  bool
	drag      DragScript

	// State
	headless       bool
	paused         bool
	stepsPerUpdate int

	// Window dimensions
	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game, builds the initial shape and opens
// telemetry output. Graphical mode requires an open raylib window.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Game{
		cfg:            cfg,
		logger:         logger,
		shape:          cfg.Host.Shape,
		points:         cfg.Host.Points,
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: max(opts.StepsPerUpdate, MinStepsPerUpdate),
		drag:           opts.Drag,
		dragIndex:      -1,
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
	}
	if g.screenWidth <= 0 || g.screenHeight <= 0 {
		g.screenWidth, g.screenHeight = ScreenWidth, ScreenHeight
	}
	if opts.Shape != "" {
		g.shape = opts.Shape
	}
	if opts.Points > 0 {
		g.points = opts.Points
	}

	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	g.collector = telemetry.NewCollector(cfg.Telemetry.StatsWindow)

	g.engine = engine.New(engine.Options{
		Config: cfg,
		Logger: logger,
		Perf:   g.perfCollector,
	})
	g.engine.SetBounds(float64(g.screenWidth), float64(g.screenHeight))

	if err := g.loadShape(g.shape); err != nil {
		g.engine.Close()
		return nil, err
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		g.engine.Close()
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(g.engine.Config()); err != nil {
		logger.Error("failed to write config snapshot", "error", err)
	}

	if !g.headless {
		g.camera = camera.New(g.screenWidth, g.screenHeight, g.screenWidth, g.screenHeight)
		g.blob = renderer.NewBlobRenderer(g.camera)
		g.inspector = inspector.NewInspector(int32(g.screenWidth))
		g.hud = ui.NewHUD()
		g.perfPanel = ui.NewPerfPanel(0, 0)
		g.controls = ui.NewControlsPanel(240, 80, 200)
		g.tuning = ui.NewTuningPanel(0, 0, 250)
		g.overlays = ui.NewOverlayRegistry()
		g.layoutPanels()
	}

	return g, nil
}

// SetStatsCallback registers a function called with every flushed stats window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Engine returns the hosted engine.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Shape returns the active shape preset name.
func (g *Game) Shape() string {
	return g.shape
}

// Update handles input, then runs stepsPerUpdate steps of the frame time.
func (g *Game) Update(dtMs float64) {
	g.handleInput()
	g.perfCollector.RecordFrame()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep(dtMs)
	}
}

// UpdateHeadless runs stepsPerUpdate steps at the reference frame duration.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep(g.cfg.Simulation.FrameMs)
	}
}

// Tick returns the number of completed engine steps.
func (g *Game) Tick() int64 {
	return g.engine.Steps()
}

// Unload flushes output and releases the engine.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		g.logger.Error("failed to close output", "error", err)
	}
	g.engine.Close()
}

// screenCenter returns the middle of the containment rectangle.
func (g *Game) screenCenter() r2.Vec {
	return r2.Vec{X: float64(g.screenWidth) / 2, Y: float64(g.screenHeight) / 2}
}
