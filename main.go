package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blob/config"
	"github.com/pthm-cable/blob/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	debug := flag.Bool("debug", false, "Enable debug logging")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N steps (0 = unlimited, headless defaults to 600)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Engine steps per update call (higher = faster headless runs)")
	shape := flag.String("shape", "", "Initial shape: ring, square, star, rose, heart (empty = config)")
	points := flag.Int("points", 0, "Outer point count (0 = config)")
	dragStart := flag.Int64("drag-start", 0, "Headless: step at which the scripted drag begins")
	dragSteps := flag.Int64("drag-steps", 0, "Headless: scripted drag duration in steps (0 = no drag)")
	dragPoint := flag.Int("drag-point", 0, "Headless: outer point index to drag")
	dragDx := flag.Float64("drag-dx", 60, "Headless: drag target x offset")
	dragDy := flag.Float64("drag-dy", 0, "Headless: drag target y offset")
	snapshot := flag.Bool("snapshot", false, "Headless: save a body snapshot when the run ends")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Build game options
	opts := game.Options{
		Config:         cfg,
		Logger:         logger,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
		Shape:          *shape,
		Points:         *points,
		Drag: game.DragScript{
			Start:    *dragStart,
			Duration: *dragSteps,
			Point:    *dragPoint,
			Dx:       *dragDx,
			Dy:       *dragDy,
		},
	}

	if *headless {
		runHeadless(opts, *maxTicks, *snapshot)
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Blob")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		return
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update(float64(rl.GetFrameTime()) * 1000)
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}

// runHeadless steps the scenario at the reference frame rate until maxTicks.
func runHeadless(opts game.Options, maxTicks int, snapshot bool) {
	if maxTicks <= 0 {
		maxTicks = 600
	}

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	slog.Info("starting headless simulation",
		"shape", g.Shape(),
		"points", g.Engine().PointCount(),
		"max_ticks", maxTicks,
		"steps_per_update", opts.StepsPerUpdate,
		"drag_steps", opts.Drag.Duration,
	)

	for int(g.Tick()) < maxTicks {
		g.UpdateHeadless()
	}
	slog.Info("max ticks reached", "tick", g.Tick())
	g.LogSummary()

	if snapshot {
		g.SaveSnapshot()
	}
}
