package game

import (
	"log/slog"

	"github.com/pthm-cable/blob/telemetry"
)

// LogSummary logs the current body state against the shape's initial outline.
func (g *Game) LogSummary() {
	ws := telemetry.Measure(g.sample(), g.collector.ReferenceOutline())
	g.logger.Info("summary",
		"shape", g.shape,
		"mode", g.engine.Mode().String(),
		"steps", g.engine.Steps(),
		slog.Any("state", ws),
		slog.Any("perf", g.perfCollector.Stats()),
	)
}
