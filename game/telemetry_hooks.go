package game

import (
	"github.com/pthm-cable/blob/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and writes it out.
func (g *Game) flushTelemetry() {
	step := g.engine.Steps()
	if !g.collector.ShouldFlush(step) {
		return
	}

	stats := g.collector.Flush(g.sample())
	perfStats := g.perfCollector.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			g.logger.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndStep); err != nil {
			g.logger.Error("failed to write perf", "error", err)
		}
	}
}

// sample captures the engine state for telemetry.
func (g *Game) sample() telemetry.Sample {
	return telemetry.Sample{
		Step:        g.engine.Steps(),
		Outer:       g.engine.RenderState().Outer,
		Velocities:  g.engine.Velocities(),
		Anchors:     g.engine.Anchors(),
		Blend:       g.engine.Blend(),
		Recovery:    g.engine.Recovery(),
		Interacting: g.engine.Interacting(),
	}
}
