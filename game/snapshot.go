package game

import (
	"github.com/pthm-cable/blob/telemetry"
)

// DefaultSnapshotDir is used when no output directory is configured.
const DefaultSnapshotDir = "snapshots"

// Snapshot captures the live body state.
func (g *Game) Snapshot() *telemetry.Snapshot {
	w, h := g.engine.Bounds()
	snap := &telemetry.Snapshot{
		Version:      telemetry.SnapshotVersion,
		Step:         g.engine.Steps(),
		Shape:        g.shape,
		Mode:         g.engine.Mode().String(),
		BoundsWidth:  w,
		BoundsHeight: h,
		Blend:        g.engine.Blend(),
		Recovery:     g.engine.Recovery(),
		Interacting:  g.engine.Interacting(),
		Reference:    telemetry.ToVecs(g.collector.ReferenceOutline()),
	}

	rs := g.engine.RenderState()
	vel := g.engine.Velocities()
	if len(vel) != len(rs.Outer)+1 {
		return snap
	}
	snap.Outer = make([]telemetry.PointState, len(rs.Outer))
	for i, p := range rs.Outer {
		snap.Outer[i] = telemetry.NewPointState(p, vel[i], g.engine.Pinned(i))
	}
	snap.Center = telemetry.NewPointState(rs.Center, vel[len(rs.Outer)], false)
	return snap
}

// SaveSnapshot writes the live body state as JSON into the run directory,
// or DefaultSnapshotDir when output is disabled, and returns its path.
func (g *Game) SaveSnapshot() (string, error) {
	var (
		path string
		err  error
	)
	if g.outputManager != nil {
		path, err = g.outputManager.WriteSnapshot(g.Snapshot())
	} else {
		path, err = telemetry.SaveSnapshot(g.Snapshot(), DefaultSnapshotDir)
	}
	if err != nil {
		g.logger.Error("failed to save snapshot", "error", err)
		return "", err
	}
	g.logger.Info("snapshot saved", "path", path, "step", g.engine.Steps())
	return path, nil
}
