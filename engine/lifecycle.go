package engine

import "github.com/pthm-cable/blob/systems"

// teardown removes every point and constraint of the live body.
func (e *Engine) teardown() {
	if e.body == nil {
		return
	}
	id := e.bodyID
	systems.DestroyNetwork(e.store, e.body)
	e.body = nil
	e.bodyID = 0
	e.logger.Debug("soft body destroyed", "id", id, "points_left", e.store.Len())
}

// Close releases the live body.
func (e *Engine) Close() {
	e.teardown()
}
