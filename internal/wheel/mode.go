package wheel

// modeState is what a mode remembers while the other one is shown.
type modeState struct {
	rotation    float64
	selection   []ID
	initialized bool
}

// SetMode switches between the full and simplified wheel. The outgoing
// mode's rotation and selection are stored; the incoming mode gets its
// stored state back, or a fresh one the first time it is shown.
func (e *Engine) SetMode(simplified bool) {
	target := Full
	if simplified {
		target = Simplified
	}
	// a rotation started in one mode must not keep writing into the other
	e.sched.Clear()

	e.saveState()
	prev := e.mode
	e.mode = target
	e.restoreState()
	if err := e.Generate(); err != nil {
		e.log.Warn("wheel mode switched without a wheel", "to", target, "err", err)
	}
	e.log.Info("wheel mode switched", "from", prev, "to", target, "rotation", e.rotation, "selected", e.selection.Len())
}

func (e *Engine) saveState() {
	e.states[e.mode] = modeState{
		rotation:    e.rotation,
		selection:   e.selection.Keys(),
		initialized: true,
	}
}

func (e *Engine) restoreState() {
	st := e.states[e.mode]
	e.selection.Reset()
	if !st.initialized {
		e.rotation = 0
		return
	}
	e.rotation = st.rotation
	for _, id := range st.selection {
		e.selection.Add(id, struct{}{})
	}
}

// applySelection re-emphasizes every selected wedge in a fresh generation.
// Identifiers that do not resolve are dropped so the shadows always match
// the selection.
func (e *Engine) applySelection() {
	for _, id := range e.selection.Keys() {
		k, err := ParseID(id)
		if err != nil || !e.mode.Has(k.Level) || !e.layers.Emphasize(id) {
			e.log.Debug("selection not restored", "id", id, "mode", e.mode)
			e.selection.DeleteKey(id)
		}
	}
}

// Reset deselects everything in the current mode, stops all animations
// without completing them and returns the rotation to zero. The other
// mode's stored state is left alone.
func (e *Engine) Reset() {
	e.sched.Clear()
	e.ClearSelection()
	e.rotation = 0
	e.states[e.mode] = modeState{initialized: true}
}

// ClearSelection deselects every wedge, emitting one event each, and keeps
// the rotation.
func (e *Engine) ClearSelection() {
	ids := e.selection.Keys()
	e.selection.Reset()
	for _, id := range ids {
		e.deselect(id)
	}
}
