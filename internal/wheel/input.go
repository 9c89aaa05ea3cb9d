package wheel

import "math"

type dragState struct {
	pressed      bool
	dragging     bool
	lastAngle    float64
	downX, downY float64
	travel       float64
}

func (e *Engine) local(x, y float64) (float64, float64) {
	return x - e.ox, y - e.oy
}

// pointerAngle is the screen angle of the pointer around the wheel centre.
func (e *Engine) pointerAngle(x, y float64) float64 {
	lx, ly := e.local(x, y)
	return degrees(math.Atan2(ly-e.geom.CY, lx-e.geom.CX))
}

// PointerDown starts a press. The wheel only follows the pointer if no
// animation is running at press time.
func (e *Engine) PointerDown(x, y float64) {
	if e.geom == nil {
		return
	}
	e.drag = dragState{pressed: true, downX: x, downY: y}
	if !e.Animating() {
		e.drag.dragging = true
		e.drag.lastAngle = e.pointerAngle(x, y)
	}
}

// PointerMove turns the wheel by the change in pointer angle since the last
// move, taken the short way round.
func (e *Engine) PointerMove(x, y float64) {
	if !e.drag.pressed {
		return
	}
	e.drag.travel = math.Max(e.drag.travel, math.Hypot(x-e.drag.downX, y-e.drag.downY))
	if !e.drag.dragging || e.Animating() || e.geom == nil {
		return
	}
	a := e.pointerAngle(x, y)
	e.rotation += ShortestPath(e.drag.lastAngle, a)
	e.drag.lastAngle = a
}

// PointerUp ends a press. A press that stayed within the click slop is a
// click: the wedge under the pointer, if any, is toggled and returned.
func (e *Engine) PointerUp(x, y float64) (ID, bool) {
	if !e.drag.pressed {
		return "", false
	}
	travel := math.Max(e.drag.travel, math.Hypot(x-e.drag.downX, y-e.drag.downY))
	e.drag = dragState{}
	if travel > e.clickSlop {
		return "", false
	}
	id, ok := e.HitTest(x, y)
	if !ok {
		return "", false
	}
	if err := e.ToggleSelection(id); err != nil {
		return "", false
	}
	return id, true
}

// Dragging reports whether a press is currently turning the wheel.
func (e *Engine) Dragging() bool { return e.drag.dragging }

// Scroll turns the wheel one step per call; positive dy is clockwise.
// Scrolling is ignored while an animation runs.
func (e *Engine) Scroll(dy float64) {
	if dy == 0 || e.Animating() {
		return
	}
	if dy > 0 {
		e.rotation += e.scrollStep
	} else {
		e.rotation -= e.scrollStep
	}
}

// HitTest finds the wedge under a screen point, taking the rotation into
// account.
func (e *Engine) HitTest(x, y float64) (ID, bool) {
	if e.geom == nil {
		return "", false
	}
	lx, ly := e.local(x, y)
	dx, dy := lx-e.geom.CX, ly-e.geom.CY
	r := math.Hypot(dx, dy)

	var level Level
	switch {
	case r < e.geom.Radii.Core:
		level = Core
	case r < e.geom.Radii.Secondary:
		level = Secondary
	case r <= e.geom.OuterEdge() && e.mode == Full:
		level = Tertiary
	case r <= e.geom.OuterEdge():
		level = Secondary
	default:
		return "", false
	}
	angle := degrees(math.Atan2(dy, dx)) - e.rotation
	for _, w := range e.geom.Wedges {
		if w.Level == level && w.Contains(angle) {
			return w.ID, true
		}
	}
	return "", false
}
