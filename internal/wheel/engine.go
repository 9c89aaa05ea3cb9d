// Package wheel is the headless feelings wheel: layout, selection,
// rotation and animation. A host feeds it pointer and keyboard input,
// calls Tick once per frame and draws what Layers and Geometry describe.
package wheel

import (
	"errors"
	"image"
	"log/slog"
	"math"
	"time"

	"cogentcore.org/core/ordmap"

	"github.com/iburimskiy/feelings-wheel/internal/taxonomy"
)

var (
	ErrWedgeNotFound     = errors.New("wedge not found")
	ErrAnimationCanceled = errors.New("animation canceled")
	ErrEmptyContainer    = errors.New("container has no area")
)

// Container is whatever the wheel is drawn into. Only its bounds are used;
// the wheel is the largest square centred inside them.
type Container interface {
	Bounds() image.Rectangle
}

// SelectionEvent is sent to subscribers whenever a wedge is selected or
// deselected.
type SelectionEvent struct {
	ID       ID
	Emotion  string
	Level    Level
	Selected bool
}

// Option configures an Engine.
type Option func(*Engine)

func WithRatios(r Ratios) Option { return func(e *Engine) { e.ratios = r } }

// WithAnchor names the core centred at angle zero.
func WithAnchor(name string) Option { return func(e *Engine) { e.anchor = name } }

func WithShadowStyle(s ShadowStyle) Option { return func(e *Engine) { e.shadow = s } }

func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

func WithLogger(l *slog.Logger) Option { return func(e *Engine) { e.log = l } }

// WithScrollStep sets the degrees turned per scroll notch.
func WithScrollStep(deg float64) Option { return func(e *Engine) { e.scrollStep = deg } }

// WithClickSlop sets how far, in pixels, the pointer may travel between
// press and release and still count as a click.
func WithClickSlop(px float64) Option { return func(e *Engine) { e.clickSlop = px } }

// Engine owns all wheel state. It is not safe for concurrent use; the host
// drives it from its update loop.
type Engine struct {
	container Container
	tax       *taxonomy.Taxonomy
	ratios    Ratios
	anchor    string
	shadow    ShadowStyle
	now       func() time.Time
	log       *slog.Logger

	scrollStep float64
	clickSlop  float64

	mode      Mode
	rotation  float64
	selection ordmap.Map[ID, struct{}]
	states    [2]modeState

	geom   *Geometry
	layers *Layers
	ox, oy float64

	sched        *Scheduler
	rotationTask TaskID

	listeners    ordmap.Map[int, func(SelectionEvent)]
	nextListener int

	drag dragState
}

// New builds an engine in full mode with nothing selected. Call Generate
// before drawing.
func New(c Container, tax *taxonomy.Taxonomy, opts ...Option) *Engine {
	e := &Engine{
		container:  c,
		tax:        tax,
		ratios:     DefaultRatios(),
		anchor:     "Angry",
		shadow:     DefaultShadowStyle(),
		now:        time.Now,
		log:        slog.Default(),
		scrollStep: 5,
		clickSlop:  4,
		mode:       Full,
	}
	for _, o := range opts {
		o(e)
	}
	if e.anchor == "" && len(tax.Cores) > 0 {
		e.anchor = tax.Cores[0].Name
	}
	e.layers = newLayers(e.shadow)
	e.sched = NewScheduler(e.now)
	return e
}

// Generate rebuilds the wheel for the current mode and container size.
// Selected wedges are emphasized again in the new generation.
func (e *Engine) Generate() error {
	b := e.container.Bounds()
	size := math.Min(float64(b.Dx()), float64(b.Dy()))
	if size <= 0 {
		// drop the previous generation so no stale wedges or shadows remain;
		// the selection is kept and re-applied on the next Generate
		e.geom = nil
		e.layers.load(nil, nil)
		e.log.Warn("wheel not generated", "bounds", b.String())
		return ErrEmptyContainer
	}
	e.ox = float64(b.Min.X) + (float64(b.Dx())-size)/2
	e.oy = float64(b.Min.Y) + (float64(b.Dy())-size)/2

	e.geom = Layout(e.tax, e.mode, size, e.ratios, e.anchor)
	pairs := make([]*Pair, 0, len(e.geom.Wedges))
	for _, w := range e.geom.Wedges {
		x, y, base := e.geom.LabelAnchor(w)
		pairs = append(pairs, &Pair{
			Path: PathNode{
				ID:     w.ID,
				Wedge:  w,
				D:      e.geom.PathD(w),
				Fill:   ResolveColor(e.tax, w.Key),
				Stroke: StrokeColor,
			},
			Text: TextNode{
				ID:        w.ID,
				Text:      w.Emotion,
				X:         x,
				Y:         y,
				BaseAngle: base,
				FontSize:  e.geom.FontSizes[w.Level],
				Fill:      LabelColor,
			},
		})
	}
	e.layers.load(pairs, e.geom.Lines)
	e.applySelection()
	e.states[e.mode].initialized = true
	e.log.Debug("wheel generated",
		"mode", e.mode,
		"size", size,
		"wedges", len(e.geom.Wedges),
		"lines", len(e.geom.Lines),
	)
	return nil
}

// ToggleSelection flips the selection state of a wedge and notifies
// subscribers.
func (e *Engine) ToggleSelection(id ID) error {
	if _, ok := e.layers.Pair(id); !ok {
		e.log.Debug("toggle skipped", "id", id, "err", ErrWedgeNotFound)
		return ErrWedgeNotFound
	}
	if _, ok := e.selection.ValueByKeyTry(id); ok {
		e.selection.DeleteKey(id)
		e.deselect(id)
		return nil
	}
	e.selection.Add(id, struct{}{})
	e.layers.Emphasize(id)
	e.emit(id, true)
	return nil
}

func (e *Engine) deselect(id ID) {
	e.layers.Deemphasize(id)
	e.emit(id, false)
}

func (e *Engine) emit(id ID, selected bool) {
	ev := SelectionEvent{ID: id, Selected: selected}
	if p, ok := e.layers.Pair(id); ok {
		ev.Emotion = p.Path.Wedge.Emotion
		ev.Level = p.Path.Wedge.Level
	} else if k, err := ParseID(id); err == nil {
		ev.Emotion, ev.Level = k.Emotion, k.Level
	}
	e.log.Debug("selection changed", "id", id, "selected", selected)
	for _, fn := range e.listeners.Values() {
		fn(ev)
	}
}

// Subscribe registers a selection listener and returns a function that
// removes it. Listeners run synchronously in registration order.
func (e *Engine) Subscribe(fn func(SelectionEvent)) (cancel func()) {
	e.nextListener++
	key := e.nextListener
	e.listeners.Add(key, fn)
	return func() { e.listeners.DeleteKey(key) }
}

// AnimateRotation turns the wheel the short way round to target. A rotation
// already in flight is canceled first. The returned channel receives nil
// when the animation completes or ErrAnimationCanceled if it is canceled,
// and is then closed. A duration of zero or less jumps straight to target.
func (e *Engine) AnimateRotation(target float64, d time.Duration, easing Easing) <-chan error {
	done := make(chan error, 1)
	if e.rotationTask != "" {
		e.sched.Cancel(e.rotationTask)
	}
	if d <= 0 {
		e.rotation = target
		done <- nil
		close(done)
		return done
	}
	start := e.rotation
	end := start + ShortestPath(start, target)

	var id TaskID
	id = e.sched.Add(Task{
		Duration: d,
		From:     []float64{start},
		To:       []float64{end},
		Easing:   easing,
		OnUpdate: func(v []float64, _ float64) {
			e.rotation = v[0]
		},
		OnComplete: func() {
			e.rotation = target
			e.finishRotation(id)
			done <- nil
			close(done)
		},
		OnCancel: func() {
			e.finishRotation(id)
			done <- ErrAnimationCanceled
			close(done)
		},
	})
	e.rotationTask = id
	return done
}

func (e *Engine) finishRotation(id TaskID) {
	if e.rotationTask == id {
		e.rotationTask = ""
	}
}

// RotateBy starts an animated turn relative to the current rotation.
func (e *Engine) RotateBy(delta float64, d time.Duration, easing Easing) <-chan error {
	return e.AnimateRotation(e.rotation+delta, d, easing)
}

// Tick advances animations to the given time.
func (e *Engine) Tick(now time.Time) { e.sched.Tick(now) }

// Update advances animations to the engine clock.
func (e *Engine) Update() { e.sched.TickNow() }

func (e *Engine) Rotation() float64 { return e.rotation }

// SetRotation sets the rotation directly, outside of any animation.
func (e *Engine) SetRotation(deg float64) { e.rotation = deg }

func (e *Engine) Mode() Mode { return e.mode }

// Selection lists the selected wedges in selection order.
func (e *Engine) Selection() []ID { return e.selection.Keys() }

func (e *Engine) IsSelected(id ID) bool {
	_, ok := e.selection.ValueByKeyTry(id)
	return ok
}

func (e *Engine) Animating() bool { return e.sched.Running() }

func (e *Engine) Layers() *Layers { return e.layers }

// Geometry is nil until the first successful Generate.
func (e *Engine) Geometry() *Geometry { return e.geom }

func (e *Engine) Taxonomy() *taxonomy.Taxonomy { return e.tax }

// Origin is the screen position of the wheel square's top-left corner.
func (e *Engine) Origin() (x, y float64) { return e.ox, e.oy }

// ShortestPath is the signed turn from the current rotation to target.
func (e *Engine) ShortestPath(target float64) float64 {
	return ShortestPath(e.rotation, target)
}

// LabelAngle is the on-screen angle, in wheel space, a label is drawn at.
func (e *Engine) LabelAngle(t *TextNode) float64 {
	return TextRotation(t.BaseAngle, e.rotation)
}
