package wheel

import (
	"fmt"
	"math"
	"strings"
	"time"

	"cogentcore.org/core/ordmap"
)

// Easing maps linear progress in [0, 1] onto eased progress.
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

// EaseOut is a cubic ease-out.
func EaseOut(t float64) float64 { return 1 - math.Pow(1-t, 3) }

func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func Bounce(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

var easings = map[string]Easing{
	"linear":    Linear,
	"easeout":   EaseOut,
	"easeinout": EaseInOut,
	"bounce":    Bounce,
}

// EasingByName looks up a built-in easing, ignoring case.
func EasingByName(name string) (Easing, bool) {
	e, ok := easings[strings.ToLower(name)]
	return e, ok
}

// DefaultDuration is used when a task is registered without a duration.
const DefaultDuration = 800 * time.Millisecond

// TaskID identifies a registered animation.
type TaskID string

// Task is one time based interpolation. From and To have equal length;
// a scalar animation uses one element. Callbacks must not block.
type Task struct {
	Duration   time.Duration
	From, To   []float64
	Easing     Easing
	OnUpdate   func(value []float64, eased float64)
	OnComplete func()
	// OnCancel runs when the task is removed before finishing.
	OnCancel func()

	id     TaskID
	start  time.Time
	active bool
	buf    []float64
}

func (t *Task) ID() TaskID { return t.id }

// Scheduler is a cooperative animation loop. The host calls Tick once per
// frame; the loop is running while at least one task is registered.
type Scheduler struct {
	tasks   ordmap.Map[TaskID, *Task]
	now     func() time.Time
	counter int
	running bool
}

func NewScheduler(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now}
}

// Add registers a task starting now and returns its id.
func (s *Scheduler) Add(t Task) TaskID {
	s.counter++
	t.id = TaskID(fmt.Sprintf("anim_%d", s.counter))
	t.start = s.now()
	t.active = true
	if t.Duration <= 0 {
		t.Duration = DefaultDuration
	}
	if t.Easing == nil {
		t.Easing = EaseOut
	}
	if len(t.To) != len(t.From) {
		panic(fmt.Sprintf("wheel: animation from/to length mismatch %d != %d", len(t.From), len(t.To)))
	}
	t.buf = make([]float64, len(t.From))
	task := &t
	s.tasks.Add(t.id, task)
	s.running = true
	return t.id
}

// Cancel removes a task without running OnComplete.
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.tasks.ValueByKeyTry(id)
	if !ok {
		return false
	}
	s.remove(id)
	if t.OnCancel != nil {
		t.OnCancel()
	}
	return true
}

// Clear cancels every task.
func (s *Scheduler) Clear() {
	for _, id := range s.tasks.Keys() {
		s.Cancel(id)
	}
	s.running = false
}

func (s *Scheduler) remove(id TaskID) {
	if t, ok := s.tasks.ValueByKeyTry(id); ok {
		t.active = false
	}
	s.tasks.DeleteKey(id)
	if s.tasks.Len() == 0 {
		s.running = false
	}
}

// Running reports whether any animation is in flight.
func (s *Scheduler) Running() bool { return s.running }

func (s *Scheduler) Len() int { return s.tasks.Len() }

// Tick advances every active task to the given time in registration order.
// Tasks registered during the tick start on the next one.
func (s *Scheduler) Tick(now time.Time) {
	if !s.running {
		return
	}
	for _, t := range s.tasks.Values() {
		if !t.active {
			continue
		}
		progress := clamp01(float64(now.Sub(t.start)) / float64(t.Duration))
		eased := t.Easing(progress)
		for i := range t.buf {
			t.buf[i] = t.From[i] + (t.To[i]-t.From[i])*eased
		}
		if t.OnUpdate != nil {
			t.OnUpdate(t.buf, eased)
		}
		if progress >= 1 && t.active {
			s.remove(t.id)
			if t.OnComplete != nil {
				t.OnComplete()
			}
		}
	}
}

// TickNow advances to the scheduler's clock.
func (s *Scheduler) TickNow() { s.Tick(s.now()) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
