package wheel

import (
	"image"
	"io"
	"log/slog"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/feelings-wheel/internal/taxonomy"
)

type box image.Rectangle

func (b box) Bounds() image.Rectangle { return image.Rectangle(b) }

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fortyTaxonomy is the default wheel with one Happy secondary removed, so
// the circle divides into 40 equal secondary slots of 9 degrees.
func fortyTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	def := taxonomy.Default()
	sec := map[string][]string{}
	for k, v := range def.Secondary {
		sec[k] = slices.Clone(v)
	}
	ter := map[string][]string{}
	for k, v := range def.Tertiary {
		ter[k] = slices.Clone(v)
	}
	sec["Happy"] = slices.DeleteFunc(sec["Happy"], func(s string) bool { return s == "Optimistic" })
	delete(ter, "Optimistic")
	tax, err := taxonomy.New(slices.Clone(def.Cores), sec, ter)
	require.NoError(t, err)
	require.Equal(t, 40, tax.TotalSecondary())
	return tax
}

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	opts = append([]Option{WithClock(clock.Now), WithLogger(quietLogger())}, opts...)
	e := New(box(image.Rect(0, 0, 500, 500)), taxonomy.Default(), opts...)
	require.NoError(t, e.Generate())
	return e, clock
}

// screenPoint is the screen position at a radius and screen angle around
// the wheel centre.
func screenPoint(e *Engine, r, deg float64) (float64, float64) {
	g := e.Geometry()
	ox, oy := e.Origin()
	rad := deg * math.Pi / 180
	return ox + g.CX + r*math.Cos(rad), oy + g.CY + r*math.Sin(rad)
}

func mustID(t *testing.T, e *Engine, level Level, emotion, parent string) ID {
	t.Helper()
	id, err := MakeID(e.Taxonomy(), level, emotion, parent)
	require.NoError(t, err)
	return id
}
