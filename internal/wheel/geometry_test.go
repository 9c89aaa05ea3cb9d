package wheel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/feelings-wheel/internal/taxonomy"
)

const eps = 1e-9

func TestCoreSpansAnchorCentred(t *testing.T) {
	spans := CoreSpans(fortyTaxonomy(t), "Angry")
	require.Len(t, spans, 7)
	assert.Equal(t, "Angry", spans[0].Name)
	assert.InDelta(t, 72, spans[0].Size(), eps)
	assert.InDelta(t, -36, spans[0].Start, eps)
	assert.InDelta(t, 36, spans[0].End, eps)

	total := 0.0
	for i, sp := range spans {
		total += sp.Size()
		if i > 0 {
			assert.InDelta(t, spans[i-1].End, sp.Start, eps, "spans must be contiguous")
		}
	}
	assert.InDelta(t, 360, total, eps)
}

func TestCoreSpansOtherAnchor(t *testing.T) {
	tax := fortyTaxonomy(t)
	spans := CoreSpans(tax, "Sad")
	// Sad has 6 of 40 secondaries: 54 degrees, centred on zero.
	assert.InDelta(t, -27, spans[2].Start, eps)
	assert.InDelta(t, 27, spans[2].End, eps)

	fallback := CoreSpans(tax, "Nope")
	assert.InDelta(t, -36, fallback[0].Start, eps)
}

func TestLayoutFull(t *testing.T) {
	tax := taxonomy.Default()
	g := Layout(tax, Full, 500, DefaultRatios(), "Angry")

	assert.InDelta(t, 247.5, g.Radii.Max, eps)
	assert.InDelta(t, 86.625, g.Radii.Core, eps)
	assert.InDelta(t, 173.25, g.Radii.Secondary, eps)
	assert.InDelta(t, 247.5, g.Radii.Tertiary, eps)
	assert.InDelta(t, 247.5, g.OuterEdge(), eps)

	assert.Len(t, g.Ring(Core), 7)
	assert.Len(t, g.Ring(Secondary), 41)
	assert.Len(t, g.Ring(Tertiary), 82)

	kinds := map[LineKind]int{}
	for _, l := range g.Lines {
		kinds[l.Kind]++
	}
	assert.Equal(t, 7, kinds[PrimaryLine])
	assert.Equal(t, 41-7, kinds[SecondaryLine])
	assert.Equal(t, 41, kinds[DyadLine])
}

func TestLayoutSimplified(t *testing.T) {
	g := Layout(taxonomy.Default(), Simplified, 500, DefaultRatios(), "Angry")
	assert.InDelta(t, 123.75, g.Radii.Core, eps)
	assert.InDelta(t, 247.5, g.Radii.Secondary, eps)
	assert.InDelta(t, 247.5, g.OuterEdge(), eps)
	assert.Len(t, g.Ring(Tertiary), 0)
	assert.Len(t, g.Wedges, 48)
	for _, l := range g.Lines {
		assert.NotEqual(t, DyadLine, l.Kind)
	}
}

// Children tile their parent exactly.
func TestLayoutPartitions(t *testing.T) {
	tax := fortyTaxonomy(t)
	g := Layout(tax, Full, 800, DefaultRatios(), "Angry")

	for _, core := range g.Ring(Core) {
		var secs []Wedge
		for _, w := range g.Ring(Secondary) {
			if w.Family == core.Emotion {
				secs = append(secs, w)
			}
		}
		require.NotEmpty(t, secs)
		assert.InDelta(t, core.StartAngle, secs[0].StartAngle, eps)
		assert.InDelta(t, core.EndAngle, secs[len(secs)-1].EndAngle, eps)
		for _, s := range secs {
			assert.InDelta(t, 9, s.Span(), eps, s.ID)
			var ters []Wedge
			for _, w := range g.Ring(Tertiary) {
				if w.Parent == s.Emotion && w.Family == s.Family {
					ters = append(ters, w)
				}
			}
			require.Len(t, ters, taxonomy.DyadSize)
			assert.InDelta(t, s.StartAngle, ters[0].StartAngle, eps)
			assert.InDelta(t, s.EndAngle, ters[1].EndAngle, eps)
			assert.InDelta(t, ters[0].EndAngle, ters[1].StartAngle, eps)
		}
	}
}

func TestLookup(t *testing.T) {
	g := Layout(taxonomy.Default(), Full, 500, DefaultRatios(), "Angry")
	w, ok := g.Lookup("secondary:Angry:Mad")
	require.True(t, ok)
	assert.Equal(t, "Mad", w.Emotion)
	assert.InDelta(t, g.Radii.Core, w.InnerRadius, eps)
	assert.InDelta(t, g.Radii.Secondary, w.OuterRadius, eps)

	_, ok = g.Lookup("secondary:Angry:Grumpy")
	assert.False(t, ok)

	s := Layout(taxonomy.Default(), Simplified, 500, DefaultRatios(), "Angry")
	_, ok = s.Lookup("tertiary:Angry:Mad:Furious")
	assert.False(t, ok)
}

func TestWedgeContainsWraps(t *testing.T) {
	w := Wedge{StartAngle: -36, EndAngle: 36}
	assert.True(t, w.Contains(0))
	assert.True(t, w.Contains(350))
	assert.True(t, w.Contains(-30))
	assert.True(t, w.Contains(-36))
	assert.False(t, w.Contains(36))
	assert.False(t, w.Contains(40))
	assert.False(t, w.Contains(180))
}

func TestPathD(t *testing.T) {
	g := Layout(taxonomy.Default(), Full, 500, DefaultRatios(), "Angry")
	w, _ := g.Lookup("core:Angry")
	d := g.PathD(w)
	assert.True(t, strings.HasPrefix(d, "M "))
	assert.True(t, strings.HasSuffix(d, " Z"))
	assert.Equal(t, 2, strings.Count(d, " A "))

	full := Wedge{Key: Key{Level: Core, Emotion: "All"}, StartAngle: 0, EndAngle: 360, InnerRadius: 0, OuterRadius: 100}
	assert.Equal(t, 4, strings.Count(g.PathD(full), " A "), "arcs over 180 degrees are split")
}

func TestLabelAnchor(t *testing.T) {
	g := Layout(fortyTaxonomy(t), Full, 500, DefaultRatios(), "Angry")
	core, _ := g.Lookup("core:Angry")
	x, y, base := g.LabelAnchor(core)
	assert.InDelta(t, 0, base, eps)
	assert.InDelta(t, g.CX+g.Radii.Core*0.6, x, 1e-6)
	assert.InDelta(t, g.CY, y, 1e-6)

	sec := g.Ring(Secondary)[0]
	_, _, base = g.LabelAnchor(sec)
	assert.InDelta(t, sec.MidAngle(), base, eps)
}

func TestFontSizes(t *testing.T) {
	for _, size := range []float64{200, 500, 1200} {
		g := Layout(taxonomy.Default(), Full, size, DefaultRatios(), "Angry")
		lo, hi := FontBounds(size)
		for l := Core; l <= Tertiary; l++ {
			assert.GreaterOrEqual(t, g.FontSizes[l], lo)
			assert.LessOrEqual(t, g.FontSizes[l], hi)
		}
	}
	assert.Greater(t, FitFont(100, 200, 30, 4), FitFont(100, 200, 30, 12), "longer labels get smaller fonts")
	assert.Greater(t, FitFont(100, 200, 30, 4), FitFont(100, 200, 3, 4), "narrower wedges get smaller fonts")
	assert.InDelta(t, FitFont(100, 200, 30, 1), FitFont(100, 200, 30, 0), eps)
}

func TestLineWidths(t *testing.T) {
	assert.Equal(t, 2.5, PrimaryLine.Width())
	assert.Equal(t, 1.5, SecondaryLine.Width())
	assert.Equal(t, 0.25, DyadLine.Width())
	assert.Equal(t, "dyad-division-line", DyadLine.String())
}
