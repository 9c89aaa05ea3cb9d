package wheel

import (
	"fmt"
	"math"
	"strings"

	"github.com/iburimskiy/feelings-wheel/internal/taxonomy"
)

// Mode selects how many rings the wheel draws.
type Mode int

const (
	Full Mode = iota
	Simplified
)

func (m Mode) String() string {
	if m == Simplified {
		return "simplified"
	}
	return "full"
}

// Has reports whether the ring exists in this mode.
func (m Mode) Has(l Level) bool {
	return l != Tertiary || m == Full
}

// Ratios scale the rings against the available square. Ring ratios are
// fractions of the maximum radius.
type Ratios struct {
	Utilization   float64
	FullCore      float64
	FullSecondary float64
	SimpleCore    float64
}

func DefaultRatios() Ratios {
	return Ratios{Utilization: 0.99, FullCore: 0.35, FullSecondary: 0.70, SimpleCore: 0.5}
}

// Radii are the outer radius of each ring. In simplified mode Tertiary
// equals Secondary.
type Radii struct {
	Core      float64
	Secondary float64
	Tertiary  float64
	Max       float64
}

func (r Radii) bounds(l Level) (inner, outer float64) {
	switch l {
	case Core:
		return 0, r.Core
	case Secondary:
		return r.Core, r.Secondary
	}
	return r.Secondary, r.Tertiary
}

// Span is an angular interval in degrees.
type Span struct {
	Name  string
	Start float64
	End   float64
}

func (s Span) Size() float64 { return s.End - s.Start }

// Wedge describes one annular sector. Angles are degrees, clockwise on
// screen from the positive x axis.
type Wedge struct {
	Key
	ID          ID
	StartAngle  float64
	EndAngle    float64
	InnerRadius float64
	OuterRadius float64
}

func (w Wedge) Span() float64     { return w.EndAngle - w.StartAngle }
func (w Wedge) MidAngle() float64 { return (w.StartAngle + w.EndAngle) / 2 }

// Contains reports whether an unrotated angle falls inside the wedge.
func (w Wedge) Contains(angle float64) bool {
	return Normalize(angle-w.StartAngle) < w.Span()
}

// Line is a division line in wheel space.
type Line struct {
	Kind           LineKind
	X1, Y1, X2, Y2 float64
}

type LineKind int

const (
	PrimaryLine LineKind = iota
	SecondaryLine
	DyadLine
)

var lineWidths = [...]float64{2.5, 1.5, 0.25}

func (k LineKind) Width() float64 { return lineWidths[k] }

func (k LineKind) String() string {
	return [...]string{"primary-division-line", "secondary-division-line", "dyad-division-line"}[k]
}

// Geometry is the full layout of one wheel generation. It is rebuilt, never
// edited, whenever the mode or the viewport size changes.
type Geometry struct {
	Mode      Mode
	Size      float64
	CX, CY    float64
	Radii     Radii
	Wedges    []Wedge
	Lines     []Line
	FontSizes [3]float64

	index map[ID]int
}

// CoreSpans divides the circle among cores proportionally to their
// secondary counts, rotated so that the anchor core is centred at 0 degrees.
// An unknown anchor falls back to the first core.
func CoreSpans(tax *taxonomy.Taxonomy, anchor string) []Span {
	total := float64(tax.TotalSecondary())
	sizes := make([]float64, len(tax.Cores))
	anchorIdx := 0
	for i, c := range tax.Cores {
		sizes[i] = 360 * float64(len(tax.Secondary[c.Name])) / total
		if c.Name == anchor {
			anchorIdx = i
		}
	}
	start := -sizes[anchorIdx] / 2
	for i := 0; i < anchorIdx; i++ {
		start -= sizes[i]
	}
	spans := make([]Span, len(tax.Cores))
	for i, c := range tax.Cores {
		spans[i] = Span{Name: c.Name, Start: start, End: start + sizes[i]}
		start += sizes[i]
	}
	return spans
}

// Layout computes every wedge, division line and ring font size for a
// square viewport of the given side.
func Layout(tax *taxonomy.Taxonomy, mode Mode, size float64, ratios Ratios, anchor string) *Geometry {
	g := &Geometry{Mode: mode, Size: size, CX: size / 2, CY: size / 2}
	maxR := size * ratios.Utilization / 2
	g.Radii.Max = maxR
	if mode == Simplified {
		g.Radii.Core = maxR * ratios.SimpleCore
		g.Radii.Secondary = maxR
		g.Radii.Tertiary = maxR
	} else {
		g.Radii.Core = maxR * ratios.FullCore
		g.Radii.Secondary = maxR * ratios.FullSecondary
		g.Radii.Tertiary = maxR
	}

	spans := CoreSpans(tax, anchor)
	for _, sp := range spans {
		g.add(Key{Level: Core, Emotion: sp.Name}, sp.Start, sp.End)
	}
	for _, sp := range spans {
		secs := tax.Secondary[sp.Name]
		per := sp.Size() / float64(len(secs))
		for i, s := range secs {
			start := sp.Start + float64(i)*per
			g.add(Key{Level: Secondary, Family: sp.Name, Emotion: s}, start, start+per)
		}
	}
	if mode.Has(Tertiary) {
		for _, sp := range spans {
			secs := tax.Secondary[sp.Name]
			per := sp.Size() / float64(len(secs))
			for i, s := range secs {
				ters := tax.Tertiary[s]
				tper := per / float64(len(ters))
				for j, te := range ters {
					start := sp.Start + float64(i)*per + float64(j)*tper
					g.add(Key{Level: Tertiary, Family: sp.Name, Parent: s, Emotion: te}, start, start+tper)
				}
			}
		}
	}

	g.Lines = g.divisionLines(tax, spans)
	g.FontSizes = solveFontSizes(g)
	return g
}

func (g *Geometry) add(k Key, start, end float64) {
	inner, outer := g.Radii.bounds(k.Level)
	w := Wedge{Key: k, ID: k.ID(), StartAngle: start, EndAngle: end, InnerRadius: inner, OuterRadius: outer}
	if g.index == nil {
		g.index = map[ID]int{}
	}
	g.index[w.ID] = len(g.Wedges)
	g.Wedges = append(g.Wedges, w)
}

// Lookup finds the wedge with the given identifier in this generation.
func (g *Geometry) Lookup(id ID) (Wedge, bool) {
	i, ok := g.index[id]
	if !ok {
		return Wedge{}, false
	}
	return g.Wedges[i], true
}

// Ring returns the wedges of one level in layout order.
func (g *Geometry) Ring(l Level) []Wedge {
	var out []Wedge
	for _, w := range g.Wedges {
		if w.Level == l {
			out = append(out, w)
		}
	}
	return out
}

// OuterEdge is the radius of the outermost drawn ring.
func (g *Geometry) OuterEdge() float64 {
	if g.Mode == Simplified {
		return g.Radii.Secondary
	}
	return g.Radii.Tertiary
}

// Point returns the wheel-space coordinates at a radius and angle.
func (g *Geometry) Point(radius, angleDeg float64) (x, y float64) {
	rad := angleDeg * math.Pi / 180
	return g.CX + radius*math.Cos(rad), g.CY + radius*math.Sin(rad)
}

// LabelAnchor is where a wedge's text is centred and its radial base angle.
func (g *Geometry) LabelAnchor(w Wedge) (x, y, baseAngle float64) {
	r := labelRadius(w)
	mid := w.MidAngle()
	x, y = g.Point(r, mid)
	return x, y, mid
}

func labelRadius(w Wedge) float64 {
	if w.Level == Core {
		return w.OuterRadius * 0.6
	}
	return (w.InnerRadius + w.OuterRadius) / 2
}

// PathD renders the wedge as an SVG path: inner edge point, radial edge
// out, outer arc, radial edge in, inner arc back. Arcs wider than 180
// degrees are split so a full circle still draws.
func (g *Geometry) PathD(w Wedge) string {
	var b strings.Builder
	x1, y1 := g.Point(w.InnerRadius, w.StartAngle)
	x2, y2 := g.Point(w.OuterRadius, w.StartAngle)
	fmt.Fprintf(&b, "M %.3f %.3f L %.3f %.3f", x1, y1, x2, y2)
	g.arc(&b, w.OuterRadius, w.StartAngle, w.EndAngle, 1)
	x4, y4 := g.Point(w.InnerRadius, w.EndAngle)
	fmt.Fprintf(&b, " L %.3f %.3f", x4, y4)
	g.arc(&b, w.InnerRadius, w.EndAngle, w.StartAngle, 0)
	b.WriteString(" Z")
	return b.String()
}

func (g *Geometry) arc(b *strings.Builder, r, from, to float64, sweep int) {
	if math.Abs(to-from) > 180 {
		mid := (from + to) / 2
		g.arc(b, r, from, mid, sweep)
		g.arc(b, r, mid, to, sweep)
		return
	}
	x, y := g.Point(r, to)
	fmt.Fprintf(b, " A %.3f %.3f 0 0 %d %.3f %.3f", r, r, sweep, x, y)
}

func (g *Geometry) divisionLines(tax *taxonomy.Taxonomy, spans []Span) []Line {
	edge := g.OuterEdge()
	var lines []Line
	radial := func(kind LineKind, angle, from, to float64) {
		x1, y1 := g.Point(from, angle)
		x2, y2 := g.Point(to, angle)
		lines = append(lines, Line{Kind: kind, X1: x1, Y1: y1, X2: x2, Y2: y2})
	}
	for _, sp := range spans {
		radial(PrimaryLine, sp.End, 0, edge)
	}
	for _, sp := range spans {
		secs := tax.Secondary[sp.Name]
		per := sp.Size() / float64(len(secs))
		for i := 1; i < len(secs); i++ {
			radial(SecondaryLine, sp.Start+float64(i)*per, g.Radii.Core, edge)
		}
	}
	if g.Mode.Has(Tertiary) {
		for _, sp := range spans {
			secs := tax.Secondary[sp.Name]
			per := sp.Size() / float64(len(secs))
			for i, s := range secs {
				ters := tax.Tertiary[s]
				tper := per / float64(len(ters))
				for j := 1; j < len(ters); j++ {
					radial(DyadLine, sp.Start+float64(i)*per+float64(j)*tper, g.Radii.Secondary, g.Radii.Tertiary)
				}
			}
		}
	}
	return lines
}
