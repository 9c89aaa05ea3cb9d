package wheel

import (
	"math"
	"unicode/utf8"
)

const (
	// glyph height may use this share of the ring thickness
	heightShare = 0.6
	// label length may use this share of the ring thickness
	lengthShare = 0.9
	// glyph height may use this share of the arc at the label radius
	arcShare = 0.8
	// average glyph advance relative to the font size
	charWidth = 0.6
	// the core ring is a disc; labels get this share of its radius
	coreThickness = 0.8
)

// FontBounds are the smallest and largest label sizes for a viewport.
func FontBounds(size float64) (lo, hi float64) {
	return math.Max(6, size*0.008), size * 0.08
}

// FitFont is the largest font size at which a label of n characters fits a
// ring of the given thickness, at a label radius where the wedge spans
// spanDeg degrees. The result is not clamped.
func FitFont(thickness, radius, spanDeg float64, n int) float64 {
	if n < 1 {
		n = 1
	}
	size := thickness * heightShare
	size = math.Min(size, thickness*lengthShare/(float64(n)*charWidth))
	arc := radius * spanDeg * math.Pi / 180
	return math.Min(size, arc*arcShare)
}

// solveFontSizes picks one size per ring: the minimum fit across the ring's
// wedges, clamped to the viewport bounds, so labels are uniform and never
// overflow.
func solveFontSizes(g *Geometry) [3]float64 {
	lo, hi := FontBounds(g.Size)
	var sizes [3]float64
	for l := Core; l <= Tertiary; l++ {
		ring := g.Ring(l)
		if len(ring) == 0 {
			continue
		}
		best := math.Inf(1)
		for _, w := range ring {
			thickness := w.OuterRadius - w.InnerRadius
			if l == Core {
				thickness = w.OuterRadius * coreThickness
			}
			fit := FitFont(thickness, labelRadius(w), w.Span(), utf8.RuneCountInString(w.Emotion))
			best = math.Min(best, fit)
		}
		sizes[l] = math.Max(lo, math.Min(hi, best))
	}
	return sizes
}
