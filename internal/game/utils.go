package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/feelings-wheel/internal/wheel"
)

// rgba converts a wheel color to 8-bit RGBA with the given opacity.
func rgba(c colorful.Color, alpha float64) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

// paintVertices sets every vertex to a straight-alpha color and points it at
// the white source pixel.
func paintVertices(vs []ebiten.Vertex, c colorful.Color, alpha float64) {
	c = c.Clamped()
	a := float32(clamp01(alpha))
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R)
		vs[i].ColorG = float32(c.G)
		vs[i].ColorB = float32(c.B)
		vs[i].ColorA = a
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDegrees prints a rotation normalized into [0, 360).
func formatDegrees(d float64) string {
	return fmt.Sprintf("%.0f°", wheel.Normalize(math.Round(d)))
}

// blurOffsets spreads n samples on a ring of the given radius plus the
// centre, for a cheap soft shadow.
func blurOffsets(radius float64, n int) [][2]float64 {
	out := [][2]float64{{0, 0}}
	if radius <= 0 || n <= 0 {
		return out
	}
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		out = append(out, [2]float64{radius * math.Cos(a), radius * math.Sin(a)})
	}
	return out
}

// passAlpha is the opacity of each of n stacked passes so that together
// they reach total.
func passAlpha(total float64, n int) float64 {
	if n <= 1 {
		return total
	}
	return 1 - math.Pow(1-clamp01(total), 1/float64(n))
}
