package wheel

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/feelings-wheel/internal/taxonomy"
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}

	// how far each ring is blended toward white from its family color
	levelLighten = [...]float64{0, 0.4, 0.7}

	// last resort when the family is unknown
	levelDefault = [...]colorful.Color{
		{R: 0.8, G: 0.8, B: 0.8},
		{R: 0.87, G: 0.87, B: 0.87},
		{R: 0.93, G: 0.93, B: 0.93},
	}

	StrokeColor = colorful.Color{R: 0.2, G: 0.2, B: 0.2}
	LabelColor  = colorful.Color{R: 0.2, G: 0.2, B: 0.2}
)

// Lighten blends c toward white by amount in [0, 1].
func Lighten(c colorful.Color, amount float64) colorful.Color {
	return c.BlendRgb(white, amount).Clamped()
}

// ResolveColor is the single color lookup used for wedges, shadows and
// panel accents: an exact override for the wedge, then the family color
// lightened for the ring, then a per-level default.
func ResolveColor(tax *taxonomy.Taxonomy, k Key) colorful.Color {
	if c, ok := tax.Overrides[string(k.ID())]; ok {
		return c
	}
	if core, ok := tax.Core(k.CoreFamily()); ok {
		return Lighten(core.Color, levelLighten[k.Level])
	}
	return levelDefault[k.Level]
}

// FamilyColor is the unlightened core color, used for accents.
func FamilyColor(tax *taxonomy.Taxonomy, k Key) colorful.Color {
	if core, ok := tax.Core(k.CoreFamily()); ok {
		return core.Color
	}
	return levelDefault[Core]
}
