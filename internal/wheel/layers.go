package wheel

import (
	"cogentcore.org/core/ordmap"
	"github.com/lucasb-eyer/go-colorful"
)

// Layer names the four stacked drawing layers, bottom first.
type Layer int

const (
	BaseLayer Layer = iota
	LinesLayer
	ShadowLayer
	TopLayer
)

func (l Layer) String() string {
	return [...]string{"base", "lines", "shadow", "top"}[l]
}

// PathNode is the filled shape of a wedge.
type PathNode struct {
	ID     ID
	Wedge  Wedge
	D      string
	Fill   colorful.Color
	Stroke colorful.Color
}

// TextNode is a wedge label centred on (X, Y). BaseAngle is the radial
// angle; the drawn angle comes from TextRotation.
type TextNode struct {
	ID        ID
	Text      string
	X, Y      float64
	BaseAngle float64
	FontSize  float64
	Fill      colorful.Color
}

// Pair keeps a wedge's shape and label together so they always share a layer.
type Pair struct {
	Path PathNode
	Text TextNode
}

// ShadowStyle describes the drop shadow of emphasized wedges. Offset is in
// screen space.
type ShadowStyle struct {
	OffsetX, OffsetY float64
	Blur             float64
	Alpha            float64
}

func DefaultShadowStyle() ShadowStyle {
	return ShadowStyle{OffsetX: 4, OffsetY: 4, Blur: 3, Alpha: 0.3}
}

// Shadow is a disposable clone of an emphasized wedge's shape.
type Shadow struct {
	ID    ID
	Wedge Wedge
	D     string
	ShadowStyle
}

// WheelOffset converts the screen-space offset into wheel space for the
// given rotation. Content drawn at the wheel-space offset and then rotated
// with the wheel lands at the fixed screen offset, so the light source
// never turns with the wheel.
func (s *Shadow) WheelOffset(rotation float64) (dx, dy float64) {
	return rotate(s.OffsetX, s.OffsetY, -rotation)
}

// Layers moves wedge pairs between the base and top layers and keeps one
// shadow per emphasized pair. Insertion order is drawing order, so moving a
// pair puts it on top of its new layer.
type Layers struct {
	base   ordmap.Map[ID, *Pair]
	lines  []Line
	shadow ordmap.Map[ID, *Shadow]
	top    ordmap.Map[ID, *Pair]
	style  ShadowStyle
}

func newLayers(style ShadowStyle) *Layers {
	return &Layers{style: style}
}

// load replaces every layer with a fresh generation: all pairs in base, no
// shadows, new division lines.
func (l *Layers) load(pairs []*Pair, lines []Line) {
	l.base.Reset()
	l.top.Reset()
	l.shadow.Reset()
	for _, p := range pairs {
		l.base.Add(p.Path.ID, p)
	}
	l.lines = lines
}

// Emphasize moves the pair to the top layer and adds its shadow. It returns
// false if no pair has the identifier.
func (l *Layers) Emphasize(id ID) bool {
	if _, ok := l.top.ValueByKeyTry(id); ok {
		return true
	}
	p, ok := l.base.ValueByKeyTry(id)
	if !ok {
		return false
	}
	l.base.DeleteKey(id)
	l.top.Add(id, p)
	l.shadow.Add(id, &Shadow{ID: id, Wedge: p.Path.Wedge, D: p.Path.D, ShadowStyle: l.style})
	return true
}

// Deemphasize removes the shadow and moves the pair back to the base layer.
func (l *Layers) Deemphasize(id ID) bool {
	if _, ok := l.base.ValueByKeyTry(id); ok {
		return true
	}
	p, ok := l.top.ValueByKeyTry(id)
	if !ok {
		return false
	}
	l.shadow.DeleteKey(id)
	l.top.DeleteKey(id)
	l.base.Add(id, p)
	return true
}

// Where reports which layer holds the pair.
func (l *Layers) Where(id ID) (Layer, bool) {
	if _, ok := l.top.ValueByKeyTry(id); ok {
		return TopLayer, true
	}
	if _, ok := l.base.ValueByKeyTry(id); ok {
		return BaseLayer, true
	}
	return 0, false
}

// Pair returns the nodes of a wedge wherever they are.
func (l *Layers) Pair(id ID) (*Pair, bool) {
	if p, ok := l.top.ValueByKeyTry(id); ok {
		return p, true
	}
	return l.base.ValueByKeyTry(id)
}

func (l *Layers) Base() []*Pair      { return l.base.Values() }
func (l *Layers) Top() []*Pair       { return l.top.Values() }
func (l *Layers) Shadows() []*Shadow { return l.shadow.Values() }
func (l *Layers) Lines() []Line      { return l.lines }

// ShadowIDs lists shadow owners in drawing order.
func (l *Layers) ShadowIDs() []ID { return l.shadow.Keys() }
