package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/feelings-wheel/internal/wheel"
)

const (
	arcStepDeg   = 2.0
	shadowPasses = 8
)

var (
	backgroundColor = color.RGBA{R: 250, G: 249, B: 246, A: 255}
	panelColor      = color.RGBA{R: 240, G: 238, B: 233, A: 255}
	panelBorder     = color.RGBA{R: 200, G: 196, B: 188, A: 255}
	tileColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	inkColor        = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	mutedInkColor   = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	statusBarColor  = color.RGBA{R: 20, G: 25, B: 35, A: 220}
)

// renderer draws engine layers with ebiten. Vertex buffers are reused
// between frames.
type renderer struct {
	white *ebiten.Image
	src   *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
	vs    []ebiten.Vertex
	is    []uint16
}

func newRenderer() (*renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &renderer{
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		src:   src,
		faces: map[float64]*text.GoTextFace{},
	}, nil
}

func (r *renderer) face(size float64) *text.GoTextFace {
	size = math.Round(size*2) / 2
	f, ok := r.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: r.src, Size: size}
		r.faces[size] = f
	}
	return f
}

// wheelView maps wheel space onto the screen for one frame.
type wheelView struct {
	g        *wheel.Geometry
	cx, cy   float64 // screen centre
	rotation float64
}

func newWheelView(e *wheel.Engine) wheelView {
	g := e.Geometry()
	ox, oy := e.Origin()
	return wheelView{g: g, cx: ox + g.CX, cy: oy + g.CY, rotation: e.Rotation()}
}

// point is the screen position of a wheel-space point.
func (v wheelView) point(x, y float64) (float64, float64) {
	s, c := math.Sincos(v.rotation * math.Pi / 180)
	dx, dy := x-v.g.CX, y-v.g.CY
	return v.cx + dx*c - dy*s, v.cy + dx*s + dy*c
}

// polar is the screen position at a radius and unrotated angle.
func (v wheelView) polar(radius, angleDeg float64) (float32, float32) {
	s, c := math.Sincos((angleDeg + v.rotation) * math.Pi / 180)
	return float32(v.cx + radius*c), float32(v.cy + radius*s)
}

// drawWheel paints the four layers bottom up.
func (r *renderer) drawWheel(dst *ebiten.Image, e *wheel.Engine) {
	if e.Geometry() == nil {
		return
	}
	v := newWheelView(e)
	l := e.Layers()

	for _, p := range l.Base() {
		r.drawPair(dst, v, p)
	}
	for _, ln := range l.Lines() {
		x1, y1 := v.point(ln.X1, ln.Y1)
		x2, y2 := v.point(ln.X2, ln.Y2)
		vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2),
			float32(ln.Kind.Width()), rgba(wheel.StrokeColor, 1), true)
	}
	for _, sh := range l.Shadows() {
		a := passAlpha(sh.Alpha, shadowPasses+1)
		for _, off := range blurOffsets(sh.Blur/2, shadowPasses) {
			r.fillWedge(dst, v, sh.Wedge, sh.OffsetX+off[0], sh.OffsetY+off[1], colorful.Color{}, a)
		}
	}
	for _, p := range l.Top() {
		r.drawPair(dst, v, p)
	}
}

func (r *renderer) drawPair(dst *ebiten.Image, v wheelView, p *wheel.Pair) {
	r.fillWedge(dst, v, p.Path.Wedge, 0, 0, p.Path.Fill, 1)
	r.strokeWedge(dst, v, p.Path.Wedge, p.Path.Stroke)
	r.drawLabel(dst, v, &p.Text)
}

// fillWedge triangulates the annular sector as a strip between its inner
// and outer arcs, shifted by a screen-space offset.
func (r *renderer) fillWedge(dst *ebiten.Image, v wheelView, w wheel.Wedge, dx, dy float64, c colorful.Color, alpha float64) {
	steps := int(math.Ceil(w.Span() / arcStepDeg))
	if steps < 1 {
		steps = 1
	}
	r.vs, r.is = r.vs[:0], r.is[:0]
	for i := 0; i <= steps; i++ {
		a := w.StartAngle + w.Span()*float64(i)/float64(steps)
		ix, iy := v.polar(w.InnerRadius, a)
		ox, oy := v.polar(w.OuterRadius, a)
		r.vs = append(r.vs,
			ebiten.Vertex{DstX: ix + float32(dx), DstY: iy + float32(dy)},
			ebiten.Vertex{DstX: ox + float32(dx), DstY: oy + float32(dy)},
		)
		if i > 0 {
			n := uint16(2 * i)
			r.is = append(r.is, n-2, n-1, n+1, n-2, n+1, n)
		}
	}
	paintVertices(r.vs, c, alpha)
	dst.DrawTriangles(r.vs, r.is, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *renderer) strokeWedge(dst *ebiten.Image, v wheelView, w wheel.Wedge, c colorful.Color) {
	steps := int(math.Ceil(w.Span() / arcStepDeg))
	if steps < 1 {
		steps = 1
	}
	var path vector.Path
	path.MoveTo(v.polar(w.InnerRadius, w.StartAngle))
	for i := 0; i <= steps; i++ {
		path.LineTo(v.polar(w.OuterRadius, w.StartAngle+w.Span()*float64(i)/float64(steps)))
	}
	for i := steps; i >= 0; i-- {
		path.LineTo(v.polar(w.InnerRadius, w.StartAngle+w.Span()*float64(i)/float64(steps)))
	}
	path.Close()

	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{Width: 1})
	paintVertices(r.vs, c, 1)
	dst.DrawTriangles(r.vs, r.is, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *renderer) drawLabel(dst *ebiten.Image, v wheelView, t *wheel.TextNode) {
	x, y := v.point(t.X, t.Y)
	angle := wheel.TextRotation(t.BaseAngle, v.rotation) + v.rotation

	op := &text.DrawOptions{}
	op.GeoM.Rotate(angle * math.Pi / 180)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(t.Fill, 1))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, t.Text, r.face(t.FontSize), op)
}

// drawText writes left-aligned text with its top-left corner at (x, y).
func (r *renderer) drawText(dst *ebiten.Image, s string, size float64, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, r.face(size), op)
}

func (r *renderer) drawPanel(dst *ebiten.Image, p *Panel, area image.Rectangle) {
	vector.DrawFilledRect(dst, float32(area.Min.X), float32(area.Min.Y), float32(area.Dx()), float32(area.Dy()), panelColor, false)
	vector.StrokeLine(dst, float32(area.Min.X), float32(area.Min.Y), float32(area.Min.X), float32(area.Max.Y), 1, panelBorder, false)
	r.drawText(dst, "Selected feelings", 18, area.Min.X+panelPad, area.Min.Y+panelPad, inkColor)

	if p.Empty() {
		y := area.Min.Y + panelTitleH
		for _, line := range wrap(instructions, (area.Dx()-2*panelPad)/tileCharW) {
			r.drawText(dst, line, 13, area.Min.X+panelPad, y, mutedInkColor)
			y += tileLineH
		}
		return
	}

	for _, tr := range p.layout(area) {
		rc := tr.Rect
		if rc.Min.Y > area.Max.Y {
			break
		}
		vector.DrawFilledRect(dst, float32(rc.Min.X), float32(rc.Min.Y), float32(rc.Dx()), float32(rc.Dy()), tileColor, false)
		vector.StrokeRect(dst, float32(rc.Min.X), float32(rc.Min.Y), float32(rc.Dx()), float32(rc.Dy()), 1, panelBorder, false)
		vector.DrawFilledRect(dst, float32(rc.Min.X), float32(rc.Min.Y), 4, float32(rc.Dy()), rgba(tr.Tile.Accent, 1), false)

		r.drawText(dst, tr.Tile.Emotion, 15, rc.Min.X+panelPad, rc.Min.Y+7, inkColor)
		rm := tr.Remove
		r.drawText(dst, "×", 16, rm.Min.X+4, rm.Min.Y-1, mutedInkColor)

		y := rc.Min.Y + tileHeaderH
		for _, line := range tr.Lines {
			r.drawText(dst, line, 13, rc.Min.X+panelPad, y, mutedInkColor)
			y += tileLineH
		}
	}
}
