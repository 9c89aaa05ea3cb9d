// Package export writes the current wheel as a standalone SVG document.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/feelings-wheel/internal/wheel"
)

var ErrNothingToExport = errors.New("wheel has not been generated")

// Scene is the part of the engine an export reads.
type Scene interface {
	Geometry() *wheel.Geometry
	Layers() *wheel.Layers
	Rotation() float64
}

const shadowFilter = "wedge-shadow"

// errWriter keeps the first write error; svgo itself never reports one.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SVG writes the scene with the same layer order the screen uses: base
// wedges, division lines, shadows, then emphasized wedges.
func SVG(w io.Writer, s Scene) error {
	g := s.Geometry()
	if g == nil {
		return ErrNothingToExport
	}
	l := s.Layers()
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	size := int(math.Ceil(g.Size))

	canvas.Start(size, size)
	canvas.Title("Feelings Wheel")
	canvas.Def()
	canvas.Filter(shadowFilter, `x="-20%"`, `y="-20%"`, `width="140%"`, `height="140%"`)
	blur := shadowBlur(l)
	canvas.FeGaussianBlur(svg.Filterspec{In: "SourceGraphic"}, blur, blur)
	canvas.Fend()
	canvas.DefEnd()
	canvas.Rect(0, 0, size, size, "fill:#ffffff")

	rot := s.Rotation()
	canvas.Gtransform(fmt.Sprintf("rotate(%.3f %.3f %.3f)", rot, g.CX, g.CY))

	canvas.Gid(wheel.BaseLayer.String())
	for _, p := range l.Base() {
		writePair(canvas, p, rot)
	}
	canvas.Gend()

	canvas.Gid(wheel.LinesLayer.String())
	for _, ln := range l.Lines() {
		canvas.Path(fmt.Sprintf("M %.3f %.3f L %.3f %.3f", ln.X1, ln.Y1, ln.X2, ln.Y2),
			fmt.Sprintf(`class="%s"`, ln.Kind),
			fmt.Sprintf("stroke:#333333;stroke-width:%g;fill:none", ln.Kind.Width()))
	}
	canvas.Gend()

	canvas.Gid(wheel.ShadowLayer.String())
	for _, sh := range l.Shadows() {
		dx, dy := sh.WheelOffset(rot)
		canvas.Path(sh.D,
			fmt.Sprintf(`transform="translate(%.3f %.3f)"`, dx, dy),
			fmt.Sprintf(`filter="url(#%s)"`, shadowFilter),
			fmt.Sprintf("fill:#000000;fill-opacity:%g;stroke:none", sh.Alpha))
	}
	canvas.Gend()

	canvas.Gid(wheel.TopLayer.String())
	for _, p := range l.Top() {
		writePair(canvas, p, rot)
	}
	canvas.Gend()

	canvas.Gend()
	canvas.End()
	return ew.err
}

func writePair(canvas *svg.SVG, p *wheel.Pair, rot float64) {
	canvas.Path(p.Path.D,
		fmt.Sprintf(`data-id="%s"`, html.EscapeString(string(p.Path.ID))),
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", hex(p.Path.Fill), hex(p.Path.Stroke)))

	t := p.Text
	angle := wheel.TextRotation(t.BaseAngle, rot)
	canvas.Gtransform(fmt.Sprintf("translate(%.3f %.3f) rotate(%.3f)", t.X, t.Y, angle))
	canvas.Text(0, 0, t.Text, fmt.Sprintf(
		"text-anchor:middle;dominant-baseline:central;font-family:sans-serif;font-size:%.2fpx;fill:%s",
		t.FontSize, hex(t.Fill)))
	canvas.Gend()
}

// shadowBlur converts a canvas-style blur radius into a Gaussian deviation.
func shadowBlur(l *wheel.Layers) float64 {
	blur := wheel.DefaultShadowStyle().Blur
	if sh := l.Shadows(); len(sh) > 0 {
		blur = sh[0].Blur
	}
	return blur / 2
}

func hex(c colorful.Color) string { return c.Clamped().Hex() }

// WriteFile exports to path, replacing any existing file.
func WriteFile(path string, s Scene) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	bw := bufio.NewWriter(f)
	if err := SVG(bw, s); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
