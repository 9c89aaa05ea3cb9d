package game

import (
	"image"
	"strings"

	"cogentcore.org/core/ordmap"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/feelings-wheel/internal/taxonomy"
	"github.com/iburimskiy/feelings-wheel/internal/wheel"
)

const (
	panelPad      = 12
	panelTitleH   = 40
	tileHeaderH   = 30
	tileGap       = 8
	tileLineH     = 16
	tileCharW     = 7
	removeBoxSize = 18
)

const instructions = "Click a wedge to select it. Drag or scroll to turn the wheel."

// Tile is one selected emotion in the side panel.
type Tile struct {
	ID         wheel.ID
	Emotion    string
	Level      wheel.Level
	Accent     colorful.Color
	Definition string
	Expanded   bool
}

// tileRect is where a tile lands on screen along with its remove button.
type tileRect struct {
	Tile   *Tile
	Rect   image.Rectangle
	Remove image.Rectangle
	Lines  []string
}

// Panel lists the selection newest first. Only the newest tile is expanded
// until the user opens another one.
type Panel struct {
	tax        *taxonomy.Taxonomy
	simplified bool
	tiles      ordmap.Map[wheel.ID, *Tile] // oldest first
	deselect   func(wheel.ID) error

	Minimized bool
}

// NewPanel creates an empty panel; deselect is called when a tile's remove
// button is clicked.
func NewPanel(tax *taxonomy.Taxonomy, deselect func(wheel.ID) error) *Panel {
	return &Panel{tax: tax, deselect: deselect}
}

// Selection is a wheel.Engine subscriber.
func (p *Panel) Selection(ev wheel.SelectionEvent) {
	if ev.Selected {
		p.add(ev.ID)
		return
	}
	p.tiles.DeleteKey(ev.ID)
}

func (p *Panel) add(id wheel.ID) {
	k, err := wheel.ParseID(id)
	if err != nil {
		return
	}
	for _, t := range p.tiles.Values() {
		t.Expanded = false
	}
	p.tiles.DeleteKey(id)
	p.tiles.Add(id, &Tile{
		ID:         id,
		Emotion:    k.Emotion,
		Level:      k.Level,
		Accent:     wheel.FamilyColor(p.tax, k),
		Definition: p.tax.Definition(k.Emotion, p.simplified),
		Expanded:   true,
	})
}

// Rebuild replaces every tile with the given selection, oldest first.
func (p *Panel) Rebuild(ids []wheel.ID, simplified bool) {
	p.simplified = simplified
	p.tiles.Reset()
	for _, id := range ids {
		p.add(id)
	}
}

// Tiles returns the tiles newest first.
func (p *Panel) Tiles() []*Tile {
	vals := p.tiles.Values()
	out := make([]*Tile, len(vals))
	for i, t := range vals {
		out[len(vals)-1-i] = t
	}
	return out
}

func (p *Panel) Empty() bool { return p.tiles.Len() == 0 }

// Expand opens one tile and collapses the rest.
func (p *Panel) Expand(id wheel.ID) bool {
	if _, ok := p.tiles.ValueByKeyTry(id); !ok {
		return false
	}
	for _, t := range p.tiles.Values() {
		t.Expanded = t.ID == id
	}
	return true
}

// layout stacks the tiles inside area, newest at the top.
func (p *Panel) layout(area image.Rectangle) []tileRect {
	x0, x1 := area.Min.X+panelPad, area.Max.X-panelPad
	y := area.Min.Y + panelTitleH
	var out []tileRect
	for _, t := range p.Tiles() {
		h := tileHeaderH
		var lines []string
		if t.Expanded {
			lines = wrap(t.Definition, (x1-x0-2*panelPad)/tileCharW)
			h += len(lines)*tileLineH + panelPad
		}
		r := image.Rect(x0, y, x1, y+h)
		rm := image.Rect(x1-removeBoxSize-6, y+(tileHeaderH-removeBoxSize)/2, x1-6, y+(tileHeaderH+removeBoxSize)/2)
		out = append(out, tileRect{Tile: t, Rect: r, Remove: rm, Lines: lines})
		y += h + tileGap
	}
	return out
}

// Click handles a press inside the panel area. It reports whether the
// press hit a tile.
func (p *Panel) Click(area image.Rectangle, x, y int) (bool, error) {
	pt := image.Pt(x, y)
	for _, tr := range p.layout(area) {
		if pt.In(tr.Remove) {
			return true, p.deselect(tr.Tile.ID)
		}
		if pt.In(tr.Rect) {
			if !tr.Tile.Expanded {
				p.Expand(tr.Tile.ID)
			}
			return true, nil
		}
	}
	return false, nil
}

// wrap breaks s into lines of at most width characters on word boundaries.
func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var cur strings.Builder
	for _, w := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
