package game

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/feelings-wheel/internal/taxonomy"
	"github.com/iburimskiy/feelings-wheel/internal/wheel"
)

func id(t *testing.T, level wheel.Level, emotion, parent string) wheel.ID {
	t.Helper()
	v, err := wheel.MakeID(taxonomy.Default(), level, emotion, parent)
	require.NoError(t, err)
	return v
}

func selected(v wheel.ID) wheel.SelectionEvent {
	return wheel.SelectionEvent{ID: v, Selected: true}
}

func names(tiles []*Tile) []string {
	var out []string
	for _, t := range tiles {
		out = append(out, t.Emotion)
	}
	return out
}

func TestPanelNewestFirst(t *testing.T) {
	p := NewPanel(taxonomy.Default(), nil)
	assert.True(t, p.Empty())

	angry := id(t, wheel.Core, "Angry", "")
	mad := id(t, wheel.Secondary, "Mad", "Angry")
	p.Selection(selected(angry))
	p.Selection(selected(mad))

	tiles := p.Tiles()
	assert.Equal(t, []string{"Mad", "Angry"}, names(tiles))
	assert.True(t, tiles[0].Expanded)
	assert.False(t, tiles[1].Expanded)
	assert.Equal(t, wheel.Secondary, tiles[0].Level)
	assert.Equal(t, taxonomy.Default().Cores[0].Color, tiles[1].Accent)
	assert.Equal(t, "Feeling or showing strong annoyance, displeasure, or hostility.", tiles[1].Definition)
	assert.Contains(t, tiles[0].Definition, "Mad is an emotion")

	p.Selection(wheel.SelectionEvent{ID: mad})
	assert.Equal(t, []string{"Angry"}, names(p.Tiles()))
}

func TestPanelExpand(t *testing.T) {
	p := NewPanel(taxonomy.Default(), nil)
	angry := id(t, wheel.Core, "Angry", "")
	sad := id(t, wheel.Core, "Sad", "")
	p.Selection(selected(angry))
	p.Selection(selected(sad))

	assert.True(t, p.Expand(angry))
	tiles := p.Tiles()
	assert.False(t, tiles[0].Expanded)
	assert.True(t, tiles[1].Expanded)
	assert.False(t, p.Expand("core:Nope"))
}

func TestPanelRebuild(t *testing.T) {
	p := NewPanel(taxonomy.Default(), nil)
	p.Selection(selected(id(t, wheel.Core, "Happy", "")))

	p.Rebuild([]wheel.ID{id(t, wheel.Core, "Sad", ""), id(t, wheel.Secondary, "Mad", "Angry")}, true)
	tiles := p.Tiles()
	assert.Equal(t, []string{"Mad", "Sad"}, names(tiles))
	assert.True(t, tiles[0].Expanded)
	assert.Contains(t, tiles[0].Definition, "Mad is a feeling")

	p.Rebuild(nil, false)
	assert.True(t, p.Empty())
}

func TestPanelClick(t *testing.T) {
	var removed []wheel.ID
	p := NewPanel(taxonomy.Default(), func(v wheel.ID) error {
		removed = append(removed, v)
		return nil
	})
	angry := id(t, wheel.Core, "Angry", "")
	sad := id(t, wheel.Core, "Sad", "")
	p.Selection(selected(angry))
	p.Selection(selected(sad))

	area := image.Rect(900, 0, 1200, 800)
	rects := p.layout(area)
	require.Len(t, rects, 2)
	assert.Greater(t, rects[0].Rect.Dy(), rects[1].Rect.Dy(), "expanded tile is taller")
	assert.Less(t, rects[0].Rect.Max.Y, rects[1].Rect.Min.Y)

	// clicking a collapsed tile expands it
	c := rects[1].Rect.Min.Add(image.Pt(20, 10))
	hit, err := p.Click(area, c.X, c.Y)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.True(t, p.Tiles()[1].Expanded)
	assert.Empty(t, removed)

	rects = p.layout(area)
	rm := rects[0].Remove.Min.Add(image.Pt(2, 2))
	hit, err = p.Click(area, rm.X, rm.Y)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []wheel.ID{sad}, removed)

	hit, err = p.Click(area, 950, 790)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestPanelClickReportsDeselectError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPanel(taxonomy.Default(), func(wheel.ID) error { return boom })
	p.Selection(selected(id(t, wheel.Core, "Angry", "")))
	area := image.Rect(0, 0, 300, 600)
	rm := p.layout(area)[0].Remove.Min.Add(image.Pt(1, 1))
	_, err := p.Click(area, rm.X, rm.Y)
	assert.ErrorIs(t, err, boom)
}

func TestWrap(t *testing.T) {
	lines := wrap("Feeling or showing strong annoyance, displeasure, or hostility.", 20)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 20)
	}
	assert.Equal(t, "Feeling or showing strong annoyance, displeasure, or hostility.", strings.Join(lines, " "))
	assert.Equal(t, []string{"supercalifragilistic"}, wrap("supercalifragilistic", 5))
	assert.Empty(t, wrap("   ", 10))
}
