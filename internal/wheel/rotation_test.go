package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		-30:  330,
		360:  0,
		720:  0,
		725:  5,
		-725: 355,
	}
	for in, want := range cases {
		assert.InDelta(t, want, Normalize(in), eps, "Normalize(%v)", in)
	}
}

func TestShortestPath(t *testing.T) {
	cases := []struct {
		from, to, want float64
	}{
		{350, 10, 20},
		{10, 350, -20},
		{0, 90, 90},
		{0, 180, 180},
		{720, 30, 30},
		{-170, 170, -20},
		{45, 45, 0},
	}
	for _, c := range cases {
		got := ShortestPath(c.from, c.to)
		assert.InDelta(t, c.want, got, eps, "ShortestPath(%v, %v)", c.from, c.to)
		assert.LessOrEqual(t, got, 180.0)
		assert.GreaterOrEqual(t, got, -180.0)
	}
}

func TestTextRotationStaysUpright(t *testing.T) {
	assert.InDelta(t, 0, TextRotation(0, 0), eps)
	assert.InDelta(t, 45, TextRotation(45, 0), eps)
	assert.InDelta(t, 300, TextRotation(120, 0), eps)
	assert.InDelta(t, 360, TextRotation(180, 0), eps)
	// the wheel turned the label into the lower half
	assert.InDelta(t, 180, TextRotation(0, 180), eps)
	// and back out
	assert.InDelta(t, 120, TextRotation(120, 180), eps)
	// the flip boundaries themselves are not flipped
	assert.InDelta(t, 90, TextRotation(90, 0), eps)
	assert.InDelta(t, 270, TextRotation(270, 0), eps)
}

func TestRotate(t *testing.T) {
	x, y := rotate(1, 0, 90)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 1, y, 1e-12)
}
