package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(side float64) Polygon {
	return Polygon{{0, 0}, {side, 0}, {side, side}, {0, side}}
}

func TestBoundingBox(t *testing.T) {
	p := square(2)
	min, max := p.BoundingBox()
	assert.Equal(t, Point{0, 0}, min)
	assert.Equal(t, Point{2, 2}, max)
}

func TestArea_Shoelace(t *testing.T) {
	assert.InDelta(t, 4.0, square(2).Area(), TightEpsilon)

	// Clockwise winding still yields a positive absolute area.
	cw := square(2).Reversed()
	assert.InDelta(t, 4.0, cw.Area(), TightEpsilon)
}

func TestCentroid(t *testing.T) {
	c := square(2).Centroid()
	assert.InDelta(t, 1.0, c.X, TightEpsilon)
	assert.InDelta(t, 1.0, c.Y, TightEpsilon)
}

func TestNormalize_FlipsClockwise(t *testing.T) {
	cw := square(2).Reversed()
	assert.False(t, cw.IsCounterClockwise())
	norm := cw.Normalize()
	assert.True(t, norm.IsCounterClockwise())
}

func TestTranslate(t *testing.T) {
	p := square(1).Translate(5, -3)
	min, max := p.BoundingBox()
	assert.Equal(t, Point{5, -3}, min)
	assert.Equal(t, Point{6, -2}, max)
}

func TestWellFormed_DegenerateIsNoOp(t *testing.T) {
	degenerate := Polygon{{0, 0}, {1, 1}}
	assert.Equal(t, degenerate, degenerate.Rotate(45, nil))
	assert.Equal(t, 0.0, degenerate.Area())
}
