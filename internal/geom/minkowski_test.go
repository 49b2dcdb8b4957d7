package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinkowskiSum_TwoSquares(t *testing.T) {
	a := square(2)
	b := square(1)
	sum := MinkowskiSum(a, b)
	min, max := sum.BoundingBox()
	assert.InDelta(t, 0.0, min.X, TightEpsilon)
	assert.InDelta(t, 0.0, min.Y, TightEpsilon)
	assert.InDelta(t, 3.0, max.X, TightEpsilon)
	assert.InDelta(t, 3.0, max.Y, TightEpsilon)
}

func TestMinkowskiSum_EmptyInputIsNil(t *testing.T) {
	assert.Nil(t, MinkowskiSum(nil, square(1)))
	assert.Nil(t, MinkowskiSum(square(1), nil))
}

func TestPolygon_Negated(t *testing.T) {
	p := Polygon{{1, 2}, {-3, 4}}
	neg := p.Negated()
	assert.Equal(t, Polygon{{-1, -2}, {3, -4}}, neg)
}

func TestNoFitPolygon_ViaMinkowskiSumOfNegation(t *testing.T) {
	// The NFP of a fixed square A against a moving square B, built as
	// A (+) (-B), is A extended by B's extent toward negative x and y — any
	// reference point (B's minimum corner) placed outside that NFP is
	// guaranteed not to overlap A.
	a := square(2)
	b := square(1)
	nfp := MinkowskiSum(a, b.Negated())
	min, max := nfp.BoundingBox()
	assert.InDelta(t, -1.0, min.X, TightEpsilon)
	assert.InDelta(t, -1.0, min.Y, TightEpsilon)
	assert.InDelta(t, 2.0, max.X, TightEpsilon)
	assert.InDelta(t, 2.0, max.Y, TightEpsilon)
}
