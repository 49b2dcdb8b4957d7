package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlap_BoundingBoxRejection(t *testing.T) {
	a := square(1)
	b := square(1).Translate(5, 5)
	assert.False(t, Overlap(a, b, Epsilon))
}

func TestOverlap_PositiveOverlap(t *testing.T) {
	a := square(2)
	b := square(2).Translate(1, 1)
	assert.True(t, Overlap(a, b, Epsilon))
}

func TestOverlap_JustTouchingIsNotOverlap(t *testing.T) {
	a := square(1)
	b := square(1).Translate(1, 0)
	assert.False(t, Overlap(a, b, Epsilon))
}

func TestOverlap_ConcavePolygons(t *testing.T) {
	// An L-shape (missing its top-right quadrant) overlapping its filled arm.
	lshape := Polygon{{0, 0}, {3, 0}, {3, 1}, {1, 1}, {1, 3}, {0, 3}}

	overlapping := square(0.9).Translate(0.2, 0.2)
	assert.True(t, Overlap(lshape, overlapping, Epsilon))

	// Clearly separated (bounding-box rejected) is unambiguous even for
	// concave shapes: edge-normal SAT is exact whenever bounding boxes
	// don't overlap at all.
	farAway := square(0.9).Translate(10, 10)
	assert.False(t, Overlap(lshape, farAway, Epsilon))
}

func TestPointInPolygon(t *testing.T) {
	p := square(4)
	assert.True(t, PointInPolygon(Point{2, 2}, p, Epsilon))
	assert.False(t, PointInPolygon(Point{5, 5}, p, Epsilon))
	assert.True(t, PointInPolygon(Point{0, 2}, p, Epsilon), "on-edge point should count as inside")
}

func TestContains_SheetBounds(t *testing.T) {
	p := square(2).Translate(1, 1)
	assert.True(t, Contains(p, 10, 10, 1e-6))
	assert.False(t, Contains(p, 2, 2, 1e-6))
}
