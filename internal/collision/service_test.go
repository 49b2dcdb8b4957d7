package collision

import (
	"testing"

	"github.com/piwi3910/stickernest/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) geom.Polygon {
	return geom.Polygon{{0, 0}, {side, 0}, {side, side}, {0, side}}
}

func TestService_CollideDetectsOverlap(t *testing.T) {
	svc := New()
	svc.Add("a", square(2))

	overlapping := square(2).Translate(1, 1)
	assert.True(t, svc.Collide(overlapping, geom.Epsilon))

	clear := square(2).Translate(5, 5)
	assert.False(t, svc.Collide(clear, geom.Epsilon))
}

func TestService_BoundingBoxFastPathRejectsFarShapes(t *testing.T) {
	svc := New()
	svc.Add("a", square(1))
	far := square(1).Translate(1000, 1000)
	assert.False(t, svc.Collide(far, geom.Epsilon))
}

func TestService_CollidesWithAnySkipsGivenID(t *testing.T) {
	svc := New()
	svc.Add("a", square(2))
	svc.Add("b", square(2).Translate(5, 5))

	overlapsA := square(2).Translate(1, 1)
	assert.True(t, svc.CollidesWithAny(overlapsA, geom.Epsilon, nil))
	assert.False(t, svc.CollidesWithAny(overlapsA, geom.Epsilon, func(id string) bool { return id == "a" }))
}

func TestService_ResetClearsPlacedShapes(t *testing.T) {
	svc := New()
	svc.Add("a", square(2))
	require.Equal(t, 1, svc.Count())
	svc.Reset()
	assert.Equal(t, 0, svc.Count())
	assert.False(t, svc.Collide(square(2), geom.Epsilon))
}

func TestService_ShapesReturnsPlacedGeometry(t *testing.T) {
	svc := New()
	svc.Add("a", square(2))
	svc.Add("b", square(1).Translate(3, 3))
	shapes := svc.Shapes()
	require.Len(t, shapes, 2)
}

func TestContains_SheetBounds(t *testing.T) {
	p := square(2).Translate(1, 1)
	assert.True(t, Contains(p, 10, 10, 1e-6))
	assert.False(t, Contains(p, 2, 2, 1e-6))
}
