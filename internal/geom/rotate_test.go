package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate_PreservesVertexCountAndArea(t *testing.T) {
	p := square(3)
	for _, deg := range []float64{0, 17, 90, 180, 270, 359} {
		rotated := p.Rotate(deg, nil)
		require.Len(t, rotated, len(p))
		assert.InDelta(t, p.Area(), rotated.Area(), TightEpsilon, "deg=%v", deg)
	}
}

func TestRotate_90DegreesAroundOrigin(t *testing.T) {
	p := Polygon{{1, 0}, {2, 0}, {1, 1}}
	pivot := Point{0, 0}
	rotated := p.Rotate(90, &pivot)
	assert.InDelta(t, 0, rotated[0].X, 1e-9)
	assert.InDelta(t, 1, rotated[0].Y, 1e-9)
}

func TestRotate_360IsIdentity(t *testing.T) {
	p := square(2).Translate(1.5, -0.5)
	rotated := p.Rotate(360, nil)
	for i := range p {
		assert.InDelta(t, p[i].X, rotated[i].X, 1e-9)
		assert.InDelta(t, p[i].Y, rotated[i].Y, 1e-9)
	}
}
