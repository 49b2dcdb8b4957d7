package model

import (
	"testing"

	"github.com/piwi3910/stickernest/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestNewPackablePolygon_DerivesBoundsAndArea(t *testing.T) {
	square := geom.Polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	pp := NewPackablePolygon("sticker-a", square)

	assert.Equal(t, "sticker-a", pp.ID)
	assert.InDelta(t, 2.0, pp.Width, geom.TightEpsilon)
	assert.InDelta(t, 2.0, pp.Height, geom.TightEpsilon)
	assert.InDelta(t, 4.0, pp.Area, geom.TightEpsilon)
	assert.LessOrEqual(t, pp.Area, pp.Width*pp.Height+geom.TightEpsilon)
}

func TestNewPackablePolygon_ConcaveAreaWithinBoundingBox(t *testing.T) {
	lshape := geom.Polygon{{0, 0}, {3, 0}, {3, 1}, {1, 1}, {1, 3}, {0, 3}}
	pp := NewPackablePolygon("l-shape", lshape)

	assert.LessOrEqual(t, pp.Area, pp.Width*pp.Height)
	assert.Greater(t, pp.Width, 0.0)
	assert.Greater(t, pp.Height, 0.0)
}
