package bottomleft

import (
	"testing"

	"github.com/piwi3910/stickernest/internal/geom"
	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare(id string) model.PackablePolygon {
	return model.NewPackablePolygon(id, geom.Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
}

func TestBottomLeft_FirstPlacementAtOrigin(t *testing.T) {
	s := New(4, 4, 0.1)
	token := strategy.NewCancelToken()
	p, fail := s.FindPlacement(token, unitSquare("a"), 4, 4, []float64{0}, 0)
	require.Nil(t, fail)
	require.NotNil(t, p)
	assert.InDelta(t, 0.0, p.X, 1e-9)
	assert.InDelta(t, 0.0, p.Y, 1e-9)
}

func TestBottomLeft_SecondPlacementAvoidsFirst(t *testing.T) {
	s := New(4, 4, 0.1)
	token := strategy.NewCancelToken()

	first, _ := s.FindPlacement(token, unitSquare("a"), 4, 4, []float64{0}, 0)
	first.ID = "a"
	s.MarkPlaced(*first, first.Points)

	second, fail := s.FindPlacement(token, unitSquare("b"), 4, 4, []float64{0}, 0)
	require.Nil(t, fail)
	require.NotNil(t, second)
	assert.False(t, geom.Overlap(first.Points, second.Points, geom.Epsilon))
}

func TestBottomLeft_RejectsOversized(t *testing.T) {
	s := New(2, 2, 0.1)
	token := strategy.NewCancelToken()
	tooBig := model.NewPackablePolygon("big", geom.Polygon{{0, 0}, {5, 0}, {5, 5}, {0, 5}})
	p, fail := s.FindPlacement(token, tooBig, 2, 2, []float64{0}, 0)
	assert.Nil(t, p)
	require.NotNil(t, fail)
	assert.Equal(t, model.ReasonTooLarge, fail.Reason)
}

func TestBottomLeft_UtilizationAccruesPlacedArea(t *testing.T) {
	s := New(4, 4, 0.1)
	token := strategy.NewCancelToken()
	p, _ := s.FindPlacement(token, unitSquare("a"), 4, 4, []float64{0}, 0)
	p.ID = "a"
	s.MarkPlaced(*p, p.Points)
	assert.InDelta(t, 100.0/16.0, s.Utilization(), 1e-6)
}

func TestBottomLeft_BestRotationPicksLowestScore(t *testing.T) {
	s := New(4, 4, 0.1)
	token := strategy.NewCancelToken()
	// A rectangle offers the same bottom-left score regardless of
	// rotation on an empty sheet; this mainly exercises that multiple
	// rotations are attempted without error and a placement is returned.
	rect := model.NewPackablePolygon("r", geom.Polygon{{0, 0}, {2, 0}, {2, 1}, {0, 1}})
	p, fail := s.FindPlacement(token, rect, 4, 4, []float64{0, 90}, 0)
	require.Nil(t, fail)
	require.NotNil(t, p)
}
