package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_SetAndGet(t *testing.T) {
	g := NewGrid(2, 2, 10)
	assert.False(t, g.Get(5, 5))
	g.Set(5, 5)
	assert.True(t, g.Get(5, 5))
}

func TestGrid_OutOfBoundsIsAlwaysOccupied(t *testing.T) {
	g := NewGrid(1, 1, 10)
	assert.True(t, g.Get(-1, 0))
	assert.True(t, g.Get(100, 0))
}

func TestGrid_UtilizationReflectsSetCells(t *testing.T) {
	g := NewGrid(1, 1, 10) // 10x10 = 100 cells
	assert.Equal(t, 0.0, g.Utilization())
	for x := 0; x < 10; x++ {
		g.Set(x, 0)
	}
	assert.InDelta(t, 10.0, g.Utilization(), 1e-9)
}

func TestGrid_SetIsIdempotentForUtilization(t *testing.T) {
	g := NewGrid(1, 1, 10)
	g.Set(0, 0)
	g.Set(0, 0)
	assert.InDelta(t, 1.0, g.Utilization(), 1e-9)
}

func TestGrid_ToIntMatrixMatchesSetCells(t *testing.T) {
	g := NewGrid(1, 1, 2) // 2x2 grid
	g.Set(1, 0)
	matrix := g.ToIntMatrix()
	assert.Equal(t, [][]int{{0, 1}, {0, 0}}, matrix)
}

func TestGrid_ToCellRoundTrip(t *testing.T) {
	g := NewGrid(2, 2, 10)
	cx, cy := g.ToCell(1.05, 1.55)
	assert.Equal(t, 10, cx)
	assert.Equal(t, 15, cy)
}
