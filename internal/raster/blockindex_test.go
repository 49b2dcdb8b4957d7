package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockIndex_OccupancyStartsAtZero(t *testing.T) {
	grid := NewGrid(3, 3, 10)
	blocks := NewBlockIndex(grid)
	assert.Equal(t, 0.0, blocks.Occupancy(0, 0))
	assert.False(t, blocks.MostlyFull(0.5, 0.5))
}

func TestBlockIndex_MostlyFullAboveThreshold(t *testing.T) {
	grid := NewGrid(1, 1, 10) // one block, 10x10=100 cells
	blocks := NewBlockIndex(grid)
	for i := 0; i < 75; i++ {
		blocks.MarkCell(i%10, i/10)
	}
	assert.True(t, blocks.MostlyFull(0.5, 0.5))
}

func TestBlockIndex_NotMostlyFullBelowThreshold(t *testing.T) {
	grid := NewGrid(1, 1, 10)
	blocks := NewBlockIndex(grid)
	for i := 0; i < 50; i++ {
		blocks.MarkCell(i%10, i/10)
	}
	assert.False(t, blocks.MostlyFull(0.5, 0.5))
}

func TestBlockIndex_OutOfBoundsIsMostlyFull(t *testing.T) {
	grid := NewGrid(1, 1, 10)
	blocks := NewBlockIndex(grid)
	assert.True(t, blocks.MostlyFull(-1, -1))
	assert.True(t, blocks.MostlyFull(100, 100))
}

func TestBlockIndex_FreeComponentsFindsContiguousFreeRegion(t *testing.T) {
	grid := NewGrid(3, 3, 10)
	blocks := NewBlockIndex(grid)

	// Fill block (0,0) entirely, leaving the other 8 blocks free.
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			blocks.MarkCell(x, y)
		}
	}

	regions, err := blocks.FreeComponents()
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, 8, regions[0].BlockCount)
	assert.InDelta(t, 8.0, regions[0].AreaInches, 1e-9)
}
