package raster

import (
	"math"

	"github.com/katalvlaran/lvlath/gridgraph"
)

// MostlyFullThreshold is the average block occupancy above which a block
// is considered "mostly full" and skipped by the coarse scan.
const MostlyFullThreshold = 0.70

// DefaultBlockSize is the coarse block edge length in inches.
const DefaultBlockSize = 1.0

// BlockIndex is an auxiliary coarse index over a Grid: it tracks an
// occupancy percentage per blockSize x blockSize inch block so the coarse
// scan can reject an entire block without rasterizing a candidate inside
// it.
type BlockIndex struct {
	grid       *Grid
	blockSize  float64
	cols, rows int
	occupied   []int // occupied cell count per block, row-major
	capacity   []int // total cells per block, row-major (edge blocks are smaller)
}

// NewBlockIndex builds an empty index over grid with the default block
// size.
func NewBlockIndex(grid *Grid) *BlockIndex {
	return NewBlockIndexWithSize(grid, DefaultBlockSize)
}

// NewBlockIndexWithSize builds an empty index using a custom block size in
// inches.
func NewBlockIndexWithSize(grid *Grid, blockSize float64) *BlockIndex {
	cellsPerBlock := int(math.Round(blockSize * grid.cellsPerInch))
	if cellsPerBlock < 1 {
		cellsPerBlock = 1
	}
	cols := (grid.cols + cellsPerBlock - 1) / cellsPerBlock
	rows := (grid.rows + cellsPerBlock - 1) / cellsPerBlock

	bi := &BlockIndex{
		grid:      grid,
		blockSize: blockSize,
		cols:      cols,
		rows:      rows,
		occupied:  make([]int, cols*rows),
		capacity:  make([]int, cols*rows),
	}
	for by := 0; by < rows; by++ {
		for bx := 0; bx < cols; bx++ {
			x0, y0 := bx*cellsPerBlock, by*cellsPerBlock
			x1 := min(x0+cellsPerBlock, grid.cols)
			y1 := min(y0+cellsPerBlock, grid.rows)
			bi.capacity[by*cols+bx] = (x1 - x0) * (y1 - y0)
		}
	}
	return bi
}

func (bi *BlockIndex) cellsPerBlock() int {
	return int(math.Round(bi.blockSize * bi.grid.cellsPerInch))
}

// BlockAt converts a sheet-space inch coordinate to a block coordinate.
func (bi *BlockIndex) BlockAt(x, y float64) (bx, by int) {
	return int(x / bi.blockSize), int(y / bi.blockSize)
}

func (bi *BlockIndex) inBounds(bx, by int) bool {
	return bx >= 0 && bx < bi.cols && by >= 0 && by < bi.rows
}

// MarkCell registers a newly-occupied grid cell at (cx, cy) against its
// containing block's running occupancy count. Must be called exactly
// once per cell newly set by Place, keeping the index consistent with
// the grid.
func (bi *BlockIndex) MarkCell(cx, cy int) {
	cpb := bi.cellsPerBlock()
	bx, by := cx/cpb, cy/cpb
	if !bi.inBounds(bx, by) {
		return
	}
	bi.occupied[by*bi.cols+bx]++
}

// Occupancy returns the fraction (0..1) of block (bx, by) that is
// occupied.
func (bi *BlockIndex) Occupancy(bx, by int) float64 {
	if !bi.inBounds(bx, by) {
		return 1.0
	}
	cap := bi.capacity[by*bi.cols+bx]
	if cap == 0 {
		return 1.0
	}
	return float64(bi.occupied[by*bi.cols+bx]) / float64(cap)
}

// MostlyFull reports whether the block containing sheet-space point
// (x, y) exceeds MostlyFullThreshold average occupancy. Out-of-sheet
// points are always "mostly full" (nothing to gain scanning there).
func (bi *BlockIndex) MostlyFull(x, y float64) bool {
	bx, by := bi.BlockAt(x, y)
	if !bi.inBounds(bx, by) {
		return true
	}
	return bi.Occupancy(bx, by) > MostlyFullThreshold
}

// FreeComponents partitions the blocks that are NOT mostly full into
// connected regions (4-connectivity), using gridgraph.ConnectedComponents
// over a block-level land/water matrix (land = free). It returns, for
// each free component, its block count and a representative block
// coordinate — enough for the gap-filling pass to decide whether a
// region is plausibly large enough for a given unplaced instance before
// attempting to rasterize it there.
func (bi *BlockIndex) FreeComponents() ([]FreeRegion, error) {
	matrix := make([][]int, bi.rows)
	for by := 0; by < bi.rows; by++ {
		row := make([]int, bi.cols)
		for bx := 0; bx < bi.cols; bx++ {
			if bi.Occupancy(bx, by) <= MostlyFullThreshold {
				row[bx] = 1 // land == free
			}
		}
		matrix[by] = row
	}

	gg, err := gridgraph.NewGridGraph(matrix, gridgraph.GridOptions{
		LandThreshold: 1,
		Conn:          gridgraph.Conn4,
	})
	if err != nil {
		return nil, err
	}

	var regions []FreeRegion
	for _, comps := range gg.ConnectedComponents() {
		for _, comp := range comps {
			if len(comp) == 0 {
				continue
			}
			regions = append(regions, FreeRegion{
				BlockCount: len(comp),
				AreaInches: float64(len(comp)) * bi.blockSize * bi.blockSize,
				AnchorX:    float64(comp[0].X) * bi.blockSize,
				AnchorY:    float64(comp[0].Y) * bi.blockSize,
			})
		}
	}
	return regions, nil
}

// FreeRegion summarizes one connected component of free (not mostly-full)
// blocks.
type FreeRegion struct {
	BlockCount int
	AreaInches float64
	AnchorX    float64
	AnchorY    float64
}
