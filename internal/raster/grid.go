// Package raster implements the rasterization-overlay placement strategy:
// an occupancy grid per sheet, scan-line polygon fill, and a multi-scale
// coarse-to-fine search with block-level pruning.
package raster

import "math"

// wordBits is the number of occupancy cells packed into one grid word.
const wordBits = 64

// Grid is a bit-packed occupancy matrix: ceil(W*cellsPerInch) columns by
// ceil(H*cellsPerInch) rows, one bit per cell.
type Grid struct {
	cols, rows   int
	cellsPerInch float64
	words        []uint64
	set          int
}

// NewGrid allocates an empty grid covering a sheetW x sheetH sheet at the
// given resolution.
func NewGrid(sheetW, sheetH, cellsPerInch float64) *Grid {
	cols := int(math.Ceil(sheetW * cellsPerInch))
	rows := int(math.Ceil(sheetH * cellsPerInch))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cols:         cols,
		rows:         rows,
		cellsPerInch: cellsPerInch,
		words:        make([]uint64, wordCount(cols*rows)),
	}
}

func wordCount(bits int) int {
	return (bits + wordBits - 1) / wordBits
}

// Cols and Rows report the grid's cell dimensions.
func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// CellsPerInch returns the resolution the grid was built with.
func (g *Grid) CellsPerInch() float64 { return g.cellsPerInch }

// InBounds reports whether (cx, cy) is a valid cell coordinate.
func (g *Grid) InBounds(cx, cy int) bool {
	return cx >= 0 && cx < g.cols && cy >= 0 && cy < g.rows
}

func (g *Grid) bitIndex(cx, cy int) int {
	return cy*g.cols + cx
}

// Get reports whether cell (cx, cy) is occupied. Out-of-bounds cells are
// always reported occupied, matching the "out-of-bounds cell is treated
// as occupied" rule from the rasterizer's sheet-containment check.
func (g *Grid) Get(cx, cy int) bool {
	if !g.InBounds(cx, cy) {
		return true
	}
	idx := g.bitIndex(cx, cy)
	return g.words[idx/wordBits]&(1<<uint(idx%wordBits)) != 0
}

// Set marks cell (cx, cy) occupied. Out-of-bounds coordinates are ignored.
func (g *Grid) Set(cx, cy int) {
	if !g.InBounds(cx, cy) {
		return
	}
	idx := g.bitIndex(cx, cy)
	word := idx / wordBits
	bit := uint64(1) << uint(idx%wordBits)
	if g.words[word]&bit == 0 {
		g.words[word] |= bit
		g.set++
	}
}

// ToCell converts a sheet-space inch coordinate to a grid cell coordinate.
func (g *Grid) ToCell(x, y float64) (cx, cy int) {
	return int(math.Floor(x * g.cellsPerInch)), int(math.Floor(y * g.cellsPerInch))
}

// Utilization returns the fraction of cells set, as a percentage in
// [0, 100].
func (g *Grid) Utilization() float64 {
	total := g.cols * g.rows
	if total == 0 {
		return 0
	}
	return float64(g.set) / float64(total) * 100.0
}

// ToIntMatrix renders the grid as a [][]int (1 = occupied, 0 = free), the
// shape gridgraph.NewGridGraph expects.
func (g *Grid) ToIntMatrix() [][]int {
	out := make([][]int, g.rows)
	for y := 0; y < g.rows; y++ {
		row := make([]int, g.cols)
		for x := 0; x < g.cols; x++ {
			if g.Get(x, y) {
				row[x] = 1
			}
		}
		out[y] = row
	}
	return out
}
