package raster

import (
	"math"
	"sort"

	"github.com/piwi3910/stickernest/internal/geom"
)

// Transform rotates polygon about its centroid, offsets it outward by
// spacing (a positive Minkowski dilation), and translates it so its
// bounding-box minimum corner lands at (x, y).
func Transform(polygon geom.Polygon, x, y, rotation, spacing float64) geom.Polygon {
	p := polygon
	if rotation != 0 {
		p = p.Rotate(rotation, nil)
	}
	if spacing > 0 {
		p = geom.Offset(p, spacing, geom.JoinRound)
	}
	min, _ := p.BoundingBox()
	return p.Translate(x-min.X, y-min.Y)
}

// Rasterize scan-converts polygon (already transformed into sheet space)
// into grid cells via horizontal scan lines: for each integer scan line
// inside the polygon's vertical extent, compute edge/scanline
// intersections, sort them, and fill every even/odd pair of cells. A
// polygon that extends outside the grid yields at least one
// out-of-bounds cell, which Grid.Get already treats as occupied.
func Rasterize(grid *Grid, polygon geom.Polygon) []cellCoord {
	if len(polygon) < 3 {
		return nil
	}
	min, max := polygon.BoundingBox()
	cyMin, _ := grid.ToCell(0, min.Y)
	cyMax, _ := grid.ToCell(0, max.Y)

	var cells []cellCoord
	for cy := cyMin; cy <= cyMax; cy++ {
		scanY := (float64(cy) + 0.5) / grid.cellsPerInch
		xs := scanIntersections(polygon, scanY)
		if len(xs) < 2 {
			continue
		}
		for i := 0; i+1 < len(xs); i += 2 {
			cxStart := int(math.Floor(xs[i] * grid.cellsPerInch))
			cxEnd := int(math.Ceil(xs[i+1]*grid.cellsPerInch)) - 1
			for cx := cxStart; cx <= cxEnd; cx++ {
				cells = append(cells, cellCoord{cx, cy})
			}
		}
	}
	return cells
}

type cellCoord struct {
	x, y int
}

// scanIntersections returns the sorted x coordinates where the polygon's
// edges cross the horizontal line y = scanY.
func scanIntersections(p geom.Polygon, scanY float64) []float64 {
	n := len(p)
	var xs []float64
	for i := 0; i < n; i++ {
		a := p[i]
		b := p[(i+1)%n]
		if a.Y == b.Y {
			continue
		}
		if (a.Y <= scanY && b.Y > scanY) || (b.Y <= scanY && a.Y > scanY) {
			t := (scanY - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
	}
	sort.Float64s(xs)
	return xs
}

// FitsWithinSheet reports whether polygon's bounding box lies entirely
// within [0, sheetW] x [0, sheetH] (used to reject a rotation before
// rasterizing at all).
func FitsWithinSheet(polygon geom.Polygon, sheetW, sheetH float64) bool {
	min, max := polygon.BoundingBox()
	if min.X < -geom.Epsilon || min.Y < -geom.Epsilon {
		return false
	}
	if max.X > sheetW+geom.Epsilon || max.Y > sheetH+geom.Epsilon {
		return false
	}
	return !math.IsNaN(max.X) && !math.IsNaN(max.Y)
}
