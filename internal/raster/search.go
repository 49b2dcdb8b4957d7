package raster

import (
	"math"
	"sort"

	"github.com/piwi3910/stickernest/internal/geom"
	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/strategy"
)

// refineWindowSteps is how many stepSize units the refine pass searches on
// either side of a coarse hit.
const refineWindowSteps = 5

// coarseStepFloor is the minimum coarse-scan step in inches, regardless
// of how fine stepSize is configured.
const coarseStepFloor = 0.5

// coarseStepMultiplier scales stepSize up to the coarse-scan step.
const coarseStepMultiplier = 10

// Search is the rasterization-overlay placement strategy: it owns one
// occupancy Grid and BlockIndex per sheet.
type Search struct {
	grid     *Grid
	blocks   *BlockIndex
	sheetW   float64
	sheetH   float64
	stepSize float64

	positionsTried int
}

var _ strategy.Strategy = (*Search)(nil)

// New allocates a fresh occupancy grid and block index for a sheetW x
// sheetH sheet.
func New(sheetW, sheetH, cellsPerInch, stepSize float64) *Search {
	grid := NewGrid(sheetW, sheetH, cellsPerInch)
	return &Search{
		grid:     grid,
		blocks:   NewBlockIndex(grid),
		sheetW:   sheetW,
		sheetH:   sheetH,
		stepSize: stepSize,
	}
}

// Grid exposes the underlying occupancy grid.
func (s *Search) Grid() *Grid { return s.grid }

// Blocks exposes the block index, used by the planner's gap-filling pass
// to size free regions via BlockIndex.FreeComponents.
func (s *Search) Blocks() *BlockIndex { return s.blocks }

// Utilization implements strategy.Strategy.
func (s *Search) Utilization() float64 {
	return s.grid.Utilization()
}

// FindPlacement implements strategy.Strategy.
func (s *Search) FindPlacement(token *strategy.CancelToken, polygon model.PackablePolygon, sheetW, sheetH float64, rotations []float64, spacing float64) (*model.Placement, *strategy.FailureReason) {
	rotationsTried := 0
	fitsAnyRotation := false
	for _, rotation := range rotations {
		rotationsTried++
		rotated := polygon.Points.Rotate(rotation, nil)
		dilated := geom.Offset(rotated, spacing, geom.JoinRound)
		bboxW, bboxH := dilated.Width(), dilated.Height()
		if bboxW > sheetW+geom.Epsilon || bboxH > sheetH+geom.Epsilon {
			continue // rejected before any scan: rotated bbox exceeds the sheet
		}
		fitsAnyRotation = true

		feasibleW := sheetW - bboxW
		feasibleH := sheetH - bboxH

		if placement, ok := s.searchRotation(token, rotated, rotation, spacing, feasibleW, feasibleH); ok {
			return placement, nil
		}
		if token.Cancelled() {
			return nil, &strategy.FailureReason{Reason: model.ReasonNoPosition, PositionsTried: s.positionsTried, RotationsTried: rotationsTried, GridUtilization: s.grid.Utilization()}
		}
	}

	reason := model.ReasonNoPosition
	switch {
	case rotationsTried == 0:
		reason = model.ReasonNoRotationFits
	case !fitsAnyRotation:
		reason = model.ReasonTooLarge
	case s.grid.Utilization() > MostlyFullThreshold*100:
		reason = model.FormatSheetNearlyFull(s.grid.Utilization())
	}
	return nil, &strategy.FailureReason{
		Reason:          reason,
		PositionsTried:  s.positionsTried,
		RotationsTried:  rotationsTried,
		GridUtilization: s.grid.Utilization(),
	}
}

// searchRotation runs the smart-seed + multi-scale-scan + refine search
// for one already-rotated candidate polygon.
func (s *Search) searchRotation(token *strategy.CancelToken, rotated geom.Polygon, rotation, spacing, feasibleW, feasibleH float64) (*model.Placement, bool) {
	if feasibleW < 0 || feasibleH < 0 {
		return nil, false
	}

	for _, seed := range smartSeeds(feasibleW, feasibleH) {
		if token.Cancelled() {
			return nil, false
		}
		s.positionsTried++
		if placement, ok := s.tryPosition(rotated, rotation, spacing, seed.x, seed.y); ok {
			return placement, true
		}
	}

	coarseStep := math.Max(s.stepSize*coarseStepMultiplier, coarseStepFloor)
	for y := 0.0; y <= feasibleH+geom.Epsilon; y += coarseStep {
		for x := 0.0; x <= feasibleW+geom.Epsilon; x += coarseStep {
			if token.Cancelled() {
				return nil, false
			}
			if s.blocks.MostlyFull(x, y) {
				continue
			}
			s.positionsTried++
			if !s.rasterizedCollides(rotated, rotation, spacing, x, y) {
				if placement, ok := s.refine(token, rotated, rotation, spacing, x, y, feasibleW, feasibleH); ok {
					return placement, true
				}
			}
		}
	}
	return nil, false
}

type seedPoint struct{ x, y float64 }

// smartSeeds returns the four corners of the feasible placement
// rectangle, then points evenly spaced along each of its four edges.
func smartSeeds(feasibleW, feasibleH float64) []seedPoint {
	const perEdge = 4
	seeds := []seedPoint{
		{0, 0}, {feasibleW, 0}, {feasibleW, feasibleH}, {0, feasibleH},
	}
	for i := 1; i < perEdge; i++ {
		t := float64(i) / float64(perEdge)
		seeds = append(seeds,
			seedPoint{feasibleW * t, 0},
			seedPoint{feasibleW * t, feasibleH},
			seedPoint{0, feasibleH * t},
			seedPoint{feasibleW, feasibleH * t},
		)
	}
	return seeds
}

// refine searches a +/-5*stepSize window around a coarse hit at the fine
// step, scoring candidates by x^2+y^2 (closest to origin first), and
// accepts the first collision-free fine position.
func (s *Search) refine(token *strategy.CancelToken, rotated geom.Polygon, rotation, spacing, cx, cy, feasibleW, feasibleH float64) (*model.Placement, bool) {
	window := refineWindowSteps * s.stepSize
	type candidate struct {
		x, y, score float64
	}
	var candidates []candidate
	for y := cy - window; y <= cy+window+geom.Epsilon; y += s.stepSize {
		if y < 0 || y > feasibleH {
			continue
		}
		for x := cx - window; x <= cx+window+geom.Epsilon; x += s.stepSize {
			if x < 0 || x > feasibleW {
				continue
			}
			candidates = append(candidates, candidate{x, y, x*x + y*y})
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].score < candidates[j].score })

	for _, c := range candidates {
		if token.Cancelled() {
			return nil, false
		}
		s.positionsTried++
		if !s.rasterizedCollides(rotated, rotation, spacing, c.x, c.y) {
			return s.tryPosition(rotated, rotation, spacing, c.x, c.y)
		}
	}
	return nil, false
}

// rasterizedCollides rasterizes the candidate at (x, y) and checks
// whether any resulting cell is already occupied, without committing.
func (s *Search) rasterizedCollides(rotated geom.Polygon, rotation, spacing, x, y float64) bool {
	transformed := Transform(rotated, x, y, 0, spacing)
	cells := Rasterize(s.grid, transformed)
	if len(cells) == 0 {
		return true
	}
	for _, c := range cells {
		if s.grid.Get(c.x, c.y) {
			return true
		}
	}
	return false
}

// tryPosition performs the final rasterization/placement once a
// candidate has already passed the collision check, storing the
// undilated transformed polygon on the Placement for accurate rendering.
// (x, y) anchors the dilated candidate's bounding-box minimum (the frame
// rasterizedCollides tested in); since a round-join Minkowski offset by
// spacing shrinks the bounding-box minimum by exactly spacing on each
// axis, the raw shape's own minimum sits at (x+spacing, y+spacing).
func (s *Search) tryPosition(rotated geom.Polygon, rotation, spacing, x, y float64) (*model.Placement, bool) {
	if s.rasterizedCollides(rotated, rotation, spacing, x, y) {
		return nil, false
	}
	undilated := Transform(rotated, x+spacing, y+spacing, 0, 0)
	min, _ := undilated.BoundingBox()
	return &model.Placement{
		X:        min.X,
		Y:        min.Y,
		Rotation: rotation,
		Points:   undilated,
	}, true
}

// MarkPlaced implements strategy.Strategy: it rasterizes the placed
// shape's raw (undilated) footprint and marks every resulting cell
// occupied in both the grid and the block index. Spacing is already
// enforced on the moving-candidate side by rasterizedCollides dilating
// the shape being searched for, so the footprint committed here must
// stay undilated or the gap would be double-counted.
func (s *Search) MarkPlaced(placement model.Placement, transformed geom.Polygon) {
	cells := Rasterize(s.grid, transformed)
	for _, c := range cells {
		if !s.grid.Get(c.x, c.y) {
			s.grid.Set(c.x, c.y)
			s.blocks.MarkCell(c.x, c.y)
		}
	}
}
