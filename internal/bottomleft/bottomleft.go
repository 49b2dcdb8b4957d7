// Package bottomleft implements the bottom-left sliding placement
// strategy: a fixed-step scan, top-to-bottom then right-to-left, scoring
// the first collision-free position by x+y. Unlike the raster strategy
// it maintains no occupancy grid — every candidate position is tested
// against the placed-shape set directly via the geometry kernel's SAT
// overlap test.
package bottomleft

import (
	"github.com/piwi3910/stickernest/internal/collision"
	"github.com/piwi3910/stickernest/internal/geom"
	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/strategy"
)

// DefaultStep is the fixed scan step in inches.
const DefaultStep = 0.1

// Search is the bottom-left placement strategy for one sheet.
type Search struct {
	collision *collision.Service
	sheetW    float64
	sheetH    float64
	step      float64

	positionsTried int
	placedArea     float64
}

var _ strategy.Strategy = (*Search)(nil)

// New returns a Search with an empty placed-shape set for a sheetW x
// sheetH sheet, scanning at step (DefaultStep if step <= 0).
func New(sheetW, sheetH, step float64) *Search {
	if step <= 0 {
		step = DefaultStep
	}
	return &Search{
		collision: collision.New(),
		sheetW:    sheetW,
		sheetH:    sheetH,
		step:      step,
	}
}

// Utilization implements strategy.Strategy as placed-area / sheet-area.
func (s *Search) Utilization() float64 {
	total := s.sheetW * s.sheetH
	if total == 0 {
		return 0
	}
	return s.placedArea / total * 100.0
}

type scored struct {
	placement model.Placement
	score     float64
}

// FindPlacement implements strategy.Strategy: for every rotation, scan y
// upward from 0 and x downward from W-bboxW, accept the first
// collision-free position, and keep the best (lowest x+y) across
// rotations.
func (s *Search) FindPlacement(token *strategy.CancelToken, polygon model.PackablePolygon, sheetW, sheetH float64, rotations []float64, spacing float64) (*model.Placement, *strategy.FailureReason) {
	var best *scored
	rotationsTried := 0
	fitsAnyRotation := false

	for _, rotation := range rotations {
		rotationsTried++
		rotated := polygon.Points.Rotate(rotation, nil)
		bboxW, bboxH := rotated.Width(), rotated.Height()
		if bboxW > sheetW+geom.Epsilon || bboxH > sheetH+geom.Epsilon {
			continue
		}
		fitsAnyRotation = true

		if candidate, ok := s.scanRotation(token, rotated, rotation, spacing, sheetW, sheetH, bboxW, bboxH); ok {
			if best == nil || candidate.score < best.score {
				best = candidate
			}
		}
		if token.Cancelled() {
			break
		}
	}

	if best != nil {
		return &best.placement, nil
	}

	reason := model.ReasonNoPosition
	switch {
	case rotationsTried == 0:
		reason = model.ReasonNoRotationFits
	case !fitsAnyRotation:
		reason = model.ReasonTooLarge
	}
	return nil, &strategy.FailureReason{Reason: reason, PositionsTried: s.positionsTried, RotationsTried: rotationsTried}
}

func (s *Search) scanRotation(token *strategy.CancelToken, rotated geom.Polygon, rotation, spacing, sheetW, sheetH, bboxW, bboxH float64) (*scored, bool) {
	feasibleW := sheetW - bboxW
	feasibleH := sheetH - bboxH
	if feasibleW < 0 || feasibleH < 0 {
		return nil, false
	}

	for y := 0.0; y <= feasibleH+geom.Epsilon; y += s.step {
		for x := feasibleW; x >= -geom.Epsilon; x -= s.step {
			if token.Cancelled() {
				return nil, false
			}
			s.positionsTried++
			transformed := translateRotated(rotated, x, y)
			dilated := geom.Offset(transformed, spacing, geom.JoinRound)
			if !collision.Contains(dilated, sheetW, sheetH, geom.Epsilon) {
				continue
			}
			if s.collision.Collide(dilated, geom.Epsilon) {
				continue
			}
			return &scored{
				placement: model.Placement{X: x, Y: y, Rotation: rotation, Points: transformed},
				score:     x + y,
			}, true
		}
	}
	return nil, false
}

func translateRotated(rotated geom.Polygon, x, y float64) geom.Polygon {
	min, _ := rotated.BoundingBox()
	return rotated.Translate(x-min.X, y-min.Y)
}

// MarkPlaced implements strategy.Strategy: records the placed shape's
// final vertices for future collision tests and accrues its area for
// Utilization.
func (s *Search) MarkPlaced(placement model.Placement, transformed geom.Polygon) {
	id := placement.ID
	if id == "" {
		id = "_"
	}
	s.collision.Add(id, transformed)
	s.placedArea += transformed.Area()
}
