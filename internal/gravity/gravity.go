// Package gravity implements the drop-and-slide interlock placement
// strategy: candidates are "dropped" from a seed position until they
// collide with something or leave the sheet, then slid leftward under
// the same rule, producing tight interlocking layouts for irregular
// outlines.
package gravity

import (
	"math"

	"github.com/piwi3910/stickernest/internal/collision"
	"github.com/piwi3910/stickernest/internal/geom"
	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/strategy"
)

// DefaultStep is the fine step used for dropping/sliding, tight enough
// for close interlocking.
const DefaultStep = 0.02

// perimeterSamplesPerShape is how many sample positions are taken along
// each placed shape's bounding-box width; each yields two seeds, one level
// with the box's top edge and one with its bottom edge.
const perimeterSamplesPerShape = 8

// topEdgeSamples is how many seed points are generated along the sheet's
// top edge.
const topEdgeSamples = 10

// Search is the gravity/interlock placement strategy for one sheet.
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
// sheetH sheet.
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

// FindPlacement implements strategy.Strategy.
func (s *Search) FindPlacement(token *strategy.CancelToken, polygon model.PackablePolygon, sheetW, sheetH float64, rotations []float64, spacing float64) (*model.Placement, *strategy.FailureReason) {
	type scored struct {
		placement model.Placement
		score     float64
	}
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

		for _, seed := range s.seeds(bboxW, bboxH, sheetW) {
			if token.Cancelled() {
				break
			}
			s.positionsTried++
			if placement, ok := s.dropAndSlide(rotated, rotation, spacing, seed, bboxW, bboxH); ok {
				score := placement.X + placement.Y
				if best == nil || score < best.score {
					best = &scored{placement: *placement, score: score}
				}
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

type point struct{ x, y float64 }

// seeds generates the top-edge samples plus samples along the top and
// bottom edges of every placed shape's bounding box.
func (s *Search) seeds(bboxW, bboxH, sheetW float64) []point {
	feasibleW := sheetW - bboxW
	if feasibleW < 0 {
		feasibleW = 0
	}
	seeds := make([]point, 0, topEdgeSamples+perimeterSamplesPerShape*s.collision.Count())
	for i := 0; i < topEdgeSamples; i++ {
		t := float64(i) / float64(topEdgeSamples-1)
		seeds = append(seeds, point{x: feasibleW * t, y: 0})
	}
	for _, shape := range s.collision.Shapes() {
		min, max := shape.BoundingBox()
		w, h := max.X-min.X, max.Y-min.Y
		for i := 0; i < perimeterSamplesPerShape; i++ {
			t := float64(i) / float64(perimeterSamplesPerShape)
			seeds = append(seeds,
				point{x: clamp(min.X+w*t, 0, feasibleW), y: min.Y},
				point{x: clamp(min.X+w*t, 0, feasibleW), y: max.Y},
			)
		}
	}
	_ = bboxH
	return seeds
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// dropAndSlide runs the drop phase (increment y while clear) then the
// slide phase (decrement x while clear), both at the fine step, dilating
// the candidate by the full spacing and testing it against the raw
// (undilated) placed shapes. Sheet-bounds containment stays on the raw
// bounding box: the drop rail starts flush against the top edge, and
// must be free to reach it, so only shape-vs-shape gaps are enforced via
// spacing here. The final placement stored is the undilated polygon.
func (s *Search) dropAndSlide(rotated geom.Polygon, rotation, spacing float64, seed point, bboxW, bboxH float64) (*model.Placement, bool) {
	x, y := seed.x, seed.y
	feasibleW := s.sheetW - bboxW
	feasibleH := s.sheetH - bboxH
	if feasibleW < -geom.Epsilon || feasibleH < -geom.Epsilon {
		return nil, false
	}

	clear := func(px, py float64) bool {
		if px < -geom.Epsilon || py < -geom.Epsilon || px > feasibleW+geom.Epsilon || py > feasibleH+geom.Epsilon {
			return false
		}
		transformed := translateRotated(rotated, px, py)
		dilated := geom.Offset(transformed, spacing, geom.JoinRound)
		return !s.collision.Collide(dilated, geom.Epsilon)
	}

	// Drop: increase y while clear; on first collision or leaving the
	// sheet, back off one step.
	for clear(x, y+s.step) {
		y += s.step
	}
	// Slide: decrease x while clear.
	for clear(x-s.step, y) {
		x -= s.step
	}

	x = math.Max(0, math.Min(x, feasibleW))
	y = math.Max(0, math.Min(y, feasibleH))
	if !clear(x, y) {
		return nil, false
	}

	transformed := translateRotated(rotated, x, y)
	return &model.Placement{X: x, Y: y, Rotation: rotation, Points: transformed}, true
}

func translateRotated(rotated geom.Polygon, x, y float64) geom.Polygon {
	min, _ := rotated.BoundingBox()
	return rotated.Translate(x-min.X, y-min.Y)
}

// MarkPlaced implements strategy.Strategy.
func (s *Search) MarkPlaced(placement model.Placement, transformed geom.Polygon) {
	id := placement.ID
	if id == "" {
		id = "_"
	}
	s.collision.Add(id, transformed)
	s.placedArea += transformed.Area()
}
