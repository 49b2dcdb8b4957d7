// Package nfp implements the no-fit-polygon candidate-sampling placement
// strategy: a dense set of candidate positions is generated (edge-adjacent
// to every placed shape, a dense local grid around each placed shape, and
// a sparse global grid across the sheet), deduplicated, sorted by
// bottom-left preference, and tested in order. An optional true-NFP
// variant additionally computes the exact No-Fit Polygon via the
// geometry kernel's Minkowski sum and rejects candidates that fall
// inside it.
package nfp

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/stickernest/internal/collision"
	"github.com/piwi3910/stickernest/internal/geom"
	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/strategy"
)

// Default sampling steps, per spec: fine 0.02-0.05" for the dense local
// grid, coarse 0.1-0.25" for the sparse global grid.
const (
	DefaultDenseStep  = 0.03
	DefaultSparseStep = 0.15
	// localMargin is how far the dense grid extends beyond a placed
	// shape's bounding box.
	localMargin = 0.5
	// quantize is the coordinate rounding used for candidate dedup.
	quantize = 1e-3
)

// Options configures an nfp.Search.
type Options struct {
	DenseStep  float64
	SparseStep float64
	// UseTrueNFP gates the optional pure-NFP variant: compute A (+) (-B)
	// via Minkowski sum and reject candidates whose reference point
	// falls inside it, in addition to the SAT collision test.
	UseTrueNFP bool
}

// DefaultOptions returns the documented default step sizes with the
// true-NFP variant disabled.
func DefaultOptions() Options {
	return Options{DenseStep: DefaultDenseStep, SparseStep: DefaultSparseStep}
}

// Search is the NFP candidate-sampler placement strategy for one sheet.
type Search struct {
	collision *collision.Service
	sheetW    float64
	sheetH    float64
	opts      Options

	// nfpCache memoizes the true-NFP polygon against the current candidate
	// shape, keyed by nfpCacheKey from the placed shape's index and the
	// candidate's quantized rotated bounding-box width and height. Only
	// populated when opts.UseTrueNFP is set.
	nfpCache map[string]geom.Polygon

	positionsTried int
	placedArea     float64
}

var _ strategy.Strategy = (*Search)(nil)

// New returns a Search with an empty placed-shape set for a sheetW x
// sheetH sheet.
func New(sheetW, sheetH float64, opts Options) *Search {
	if opts.DenseStep <= 0 {
		opts.DenseStep = DefaultDenseStep
	}
	if opts.SparseStep <= 0 {
		opts.SparseStep = DefaultSparseStep
	}
	return &Search{
		collision: collision.New(),
		sheetW:    sheetW,
		sheetH:    sheetH,
		opts:      opts,
		nfpCache:  make(map[string]geom.Polygon),
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

type candidatePoint struct{ x, y float64 }

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
		feasibleW := sheetW - bboxW
		feasibleH := sheetH - bboxH
		if feasibleW < 0 || feasibleH < 0 {
			continue
		}
		fitsAnyRotation = true

		candidates := s.generateCandidates(bboxW, bboxH, feasibleW, feasibleH)
		for _, c := range candidates {
			if token.Cancelled() {
				break
			}
			s.positionsTried++
			if placement, ok := s.tryCandidate(rotated, rotation, spacing, c, feasibleW, feasibleH); ok {
				// candidates are already sorted bottom-left-first, so the
				// first accepted candidate for this rotation is its best.
				score := c.y*100 + c.x
				if best == nil || score < best.score {
					best = &scored{placement: *placement, score: score}
				}
				break
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

// generateCandidates builds the edge-adjacent, dense-local, and
// sparse-global candidate sets, deduplicates by quantized coordinate, and
// sorts by row-major bottom-left preference (y*100+x).
func (s *Search) generateCandidates(bboxW, bboxH, feasibleW, feasibleH float64) []candidatePoint {
	seen := make(map[candidatePoint]bool)
	var out []candidatePoint
	add := func(x, y float64) {
		if x < -geom.Epsilon || y < -geom.Epsilon || x > feasibleW+geom.Epsilon || y > feasibleH+geom.Epsilon {
			return
		}
		key := candidatePoint{quantizeCoord(x), quantizeCoord(y)}
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, candidatePoint{x, y})
	}

	// Always include the origin: the first candidate ever tested, with
	// nothing yet placed to abut.
	add(0, 0)

	for _, shape := range s.collision.Shapes() {
		min, max := shape.BoundingBox()

		// Edge-adjacent: abut the right and top edges at the fine step,
		// the left and bottom edges at the coarse step.
		for y := min.Y; y <= max.Y+geom.Epsilon; y += s.opts.DenseStep {
			add(max.X, y) // right edge, fine
		}
		for x := min.X; x <= max.X+geom.Epsilon; x += s.opts.DenseStep {
			add(x, min.Y-bboxH) // top edge, fine
		}
		for y := min.Y; y <= max.Y+geom.Epsilon; y += s.opts.SparseStep {
			add(min.X-bboxW, y) // left edge, coarse
		}
		for x := min.X; x <= max.X+geom.Epsilon; x += s.opts.SparseStep {
			add(x, max.Y) // bottom edge, coarse
		}

		// Dense local grid within a margin around the placed shape.
		loX, loY := math.Max(0, min.X-localMargin), math.Max(0, min.Y-localMargin)
		hiX, hiY := math.Min(feasibleW, max.X+localMargin), math.Min(feasibleH, max.Y+localMargin)
		for y := loY; y <= hiY+geom.Epsilon; y += s.opts.DenseStep {
			for x := loX; x <= hiX+geom.Epsilon; x += s.opts.DenseStep {
				add(x, y)
			}
		}
	}

	// Sparse global grid across the entire feasible rectangle.
	for y := 0.0; y <= feasibleH+geom.Epsilon; y += s.opts.SparseStep {
		for x := 0.0; x <= feasibleW+geom.Epsilon; x += s.opts.SparseStep {
			add(x, y)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].y*100+out[i].x < out[j].y*100+out[j].x
	})
	return out
}

func quantizeCoord(v float64) float64 {
	return math.Round(v/quantize) * quantize
}

// tryCandidate translates rotated to candidate, rejects it on out-of-
// sheet bounds, rejects it via the true-NFP variant if enabled, and
// otherwise falls back to a dilated SAT collision test against the raw
// (undilated) placed shapes, dilating only the candidate by the full
// spacing value. The stored placement is the undilated polygon.
func (s *Search) tryCandidate(rotated geom.Polygon, rotation, spacing float64, c candidatePoint, feasibleW, feasibleH float64) (*model.Placement, bool) {
	transformed := translateRotated(rotated, c.x, c.y)
	if !collision.Contains(transformed, s.sheetW, s.sheetH, geom.Epsilon) {
		return nil, false
	}

	if s.opts.UseTrueNFP && s.insideAnyNFP(rotated, c) {
		return nil, false
	}

	dilated := geom.Offset(transformed, spacing, geom.JoinRound)
	if s.collision.Collide(dilated, geom.Epsilon) {
		return nil, false
	}
	return &model.Placement{X: c.x, Y: c.y, Rotation: rotation, Points: transformed}, true
}

func translateRotated(rotated geom.Polygon, x, y float64) geom.Polygon {
	min, _ := rotated.BoundingBox()
	return rotated.Translate(x-min.X, y-min.Y)
}

// insideAnyNFP reports whether candidate c's reference point falls
// inside the true No-Fit Polygon of rotated against any already-placed
// shape. This is the optional geometric-insight check: it never runs
// unless opts.UseTrueNFP is set, and it supplements rather than replaces
// the SAT collision test in tryCandidate.
func (s *Search) insideAnyNFP(rotated geom.Polygon, c candidatePoint) bool {
	min, _ := rotated.BoundingBox()
	ref := geom.Point{X: c.x - min.X, Y: c.y - min.Y}
	for i, shape := range s.collision.Shapes() {
		poly := s.nfpFor(i, shape, rotated)
		if geom.PointInPolygon(ref, poly, geom.Epsilon) {
			return true
		}
	}
	return false
}

func (s *Search) nfpFor(index int, placed, rotated geom.Polygon) geom.Polygon {
	key := nfpCacheKey(index, rotated)
	if cached, ok := s.nfpCache[key]; ok {
		return cached
	}
	nfpPoly := geom.MinkowskiSum(placed, rotated.Negated())
	s.nfpCache[key] = nfpPoly
	return nfpPoly
}

// nfpCacheKey identifies a cached NFP by the placed shape's index in this
// sheet's collision service plus the candidate's rotated-shape bounding
// box (a cheap proxy for "same design, same rotation" that invalidates
// naturally across distinct shapes and rotations).
func nfpCacheKey(index int, rotated geom.Polygon) string {
	w, h := rotated.Width(), rotated.Height()
	quant := func(v float64) int64 { return int64(math.Round(v/quantize)) }
	return fmt.Sprintf("%d:%d:%d", index, quant(w), quant(h))
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
