// Package collision tracks the shapes already placed on one sheet and
// answers shape-vs-shape overlap and shape-vs-sheet containment queries.
// It generalizes the teacher's free-rectangle bookkeeping (axis-aligned
// rect vs rect) to arbitrary polygons backed by the SAT kernel in
// internal/geom.
package collision

import "github.com/piwi3910/stickernest/internal/geom"

// placed is one shape already committed to the sheet: its polygon plus a
// cached bounding box, so the bbox fast path never recomputes min/max.
type placed struct {
	id     string
	points geom.Polygon
	min    geom.Point
	max    geom.Point
}

// Service holds every shape placed on a single sheet so far. A Service is
// owned for the duration of one pack call; strategies create a fresh one
// per sheet.
type Service struct {
	shapes []placed
}

// New returns an empty Service.
func New() *Service {
	return &Service{}
}

// Add records a placed shape under id. Callers pass the shape's final
// (transformed) vertices.
func (s *Service) Add(id string, points geom.Polygon) {
	min, max := points.BoundingBox()
	s.shapes = append(s.shapes, placed{id: id, points: points, min: min, max: max})
}

// Reset clears every placed shape, allowing the Service to be reused
// across sheets without reallocating.
func (s *Service) Reset() {
	s.shapes = s.shapes[:0]
}

// Count returns how many shapes are currently tracked.
func (s *Service) Count() int {
	return len(s.shapes)
}

// Collide reports whether candidate overlaps any previously placed shape,
// each with positive area greater than eps. The bounding-box comparison
// is the mandatory first step before SAT, matching the geometry kernel's
// own bbox-rejection contract.
func (s *Service) Collide(candidate geom.Polygon, eps float64) bool {
	return s.CollidesWithAny(candidate, eps, nil)
}

// CollidesWithAny is Collide but lets the caller skip shapes by id; a nil
// skip tests every placed shape.
func (s *Service) CollidesWithAny(candidate geom.Polygon, eps float64, skip func(id string) bool) bool {
	cmin, cmax := candidate.BoundingBox()
	for _, p := range s.shapes {
		if skip != nil && skip(p.id) {
			continue
		}
		if !bboxOverlap(cmin, cmax, p.min, p.max, eps) {
			continue
		}
		if geom.Overlap(candidate, p.points, eps) {
			return true
		}
	}
	return false
}

// Shapes returns the vertices of every currently placed shape, in
// placement order, used by strategies that need to generate candidate
// positions around existing placements (e.g. the gravity strategy's
// seeds around placed shapes).
func (s *Service) Shapes() []geom.Polygon {
	out := make([]geom.Polygon, len(s.shapes))
	for i, p := range s.shapes {
		out[i] = p.points
	}
	return out
}

// Contains reports whether every vertex of p lies within [0,W] x [0,H]
// (inclusive, within eps).
func Contains(p geom.Polygon, w, h, eps float64) bool {
	return geom.Contains(p, w, h, eps)
}

// bboxOverlap is the fast rejection test: two axis-aligned boxes fail to
// overlap iff one is entirely to one side of the other, allowing an eps
// margin so near-touching boxes are not rejected before SAT gets a say.
func bboxOverlap(aMin, aMax, bMin, bMax geom.Point, eps float64) bool {
	if aMax.X < bMin.X-eps || bMax.X < aMin.X-eps {
		return false
	}
	if aMax.Y < bMin.Y-eps || bMax.Y < aMin.Y-eps {
		return false
	}
	return true
}
