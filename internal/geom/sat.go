package geom

import "math"

// Overlap reports whether the interiors of a and b overlap with positive
// area greater than eps (inch^2 equivalent in projected-length terms — see
// below). A mandatory bounding-box rejection runs first; the full test
// projects both polygons onto every edge normal of both shapes (the
// Separating Axis Theorem). This is exact for convex polygons and a widely
// used practical approximation for concave ones, matching how production
// nesting engines implement SAT.
func Overlap(a, b Polygon, eps float64) bool {
	if !a.wellFormed() || !b.wellFormed() {
		return false
	}
	if eps <= 0 {
		eps = Epsilon
	}

	aMin, aMax := a.BoundingBox()
	bMin, bMax := b.BoundingBox()
	if aMax.X < bMin.X+eps || bMax.X < aMin.X+eps ||
		aMax.Y < bMin.Y+eps || bMax.Y < aMin.Y+eps {
		return false
	}

	minOverlap := math.MaxFloat64
	for _, axis := range append(edgeNormals(a), edgeNormals(b)...) {
		aLo, aHi := project(a, axis)
		bLo, bHi := project(b, axis)
		overlap := math.Min(aHi, bHi) - math.Max(aLo, bLo)
		if overlap <= 0 {
			// Found a separating axis: no overlap at all.
			return false
		}
		if overlap < minOverlap {
			minOverlap = overlap
		}
	}
	return minOverlap > eps
}

// edgeNormals returns the left-hand unit normal of every edge of p (inward
// for counter-clockwise winding), used as candidate separating axes; only
// the axis direction matters for the projection test.
func edgeNormals(p Polygon) []Point {
	n := len(p)
	axes := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edge := p[j].Sub(p[i])
		normal := Point{-edge.Y, edge.X}.Normalized()
		if normal == (Point{}) {
			continue
		}
		axes = append(axes, normal)
	}
	return axes
}

// project returns the [min,max] range of p's vertices projected onto axis.
func project(p Polygon, axis Point) (min, max float64) {
	min = math.MaxFloat64
	max = -math.MaxFloat64
	for _, v := range p {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// PointInPolygon reports whether pt lies inside p using the ray-casting
// (odd-crossings) rule. Points on an edge are treated as inside, within eps.
func PointInPolygon(pt Point, p Polygon, eps float64) bool {
	if !p.wellFormed() {
		return false
	}
	if eps <= 0 {
		eps = Epsilon
	}

	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if onSegment(pt, p[i], p[j], eps) {
			return true
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := p[i], p[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xIntersect := (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if pt.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// onSegment reports whether pt lies on segment a-b within eps.
func onSegment(pt, a, b Point, eps float64) bool {
	d := perpendicularDistance(pt, a, b)
	if d > eps {
		return false
	}
	// Within the segment's bounding box (plus eps), not just its infinite line.
	minX, maxX := math.Min(a.X, b.X)-eps, math.Max(a.X, b.X)+eps
	minY, maxY := math.Min(a.Y, b.Y)-eps, math.Max(a.Y, b.Y)+eps
	return pt.X >= minX && pt.X <= maxX && pt.Y >= minY && pt.Y <= maxY
}

// Contains reports whether every vertex of p lies within [0,w] x [0,h],
// within eps. This is the shape-vs-sheet containment check (spec: every
// vertex of every placed polygon must satisfy 0 <= v.x <= W, 0 <= v.y <= H).
func Contains(p Polygon, w, h, eps float64) bool {
	if len(p) == 0 {
		return false
	}
	if eps <= 0 {
		eps = Epsilon
	}
	for _, v := range p {
		if v.X < -eps || v.X > w+eps || v.Y < -eps || v.Y > h+eps {
			return false
		}
	}
	return true
}
