package geom

import (
	"math"
	"sort"
)

// ConvexHull returns the convex hull of points via a Graham scan: pick the
// lowest-then-leftmost point as the pivot, sort the rest by polar angle
// around it, then sweep keeping only left turns. Returns the hull wound
// counter-clockwise. Input with fewer than 3 distinct points is returned
// as-is (deduplicated).
func ConvexHull(points []Point) Polygon {
	pts := dedupe(points)
	if len(pts) < 3 {
		return Polygon(pts)
	}

	pivot := pts[0]
	for _, p := range pts[1:] {
		if p.Y < pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}

	rest := make([]Point, 0, len(pts)-1)
	for _, p := range pts {
		if p != pivot {
			rest = append(rest, p)
		}
	}

	sort.Slice(rest, func(i, j int) bool {
		oi := rest[i].Sub(pivot)
		oj := rest[j].Sub(pivot)
		angI := math.Atan2(oi.Y, oi.X)
		angJ := math.Atan2(oj.Y, oj.X)
		if angI != angJ {
			return angI < angJ
		}
		// Same angle: closer point first so the scan discards it as collinear.
		return oi.Length() < oj.Length()
	})

	hull := []Point{pivot, rest[0]}
	for i := 1; i < len(rest); i++ {
		p := rest[i]
		for len(hull) >= 2 && cross3(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}

// cross3 returns the signed area of the triangle (o,a,b); positive means a
// left turn from o->a to o->b.
func cross3(o, a, b Point) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

func dedupe(points []Point) []Point {
	seen := make(map[Point]bool, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
