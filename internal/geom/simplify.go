package geom

import "math"

// Simplify reduces p via the Ramer-Douglas-Peucker algorithm with the given
// tolerance. Endpoints are always preserved; the result is never larger (in
// vertex count) than the input and its convex envelope never exceeds the
// input's, up to floating-point error.
//
// The polygon is treated as a closed ring: p[0] is appended after the last
// point so the closing edge (last->first) is part of one RDP chain, and
// the duplicated closing point is dropped afterwards. p[0] is always kept.
func Simplify(p Polygon, tolerance float64) Polygon {
	if !p.wellFormed() || tolerance <= 0 {
		return p.Clone()
	}

	// Close the ring by repeating p[0] at the end, then simplify it as one
	// open chain.
	n := len(p)
	closed := make(Polygon, n+1)
	copy(closed, p)
	closed[n] = p[0]

	simplified := rdp(closed, tolerance)

	// Drop the duplicated closing point that rdp necessarily preserves
	// (it is both the first and last point of the open chain).
	if len(simplified) >= 2 && simplified[len(simplified)-1] == simplified[0] {
		simplified = simplified[:len(simplified)-1]
	}
	if len(simplified) < 3 {
		return p.Clone()
	}
	return simplified
}

// rdp recursively simplifies an open polyline, always keeping both endpoints.
func rdp(points Polygon, tolerance float64) Polygon {
	if len(points) < 3 {
		out := make(Polygon, len(points))
		copy(out, points)
		return out
	}

	first, last := points[0], points[len(points)-1]
	maxDist := -1.0
	maxIdx := -1
	for i := 1; i < len(points)-1; i++ {
		d := perpendicularDistance(points[i], first, last)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist <= tolerance {
		return Polygon{first, last}
	}

	left := rdp(points[:maxIdx+1], tolerance)
	right := rdp(points[maxIdx:], tolerance)

	out := make(Polygon, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	out = append(out, right...)
	return out
}

// perpendicularDistance computes the distance from pt to the infinite line
// through a and b (or to the point a, if a == b).
func perpendicularDistance(pt, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq < TightEpsilon {
		return Distance(pt, a)
	}
	// |cross(b-a, pt-a)| / |b-a|
	num := math.Abs(dx*(a.Y-pt.Y) - (a.X-pt.X)*dy)
	return num / math.Sqrt(lenSq)
}
