package geom

import "math"

// Rotate returns a new polygon of equal vertex count, rotated by degrees
// degrees (counter-clockwise, standard mathematical convention) around
// pivot. If pivot is nil, the polygon's own centroid is used.
//
// Degenerate input (fewer than 3 points, non-finite coordinates) is
// returned unchanged.
func (p Polygon) Rotate(degrees float64, pivot *Point) Polygon {
	if !p.wellFormed() {
		return p
	}
	piv := p.Centroid()
	if pivot != nil {
		piv = *pivot
	}
	theta := degrees * math.Pi / 180
	sin, cos := math.Sin(theta), math.Cos(theta)

	out := make(Polygon, len(p))
	for i, v := range p {
		dx := v.X - piv.X
		dy := v.Y - piv.Y
		out[i] = Point{
			X: piv.X + dx*cos - dy*sin,
			Y: piv.Y + dx*sin + dy*cos,
		}
	}
	return out
}

// RotatePoint rotates a single point by degrees around pivot.
func RotatePoint(p Point, degrees float64, pivot Point) Point {
	theta := degrees * math.Pi / 180
	sin, cos := math.Sin(theta), math.Cos(theta)
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Point{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}
