package geom

// Polygon is an ordered sequence of >= 3 points, implicitly closed (the
// last point connects back to the first). Winding is not assumed; callers
// that need a specific winding should call Normalize.
type Polygon []Point

// wellFormed reports whether p has at least 3 points, all with finite
// coordinates. Operations on malformed polygons are no-ops by contract.
func (p Polygon) wellFormed() bool {
	if len(p) < 3 {
		return false
	}
	for _, v := range p {
		if !finite(v.X) || !finite(v.Y) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of p.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// BoundingBox returns the axis-aligned min/max corners of p. The zero value
// is returned for an empty polygon.
func (p Polygon) BoundingBox() (min, max Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return min, max
}

// Width returns the bounding-box width of p.
func (p Polygon) Width() float64 {
	min, max := p.BoundingBox()
	return max.X - min.X
}

// Height returns the bounding-box height of p.
func (p Polygon) Height() float64 {
	min, max := p.BoundingBox()
	return max.Y - min.Y
}

// Centroid returns the arithmetic mean of p's vertices, used as the default
// rotation pivot when the caller does not supply one. This is the vertex
// centroid, not the area centroid — cheap and adequate as a pivot.
func (p Polygon) Centroid() Point {
	if len(p) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, v := range p {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(p))
	return Point{sx / n, sy / n}
}

// Translate returns a copy of p shifted by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point{v.X + dx, v.Y + dy}
	}
	return out
}

// Area returns the absolute (unsigned) polygon area via the shoelace
// formula. Handles any winding; 0 for degenerate input.
func (p Polygon) Area() float64 {
	a := p.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// SignedArea returns the shoelace area with sign: positive for
// counter-clockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return sum / 2
}

// IsCounterClockwise reports whether p winds counter-clockwise.
func (p Polygon) IsCounterClockwise() bool {
	return p.SignedArea() > 0
}

// Normalize returns p re-wound counter-clockwise if it currently winds
// clockwise. Used before NFP/Minkowski computations, which assume CCW input.
func (p Polygon) Normalize() Polygon {
	if p.IsCounterClockwise() || len(p) < 3 {
		return p.Clone()
	}
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// Reversed returns p with its vertex order reversed (flips winding).
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}
