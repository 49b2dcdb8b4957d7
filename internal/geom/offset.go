package geom

import "math"

// JoinType selects how Offset handles convex corners when growing a
// polygon outward (or how it folds corners when shrinking it).
type JoinType int

const (
	// JoinMiter extends adjacent offset edges until they meet at a point,
	// falling back to JoinSquare when the miter point would be farther
	// than MiterLimit * |d| from the original vertex.
	JoinMiter JoinType = iota
	// JoinRound replaces the corner with an arc of radius |d| approximated
	// by straight segments.
	JoinRound
	// JoinSquare (bevel) connects the two adjacent offset edges directly
	// with a straight segment, without extending them to a point.
	JoinSquare
)

// MiterLimit bounds how far a JoinMiter corner may extend before Offset
// falls back to a square join, preventing needle-thin spikes on acute
// concave corners.
const MiterLimit = 4.0

// roundSegments is how many straight segments approximate a round join's arc.
const roundSegments = 8

// Offset returns the Minkowski sum of p with a disk (JoinRound) or polygonal
// offset region of radius d: positive d grows p outward, negative d shrinks
// it inward, and d == 0 is a no-op (returns an equivalent copy of p).
//
// Offset normalizes p to counter-clockwise winding first (outward/inward are
// only meaningful relative to a consistent winding), matching the
// convention the rest of the geometry kernel uses for NFP-related work.
func Offset(p Polygon, d float64, join JoinType) Polygon {
	if !p.wellFormed() {
		return p.Clone()
	}
	if d == 0 {
		return p.Normalize()
	}

	ccw := p.Normalize()
	n := len(ccw)

	// Per-edge offset line: for edge i -> i+1, the line translated by d
	// along the outward normal.
	type offsetLine struct {
		a, b Point // two points on the translated line
		dir  Point // unit direction, i to i+1
	}
	lines := make([]offsetLine, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edge := ccw[j].Sub(ccw[i])
		dir := edge.Normalized()
		outward := Point{dir.Y, -dir.X}
		shift := outward.Scale(d)
		lines[i] = offsetLine{
			a:   ccw[i].Add(shift),
			b:   ccw[j].Add(shift),
			dir: dir,
		}
	}

	out := make(Polygon, 0, n+n*roundSegments)
	for i := 0; i < n; i++ {
		prev := lines[(i-1+n)%n]
		curr := lines[i]

		// Collinear (or near-collinear) adjacent edges: the two offset
		// lines coincide, so the shared endpoint is simply prev.b (==
		// curr.a up to floating point).
		cross := prev.dir.Cross(curr.dir)
		if math.Abs(cross) < TightEpsilon {
			out = append(out, prev.b)
			continue
		}

		switch join {
		case JoinMiter:
			if v, ok := lineIntersect(prev.a, prev.b, curr.a, curr.b); ok {
				if Distance(v, ccw[i]) <= MiterLimit*math.Abs(d) {
					out = append(out, v)
					continue
				}
			}
			out = append(out, prev.b, curr.a)
		case JoinRound:
			out = append(out, arcBetween(ccw[i], prev.b, curr.a, d)...)
		default: // JoinSquare
			out = append(out, prev.b, curr.a)
		}
	}

	if len(out) < 3 {
		return ccw
	}
	return out
}

// lineIntersect finds the intersection of infinite lines through (p1,p2)
// and (p3,p4). ok is false if the lines are parallel.
func lineIntersect(p1, p2, p3, p4 Point) (Point, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.Cross(d2)
	if math.Abs(denom) < TightEpsilon {
		return Point{}, false
	}
	t := p3.Sub(p1).Cross(d2) / denom
	return p1.Add(d1.Scale(t)), true
}

// arcBetween approximates the arc of radius |d| centered at center, from
// point a to point b, with roundSegments straight segments. Falls back to
// the two endpoints if the center-to-point distances are degenerate.
func arcBetween(center, a, b Point, d float64) []Point {
	ra := a.Sub(center)
	rb := b.Sub(center)
	if ra.Length() < TightEpsilon || rb.Length() < TightEpsilon {
		return []Point{a, b}
	}
	startAngle := math.Atan2(ra.Y, ra.X)
	endAngle := math.Atan2(rb.Y, rb.X)

	// Always sweep the shorter way (|delta| <= pi) from a to b; the sign of
	// d does not change the direction.
	delta := endAngle - startAngle
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}

	radius := math.Abs(d)
	points := make([]Point, 0, roundSegments+1)
	points = append(points, a)
	for s := 1; s < roundSegments; s++ {
		t := float64(s) / float64(roundSegments)
		angle := startAngle + delta*t
		points = append(points, Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	points = append(points, b)
	return points
}
