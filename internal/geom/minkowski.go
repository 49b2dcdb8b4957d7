package geom

// MinkowskiSum returns an approximation of a (+) b: the convex hull of every
// pairwise vertex sum a[i]+b[j]. This is exact when both a and b are convex;
// for concave input it is the convex relaxation, which is what the NFP
// sampler uses it for (a geometric sanity check on candidate positions, not
// the final collision authority — SAT remains authoritative for overlap).
func MinkowskiSum(a, b Polygon) Polygon {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	sums := make([]Point, 0, len(a)*len(b))
	for _, pa := range a {
		for _, pb := range b {
			sums = append(sums, pa.Add(pb))
		}
	}
	return ConvexHull(sums)
}

// Negated returns p with every vertex negated (used to build -B for the
// A (+) (-B) no-fit-polygon construction).
func (p Polygon) Negated() Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point{-v.X, -v.Y}
	}
	return out
}
