package model

import "github.com/piwi3910/stickernest/internal/geom"

// MMPerInch is the boundary conversion factor. All internal math runs in
// inches; callers that work in millimeters convert at the packer facade
// (see internal/packer), matching the teacher's convention of holding one
// unit internally and converting only where external data enters or
// leaves.
const MMPerInch = 25.4

// PointFromMM converts a point given in millimeters to inches.
func PointFromMM(p geom.Point) geom.Point {
	return geom.Point{X: p.X / MMPerInch, Y: p.Y / MMPerInch}
}

// PointToMM converts a point given in inches to millimeters.
func PointToMM(p geom.Point) geom.Point {
	return geom.Point{X: p.X * MMPerInch, Y: p.Y * MMPerInch}
}

// PolygonFromMM converts every vertex of p from millimeters to inches.
func PolygonFromMM(p geom.Polygon) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, v := range p {
		out[i] = PointFromMM(v)
	}
	return out
}

// PolygonToMM converts every vertex of p from inches to millimeters.
func PolygonToMM(p geom.Polygon) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, v := range p {
		out[i] = PointToMM(v)
	}
	return out
}
