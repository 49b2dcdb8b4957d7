// Package model holds the shared data types that flow between the
// geometry kernel, the placement strategies, and the multi-sheet planner:
// packable designs, placements, sheets, and the aggregate results handed
// back to a caller.
package model

import (
	"fmt"

	"github.com/piwi3910/stickernest/internal/geom"
)

// PackablePolygon is a design ready to be placed: identity plus geometry at
// its origin orientation (rotation 0).
//
// Invariant: Area <= Width*Height, and Width, Height > 0.
type PackablePolygon struct {
	// ID is the design's external identity. Instances cloned for
	// oversubscription carry a "<id>_<n>" suffix (see internal/planner).
	ID     string
	Points geom.Polygon
	Width  float64
	Height float64
	Area   float64

	// Tag is an optional compatibility group: the planner only nests
	// designs sharing a Tag onto the same sheet, and designs with an empty
	// Tag form one further group of their own (they are not mixed into the
	// tagged groups), generalizing the notion of material/grain
	// compatibility to arbitrary caller-defined groups.
	Tag string
}

// NewPackablePolygon derives Width, Height, and Area from points, matching
// the bounding-box/shoelace conventions of the geometry kernel.
func NewPackablePolygon(id string, points geom.Polygon) PackablePolygon {
	w, h := points.Width(), points.Height()
	return PackablePolygon{
		ID:     id,
		Points: points,
		Width:  w,
		Height: h,
		Area:   points.Area(),
	}
}

// Placement is the result of successfully placing one PackablePolygon.
// X, Y is the bounding-box minimum corner of the transformed polygon, in
// sheet coordinates. Points, when populated, holds the final transformed
// (denormalized) vertices.
type Placement struct {
	ID       string
	X        float64
	Y        float64
	Rotation float64
	Points   geom.Polygon
}

// Unplaced records a candidate that a strategy could not place, with a
// reason drawn from a small closed set (see the Reason* constants below).
type Unplaced struct {
	ID     string
	Reason string
}

// Failure reason strings returned in Unplaced.Reason. This set is closed:
// strategies must not invent new reason strings; ReasonSheetNearlyFull is
// a template for FormatSheetNearlyFull rather than a literal value.
const (
	ReasonTooLarge        = "polygon too large for sheet"
	ReasonSheetNearlyFull = "sheet nearly full (%.0f%%)"
	ReasonNoRotationFits  = "no rotation fits"
	ReasonNoPosition      = "no collision-free position found"
)

// FormatSheetNearlyFull renders the ReasonSheetNearlyFull reason with the
// grid utilization percentage that triggered it.
func FormatSheetNearlyFull(utilizationPercent float64) string {
	return fmt.Sprintf(ReasonSheetNearlyFull, utilizationPercent)
}

// Result is the outcome of a single-sheet pack call.
type Result struct {
	Placements  []Placement
	Utilization float64
	Unplaced    []Unplaced
}

// Sheet is one production sheet's placements plus its utilization.
type Sheet struct {
	Index       int
	Placements  []Placement
	Utilization float64
}

// MultiSheetResult is the outcome of a multi-sheet production pack.
type MultiSheetResult struct {
	Sheets           []Sheet
	TotalUtilization float64
	// Quantities maps design ID (instance suffix stripped) to the count of
	// instances actually placed across all sheets.
	Quantities map[string]int
	// Message carries human-readable notices: auto-expansion, reaching the
	// auto-expansion hard cap, or a page-budget shortfall. Empty when
	// nothing is notable.
	Message string
}

// Estimate is the outcome of a pre-flight Estimate call.
type Estimate struct {
	TotalItemArea          float64
	TotalSheetArea         float64
	EstimatedUtilization   float64
	MinimumPagesNeeded     int
	CanFitInRequestedPages bool
	Warning                string
}
