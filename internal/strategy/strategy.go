// Package strategy defines the common contract every single-sheet
// placement strategy implements (raster, bottom-left, gravity, NFP), the
// Kind values that name them, and the cancellation token they poll. The
// constructor that dispatches on Kind lives in internal/packer.
package strategy

import (
	"github.com/piwi3910/stickernest/internal/geom"
	"github.com/piwi3910/stickernest/internal/model"
)

// Kind identifies a placement strategy.
type Kind string

const (
	Raster     Kind = "raster"
	BottomLeft Kind = "bottom-left"
	Gravity    Kind = "gravity"
	NFP        Kind = "nfp"
)

// FailureReason is a closed-set explanation for why FindPlacement could
// not place a candidate. Reason is one of the model.Reason* constants.
type FailureReason struct {
	Reason          string
	PositionsTried  int
	RotationsTried  int
	GridUtilization float64
}

// Strategy places one candidate polygon at a time on a single sheet.
// Implementations are stateless between sheets: a new Strategy instance
// is created per sheet by the planner's NewStrategy constructor.
type Strategy interface {
	// FindPlacement searches for a collision-free position and rotation
	// for polygon on a sheetW x sheetH sheet, trying each of rotations in
	// order. Exactly one of the two return values is non-nil: a
	// successful search returns (placement, nil); an exhausted search
	// returns (nil, failure).
	FindPlacement(token *CancelToken, polygon model.PackablePolygon, sheetW, sheetH float64, rotations []float64, spacing float64) (*model.Placement, *FailureReason)

	// MarkPlaced commits a successful placement (and its final
	// transformed vertices) to the strategy's internal state so
	// subsequent candidates collide against it.
	MarkPlaced(placement model.Placement, transformed geom.Polygon)

	// Utilization returns the strategy's own measure of sheet fill: the
	// fraction of occupancy-grid cells set for the raster strategy, or
	// placed-area / sheet-area for the others.
	Utilization() float64
}
