// Package packer is the public facade over the nesting engine: it wires
// the geometry kernel, the four placement strategies, and the multi-sheet
// planner behind three entry points (Pack, PackMulti, Estimate), accepts
// context.Context at the boundary where the rest of the core only knows
// about strategy.CancelToken, and performs the millimeter/inch unit
// conversion described in internal/model/units.go. No other package under
// internal/ imports context or knows where a caller's coordinates came from.
package packer

import (
	"github.com/piwi3910/stickernest/internal/bottomleft"
	"github.com/piwi3910/stickernest/internal/gravity"
	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/nfp"
	"github.com/piwi3910/stickernest/internal/raster"
	"github.com/piwi3910/stickernest/internal/strategy"
)

// newStrategy dispatches on kind to build a fresh single-sheet strategy
// instance, applying the matching tunables from opts. It satisfies
// planner.NewStrategy.
func newStrategy(kind strategy.Kind, sheetW, sheetH float64, opts model.Options) strategy.Strategy {
	switch kind {
	case strategy.BottomLeft:
		return bottomleft.New(sheetW, sheetH, opts.StepSize)
	case strategy.Gravity:
		return gravity.New(sheetW, sheetH, opts.StepSize)
	case strategy.NFP:
		return nfp.New(sheetW, sheetH, nfp.DefaultOptions())
	default: // strategy.Raster, and the zero-value Kind
		return raster.New(sheetW, sheetH, opts.CellsPerInch, opts.StepSize)
	}
}
