package planner

import (
	"sort"

	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/raster"
	"github.com/piwi3910/stickernest/internal/strategy"
)

// blockAware is implemented by *raster.Search. GapFill type-asserts to it
// so the raster-only free-region pruning below works through the
// strategy.Strategy interface without the other three strategy packages
// knowing anything about blocks or grids.
type blockAware interface {
	Blocks() *raster.BlockIndex
}

// GapFill attempts to append each unplaced candidate, smallest area
// first, to a sheet whose placements are already frozen inside strat
// (the strategy instance that packed the sheet's primary pass). Only the
// raster strategy calls this — its grid/block index lets a late, small
// candidate slot into leftover space without disturbing anything already
// placed, which is exactly the "frozen placements" precondition this
// function assumes.
//
// When strat is raster-backed, the free (not mostly-full) blocks are
// partitioned into connected regions once up front; a candidate whose
// bounding-box area exceeds every region's area is skipped without ever
// calling FindPlacement, since no contiguous free space could hold it.
func GapFill(token *strategy.CancelToken, strat strategy.Strategy, unplaced []model.Unplaced, pool map[string]model.PackablePolygon, sheetW, sheetH float64, rotations []float64, spacing float64) ([]model.Placement, []model.Unplaced) {
	ordered := make([]model.Unplaced, len(unplaced))
	copy(ordered, unplaced)
	sort.SliceStable(ordered, func(i, j int) bool {
		return pool[ordered[i].ID].Area < pool[ordered[j].ID].Area
	})

	var largestFreeRegion float64 = -1
	if ba, ok := strat.(blockAware); ok {
		if regions, err := ba.Blocks().FreeComponents(); err == nil {
			for _, r := range regions {
				if r.AreaInches > largestFreeRegion {
					largestFreeRegion = r.AreaInches
				}
			}
		}
	}

	var filled []model.Placement
	var stillUnplaced []model.Unplaced

	for _, u := range ordered {
		if token.Cancelled() {
			stillUnplaced = append(stillUnplaced, u)
			continue
		}
		candidate, ok := pool[u.ID]
		if !ok {
			stillUnplaced = append(stillUnplaced, u)
			continue
		}
		if largestFreeRegion >= 0 && candidate.Width*candidate.Height > largestFreeRegion {
			stillUnplaced = append(stillUnplaced, u)
			continue
		}
		placement, failure := strat.FindPlacement(token, candidate, sheetW, sheetH, rotations, spacing)
		if failure != nil {
			stillUnplaced = append(stillUnplaced, u)
			continue
		}
		placement.ID = candidate.ID
		strat.MarkPlaced(*placement, placement.Points)
		filled = append(filled, *placement)
	}

	return filled, stillUnplaced
}
