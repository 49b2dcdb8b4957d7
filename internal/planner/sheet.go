package planner

import (
	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/progress"
	"github.com/piwi3910/stickernest/internal/strategy"
)

// PackSheet runs candidates through strat in order, emitting progress
// events at the yield points defined by the concurrency model: once
// before each candidate's search begins, and immediately after a
// successful placement. It returns the placements made and the
// candidates that could not be placed, and stops early (returning
// whatever remains as unplaced, including candidates never attempted)
// if token is cancelled mid-sheet.
func PackSheet(token *strategy.CancelToken, strat strategy.Strategy, candidates []model.PackablePolygon, sheetW, sheetH float64, rotations []float64, spacing float64, emitter progress.Emitter) ([]model.Placement, []model.Unplaced) {
	placements := make([]model.Placement, 0, len(candidates))
	var unplaced []model.Unplaced
	total := len(candidates)

	for i, candidate := range candidates {
		if token.Cancelled() {
			for _, remaining := range candidates[i:] {
				unplaced = append(unplaced, model.Unplaced{ID: remaining.ID, Reason: model.ReasonNoPosition})
			}
			break
		}

		emitter.Trying(candidate.ID, i, total)

		placement, failure := strat.FindPlacement(token, candidate, sheetW, sheetH, rotations, spacing)
		if failure != nil {
			unplaced = append(unplaced, model.Unplaced{ID: candidate.ID, Reason: failure.Reason})
			emitter.FailedEvent(candidate.ID, i, total, failure.Reason, failure.PositionsTried, failure.RotationsTried, failure.GridUtilization)
			continue
		}

		placement.ID = candidate.ID
		strat.MarkPlaced(*placement, placement.Points)
		placements = append(placements, *placement)
		emitter.PlacedEvent(candidate.ID, i, total, *placement)
	}

	return placements, unplaced
}
