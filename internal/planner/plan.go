package planner

import (
	"fmt"

	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/progress"
	"github.com/piwi3910/stickernest/internal/strategy"
)

// HardSheetCap is the absolute ceiling on auto-expansion: packAllItems
// mode stops producing new sheets once this many have been made, even if
// candidates remain.
const HardSheetCap = 100

// NewStrategy constructs a fresh strategy instance for one sheet. The
// planner takes this as a dependency rather than importing the strategy
// packages or internal/packer directly, so that the facade package (the
// natural home for "pick an implementation of an interface defined
// elsewhere") can own the dispatch without creating an import cycle.
type NewStrategy func(kind strategy.Kind, sheetW, sheetH float64, opts model.Options) strategy.Strategy

// Plan runs the full multi-sheet production pack: validate, group by
// Tag, oversubscribe and sort each group's candidate pool, pack sheet by
// sheet (honoring packAllItems fixed vs. auto-expand modes and the
// raster-only gap-filling pass), and aggregate quantities/utilization
// across every group.
func Plan(token *strategy.CancelToken, newStrategy NewStrategy, designs []model.PackablePolygon, sheetW, sheetH float64, pageCount int, kind strategy.Kind, opts model.Options, emitter progress.Emitter) (model.MultiSheetResult, error) {
	if err := validate(designs, sheetW, sheetH, opts.Spacing, pageCount); err != nil {
		return model.MultiSheetResult{}, err
	}

	groups := groupByTag(designs)
	quantities := make(map[string]int)
	var allSheets []model.Sheet
	var messages []string
	var totalPlacedArea, totalSheetArea float64

	for _, group := range groups {
		sheets, groupQuantities, message, err := planGroup(token, newStrategy, group.designs, sheetW, sheetH, pageCount, kind, opts, emitter)
		if err != nil {
			return model.MultiSheetResult{}, err
		}
		for _, sheet := range sheets {
			allSheets = append(allSheets, sheet)
			totalSheetArea += sheetW * sheetH
			for _, p := range sheet.Placements {
				totalPlacedArea += p.Points.Area()
			}
		}
		for id, n := range groupQuantities {
			quantities[id] += n
		}
		if message != "" {
			messages = append(messages, message)
		}
		if token.Cancelled() {
			break
		}
	}

	for i := range allSheets {
		allSheets[i].Index = i
	}

	totalUtilization := 0.0
	if totalSheetArea > 0 {
		totalUtilization = totalPlacedArea / totalSheetArea * 100.0
	}

	result := model.MultiSheetResult{
		Sheets:           allSheets,
		TotalUtilization: totalUtilization,
		Quantities:       quantities,
		Message:          joinMessages(messages),
	}
	if token.Cancelled() {
		return result, model.CancelledError()
	}
	return result, nil
}

func validate(designs []model.PackablePolygon, sheetW, sheetH, spacing float64, pageCount int) error {
	if len(designs) == 0 {
		return model.InvalidInputError("design set is empty")
	}
	if sheetW <= 0 || sheetH <= 0 {
		return model.InvalidInputError("sheet dimensions must be positive")
	}
	if spacing < 0 {
		return model.InvalidInputError("spacing must not be negative")
	}
	if pageCount <= 0 {
		return model.InvalidInputError("pageCount must be positive")
	}
	for _, d := range designs {
		if len(d.Points) < 3 {
			return model.InvalidInputError(fmt.Sprintf("design %q has fewer than 3 vertices", d.ID))
		}
	}
	return nil
}

// planGroup runs oversubscription, sorting, and sheet-by-sheet packing
// for one Tag group, honoring the fixed-pages vs. auto-expand modes.
func planGroup(token *strategy.CancelToken, newStrategy NewStrategy, designs []model.PackablePolygon, sheetW, sheetH float64, pageCount int, kind strategy.Kind, opts model.Options, emitter progress.Emitter) ([]model.Sheet, map[string]int, string, error) {
	pool := GenerateCandidatePool(designs, sheetW, sheetH, pageCount)
	if pool.CapHit {
		emitter.WarningEvent("candidate pool hit its absolute cap before reaching the target area")
	}
	SortCandidates(pool.Instances, kind, kind == strategy.NFP)

	byID := make(map[string]model.PackablePolygon, len(pool.Instances))
	for _, instance := range pool.Instances {
		byID[instance.ID] = instance
	}

	remaining := pool.Instances
	quantities := make(map[string]int)
	var sheets []model.Sheet
	message := ""

	sheetIndex := 0
	for len(remaining) > 0 {
		if !opts.PackAllItems && sheetIndex >= pageCount {
			break
		}
		if opts.PackAllItems && sheetIndex >= HardSheetCap {
			message = fmt.Sprintf("stopped auto-expansion at the %d-sheet hard cap with %d candidate(s) still unplaced", HardSheetCap, len(remaining))
			break
		}
		if opts.PackAllItems && sheetIndex == pageCount {
			emitter.ExpandingEvent(pageCount, pageCount+1)
		}

		strat := newStrategy(kind, sheetW, sheetH, opts)
		placed, unplaced := PackSheet(token, strat, remaining, sheetW, sheetH, opts.Rotations, opts.Spacing, emitter)

		if kind == strategy.Raster && len(unplaced) > 0 {
			filled, stillUnplaced := GapFill(token, strat, unplaced, byID, sheetW, sheetH, opts.Rotations, opts.Spacing)
			placed = append(placed, filled...)
			unplaced = stillUnplaced
		}

		if len(placed) > 0 {
			sheets = append(sheets, model.Sheet{Index: sheetIndex, Placements: placed, Utilization: strat.Utilization()})
			for _, p := range placed {
				quantities[BaseID(p.ID)]++
			}
		}

		remaining = remaining[:0]
		for _, u := range unplaced {
			remaining = append(remaining, byID[u.ID])
		}

		sheetIndex++
		if token.Cancelled() {
			break
		}
		if len(placed) == 0 {
			// A sheet that placed nothing means the remaining pool cannot
			// fit no matter how many more sheets are tried.
			break
		}
	}

	if !opts.PackAllItems && len(remaining) > 0 && message == "" {
		message = fmt.Sprintf("%d candidate(s) did not fit within the requested %d-page budget", len(remaining), pageCount)
	}
	if opts.PackAllItems && len(sheets) > pageCount && message == "" {
		message = fmt.Sprintf("auto-expanded from %d to %d sheet(s)", pageCount, len(sheets))
	}

	return sheets, quantities, message, nil
}

func joinMessages(messages []string) string {
	out := ""
	for i, m := range messages {
		if i > 0 {
			out += "; "
		}
		out += m
	}
	return out
}
