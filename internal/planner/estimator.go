package planner

import (
	"fmt"
	"math"

	"github.com/piwi3910/stickernest/internal/model"
)

// Conservative efficiency floors used by the pre-flight estimator: a pack
// is declared unable to fit if it would need better than 50% sheet
// efficiency, and the reported minimum page count assumes a more
// optimistic but still conservative 60%.
const (
	cannotFitEfficiencyFloor = 0.50
	minimumPagesEfficiency   = 0.60
)

// Estimate runs the rasterization-only pre-flight check: total item area
// versus requested sheet capacity at a conservative efficiency floor. It
// never runs an actual pack.
func Estimate(designs []model.PackablePolygon, sheetW, sheetH float64, pageCount int, spacing float64) model.Estimate {
	var totalArea float64
	for _, d := range designs {
		totalArea += d.Area
	}

	sheetArea := sheetW * sheetH
	totalSheetArea := float64(pageCount) * sheetArea

	canFit := true
	var warning string
	if sheetArea > 0 && totalArea/(totalSheetArea*cannotFitEfficiencyFloor) > 1 {
		canFit = false
		warning = fmt.Sprintf("estimated item area %.2f exceeds the conservative 50%% capacity of %d sheet(s) (%.2f)", totalArea, pageCount, totalSheetArea*cannotFitEfficiencyFloor)
	}

	minimumPages := 0
	if sheetArea > 0 {
		minimumPages = int(math.Ceil(totalArea / (sheetArea * minimumPagesEfficiency)))
	}

	estimatedUtilization := 0.0
	if totalSheetArea > 0 {
		estimatedUtilization = totalArea / totalSheetArea * 100.0
	}

	return model.Estimate{
		TotalItemArea:          totalArea,
		TotalSheetArea:         totalSheetArea,
		EstimatedUtilization:   estimatedUtilization,
		MinimumPagesNeeded:     minimumPages,
		CanFitInRequestedPages: canFit,
		Warning:                warning,
	}
}
