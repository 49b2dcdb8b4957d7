package planner

import (
	"fmt"

	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/strategy"
)

// Scenario names a run of the planner under a particular option set,
// generalizing the teacher's ComparisonScenario
// (internal/engine/compare.go) from cut settings to nesting options.
type Scenario struct {
	Name string
	Kind strategy.Kind
	Opts model.Options
}

// ComparisonResult pairs a Scenario with its packed outcome and the
// summary statistics a caller would want side by side.
type ComparisonResult struct {
	Scenario     Scenario
	Result       model.MultiSheetResult
	SheetsUsed   int
	WastePercent float64
}

// CompareScenarios runs the same design pool through every scenario via
// run (normally a closure over packer.PackMulti) and returns results in
// scenario order, mirroring CompareScenarios in the teacher.
func CompareScenarios(scenarios []Scenario, run func(kind strategy.Kind, opts model.Options) (model.MultiSheetResult, error)) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		result, err := run(scenario.Kind, scenario.Opts)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}

		results = append(results, ComparisonResult{
			Scenario:     scenario,
			Result:       result,
			SheetsUsed:   len(result.Sheets),
			WastePercent: 100.0 - result.TotalUtilization,
		})
	}
	return results, nil
}

// BuildDefaultScenarios generates a small set of what-if alternatives
// around a base configuration: the other strategy, and a tighter
// spacing, mirroring the teacher's BuildDefaultScenarios.
func BuildDefaultScenarios(baseKind strategy.Kind, base model.Options) []Scenario {
	scenarios := []Scenario{{Name: "current", Kind: baseKind, Opts: base}}

	altKind := strategy.NFP
	if baseKind == strategy.NFP {
		altKind = strategy.Raster
	}
	scenarios = append(scenarios, Scenario{Name: fmt.Sprintf("alternate strategy (%s)", altKind), Kind: altKind, Opts: base})

	if base.Spacing > 0 {
		tight := base
		tight.Spacing = base.Spacing * 0.5
		scenarios = append(scenarios, Scenario{Name: fmt.Sprintf("tighter spacing %.4f\"", tight.Spacing), Kind: baseKind, Opts: tight})
	}

	return scenarios
}
