package model

import "time"

// Options carries the tunables a caller may set for a pack/packMulti call.
// Zero-value Options is not valid; use DefaultOptions and override fields.
type Options struct {
	// Spacing is the minimum gap, in inches, enforced between placed
	// shapes. The raster and bottom-left strategies also keep it between
	// shapes and the sheet edges; the gravity and nfp strategies do not
	// (their shapes may touch the sheet edges).
	Spacing float64
	// Rotations is the discrete rotation set tried, in order, for each
	// candidate. RotationPreset, if non-zero, overrides this field via
	// ApplyRotationPreset.
	Rotations []float64
	// CellsPerInch is the raster strategy's grid resolution.
	CellsPerInch float64
	// StepSize is the fine-grid step used by the raster, bottom-left and
	// gravity strategies.
	StepSize float64
	// RotationPreset is a shorthand for Rotations plus a matching
	// CellsPerInch/StepSize adjustment; see RotationPresets. Zero means
	// "use Rotations/CellsPerInch/StepSize as given".
	RotationPreset int
	// PackAllItems selects the planner's auto-expand mode.
	PackAllItems bool
	// Timeout bounds wall-clock time for a single pack call; the facade
	// translates it into cancellation of the internal token (see §5 of
	// the design notes — the core itself has no notion of time).
	Timeout time.Duration
}

// DefaultOptions returns the documented defaults: 1/16" spacing, the four
// axis rotations, a 100 cells-per-inch raster grid, a 0.05" fine step,
// fixed-page mode, and a 30s timeout.
func DefaultOptions() Options {
	return Options{
		Spacing:      0.0625,
		Rotations:    []float64{0, 90, 180, 270},
		CellsPerInch: 100,
		StepSize:     0.05,
		PackAllItems: false,
		Timeout:      30 * time.Second,
	}
}

// rotationPreset is one row of the RotationPreset lookup table: the
// rotation count plus the cellsPerInch/stepSize this module scales to
// when that preset is selected. Finer rotation sets search far more
// (rotation x position) combinations per candidate, so the grid is
// coarsened and the step widened in proportion — an explicit trade-off,
// not a claim that the multipliers below are optimal (open question,
// see DESIGN.md).
type rotationPreset struct {
	count        int
	cellsPerInch float64
	stepSize     float64
}

// RotationPresets maps the shorthand preset key (degrees between
// rotations) to its rotation count and matching grid coarseness.
var RotationPresets = map[int]rotationPreset{
	90: {count: 4, cellsPerInch: 100, stepSize: 0.05},
	45: {count: 8, cellsPerInch: 75, stepSize: 0.075},
	15: {count: 24, cellsPerInch: 50, stepSize: 0.1},
	10: {count: 36, cellsPerInch: 40, stepSize: 0.125},
	5:  {count: 72, cellsPerInch: 25, stepSize: 0.2},
}

// ApplyRotationPreset expands o.RotationPreset (if set) into o.Rotations,
// o.CellsPerInch, and o.StepSize, replacing whatever those fields held.
// Unknown preset keys are left untouched.
func (o Options) ApplyRotationPreset() Options {
	preset, ok := RotationPresets[o.RotationPreset]
	if !ok {
		return o
	}
	step := 360.0 / float64(preset.count)
	rotations := make([]float64, preset.count)
	for i := range rotations {
		rotations[i] = step * float64(i)
	}
	o.Rotations = rotations
	o.CellsPerInch = preset.cellsPerInch
	o.StepSize = preset.stepSize
	return o
}
