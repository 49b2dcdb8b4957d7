package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 0.0625, o.Spacing)
	assert.Equal(t, []float64{0, 90, 180, 270}, o.Rotations)
	assert.Equal(t, 100.0, o.CellsPerInch)
	assert.Equal(t, 0.05, o.StepSize)
	assert.False(t, o.PackAllItems)
	assert.Equal(t, 30*time.Second, o.Timeout)
}

func TestApplyRotationPreset_ExpandsEvenlySpacedRotations(t *testing.T) {
	o := DefaultOptions()
	o.RotationPreset = 15
	o = o.ApplyRotationPreset()

	require.Len(t, o.Rotations, 24)
	assert.Equal(t, 0.0, o.Rotations[0])
	assert.InDelta(t, 15.0, o.Rotations[1], 1e-9)
	assert.Equal(t, 50.0, o.CellsPerInch)
	assert.Equal(t, 0.1, o.StepSize)
}

func TestApplyRotationPreset_UnknownKeyIsNoOp(t *testing.T) {
	o := DefaultOptions()
	o.RotationPreset = 7
	applied := o.ApplyRotationPreset()
	assert.Equal(t, o, applied)
}

func TestRotationPresets_FinerPresetsCoarsenGrid(t *testing.T) {
	// As rotation count grows, cellsPerInch should shrink and stepSize grow
	// (more (rotation x position) combinations per candidate).
	p90 := RotationPresets[90]
	p5 := RotationPresets[5]
	assert.Greater(t, p5.count, p90.count)
	assert.Less(t, p5.cellsPerInch, p90.cellsPerInch)
	assert.Greater(t, p5.stepSize, p90.stepSize)
}
