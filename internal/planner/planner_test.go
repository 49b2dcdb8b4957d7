package planner

import (
	"testing"

	"github.com/piwi3910/stickernest/internal/geom"
	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/progress"
	"github.com/piwi3910/stickernest/internal/raster"
	"github.com/piwi3910/stickernest/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(id string, side float64) model.PackablePolygon {
	return model.NewPackablePolygon(id, geom.Polygon{{0, 0}, {side, 0}, {side, side}, {0, side}})
}

func TestGenerateCandidatePool_ReachesBufferedTarget(t *testing.T) {
	designs := []model.PackablePolygon{square("a", 1)}
	pool := GenerateCandidatePool(designs, 10, 10, 1)
	assert.False(t, pool.CapHit)
	assert.NotEmpty(t, pool.Instances)

	var total float64
	for _, inst := range pool.Instances {
		total += inst.Area
		assert.Equal(t, "a", BaseID(inst.ID))
		assert.NotEqual(t, "a", inst.ID)
	}
	assert.GreaterOrEqual(t, total, 100.0*bufferSmall)
}

func TestGenerateCandidatePool_EmptyDesigns(t *testing.T) {
	pool := GenerateCandidatePool(nil, 10, 10, 1)
	assert.Empty(t, pool.Instances)
	assert.False(t, pool.CapHit)
}

func TestGenerateCandidatePool_CapHitForTinyDesigns(t *testing.T) {
	designs := []model.PackablePolygon{square("tiny", 0.01)}
	pool := GenerateCandidatePool(designs, 50, 50, 50)
	assert.True(t, pool.CapHit)
	assert.LessOrEqual(t, len(pool.Instances), poolCapCeiling)
}

func TestBaseID_StripsLastUnderscoreSuffix(t *testing.T) {
	assert.Equal(t, "design", BaseID("design_ab12cd34"))
	assert.Equal(t, "no_suffix_here", BaseID("no_suffix_here"))
}

func TestSortCandidates_RasterOrdersByHeightThenArea(t *testing.T) {
	pool := []model.PackablePolygon{square("short", 1), square("tall", 3), square("mid", 2)}
	SortCandidates(pool, strategy.Raster, false)
	assert.Equal(t, []string{"tall", "mid", "short"}, ids(pool))
}

func TestSortCandidates_GravityOrdersByAreaDescending(t *testing.T) {
	pool := []model.PackablePolygon{square("small", 1), square("big", 3)}
	SortCandidates(pool, strategy.Gravity, false)
	assert.Equal(t, []string{"big", "small"}, ids(pool))
}

func ids(pool []model.PackablePolygon) []string {
	out := make([]string, len(pool))
	for i, p := range pool {
		out[i] = p.ID
	}
	return out
}

func TestGroupByTag_UntaggedCollapsesToOneGroup(t *testing.T) {
	designs := []model.PackablePolygon{square("a", 1), square("b", 2)}
	groups := groupByTag(designs)
	require.Len(t, groups, 1)
	assert.Equal(t, "", groups[0].tag)
	assert.Len(t, groups[0].designs, 2)
}

func TestGroupByTag_SplitsByTagAndKeepsUniversalSeparate(t *testing.T) {
	a := square("a", 1)
	a.Tag = "oak"
	b := square("b", 1)
	b.Tag = "pine"
	c := square("c", 1)

	groups := groupByTag([]model.PackablePolygon{a, b, c})
	require.Len(t, groups, 3)
	assert.Equal(t, "oak", groups[0].tag)
	assert.Equal(t, "pine", groups[1].tag)
	assert.Equal(t, "", groups[2].tag)
	assert.Len(t, groups[2].designs, 1)
}

func TestEstimate_ConservativeFloorRejectsOversizedSet(t *testing.T) {
	designs := []model.PackablePolygon{square("a", 10), square("b", 10)}
	est := Estimate(designs, 10, 10, 1, 0)
	assert.False(t, est.CanFitInRequestedPages)
	assert.NotEmpty(t, est.Warning)
	assert.Greater(t, est.MinimumPagesNeeded, 1)
}

func TestEstimate_FitsComfortably(t *testing.T) {
	designs := []model.PackablePolygon{square("a", 2)}
	est := Estimate(designs, 12, 12, 1, 0)
	assert.True(t, est.CanFitInRequestedPages)
	assert.Equal(t, 1, est.MinimumPagesNeeded)
}

func TestPlan_ValidatesEmptyDesigns(t *testing.T) {
	token := strategy.NewCancelToken()
	_, err := Plan(token, newRasterStrategy, nil, 10, 10, 1, strategy.Raster, model.DefaultOptions(), progress.NewEmitter(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestPlan_FixedPageBudgetProducesExactSheetCount(t *testing.T) {
	opts := model.DefaultOptions()
	opts.PackAllItems = false
	token := strategy.NewCancelToken()

	result, err := Plan(token, newRasterStrategy, []model.PackablePolygon{square("design", 6)}, 12, 12, 3, strategy.Raster, opts, progress.NewEmitter(nil))
	require.NoError(t, err)
	assert.Len(t, result.Sheets, 3)

	total := 0
	for _, s := range result.Sheets {
		total += len(s.Placements)
	}
	assert.Greater(t, total, 0)
}

func TestPlan_GroupsByTagKeepMaterialsOnSeparateSheets(t *testing.T) {
	oak := square("oak-design", 6)
	oak.Tag = "oak"
	pine := square("pine-design", 6)
	pine.Tag = "pine"

	opts := model.DefaultOptions()
	opts.PackAllItems = false
	token := strategy.NewCancelToken()

	result, err := Plan(token, newRasterStrategy, []model.PackablePolygon{oak, pine}, 12, 12, 2, strategy.Raster, opts, progress.NewEmitter(nil))
	require.NoError(t, err)
	// Each tag group plans its own pageCount sheets independently, so two
	// tags at pageCount=2 yields four sheets total.
	assert.Len(t, result.Sheets, 4)
}

func TestGapFill_FillsLeftoverSpaceWithoutDisturbingExisting(t *testing.T) {
	strat := raster.New(6, 3, 20, 0.05)
	token := strategy.NewCancelToken()

	big := square("big", 3)
	placement, fail := strat.FindPlacement(token, big, 6, 3, []float64{0}, 0)
	require.Nil(t, fail)
	placement.ID = "big"
	strat.MarkPlaced(*placement, placement.Points)

	small := square("small", 1)
	pool := map[string]model.PackablePolygon{"small": small}
	unplaced := []model.Unplaced{{ID: "small", Reason: model.ReasonNoPosition}}

	filled, stillUnplaced := GapFill(token, strat, unplaced, pool, 6, 3, []float64{0}, 0)
	assert.Len(t, filled, 1)
	assert.Empty(t, stillUnplaced)
}

func TestGapFill_SkipsCandidateTooLargeForAnyFreeRegion(t *testing.T) {
	strat := raster.New(4, 4, 20, 0.05)
	token := strategy.NewCancelToken()

	first := square("first", 3)
	placement, fail := strat.FindPlacement(token, first, 4, 4, []float64{0}, 0)
	require.Nil(t, fail)
	placement.ID = "first"
	strat.MarkPlaced(*placement, placement.Points)

	tooBigForGap := square("big-gap", 3)
	pool := map[string]model.PackablePolygon{"big-gap": tooBigForGap}
	unplaced := []model.Unplaced{{ID: "big-gap", Reason: model.ReasonNoPosition}}

	_, stillUnplaced := GapFill(token, strat, unplaced, pool, 4, 4, []float64{0}, 0)
	assert.Len(t, stillUnplaced, 1)
}

func TestCompareScenarios_RunsEveryScenarioInOrder(t *testing.T) {
	scenarios := []Scenario{
		{Name: "first", Kind: strategy.Raster, Opts: model.DefaultOptions()},
		{Name: "second", Kind: strategy.NFP, Opts: model.DefaultOptions()},
	}
	var seen []string
	results, err := CompareScenarios(scenarios, func(kind strategy.Kind, opts model.Options) (model.MultiSheetResult, error) {
		seen = append(seen, string(kind))
		return model.MultiSheetResult{TotalUtilization: 42}, nil
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []string{"raster", "nfp"}, seen)
	assert.InDelta(t, 58, results[0].WastePercent, 1e-9)
}

func TestBuildDefaultScenarios_IncludesAlternateStrategyAndTighterSpacing(t *testing.T) {
	base := model.DefaultOptions()
	base.Spacing = 0.25
	scenarios := BuildDefaultScenarios(strategy.Raster, base)
	require.Len(t, scenarios, 3)
	assert.Equal(t, strategy.Raster, scenarios[0].Kind)
	assert.Equal(t, strategy.NFP, scenarios[1].Kind)
	assert.InDelta(t, 0.125, scenarios[2].Opts.Spacing, 1e-9)
}

func newRasterStrategy(kind strategy.Kind, sheetW, sheetH float64, opts model.Options) strategy.Strategy {
	return raster.New(sheetW, sheetH, opts.CellsPerInch, opts.StepSize)
}
