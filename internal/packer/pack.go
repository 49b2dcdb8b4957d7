package packer

import (
	"context"
	"fmt"

	"github.com/piwi3910/stickernest/internal/model"
	"github.com/piwi3910/stickernest/internal/planner"
	"github.com/piwi3910/stickernest/internal/progress"
	"github.com/piwi3910/stickernest/internal/strategy"
)

// watchContext starts a goroutine that cancels token when ctx is done.
// The returned stop function must be called once the pack call returns to
// release the goroutine; it is the only place in this module a goroutine
// is spawned, matching the concurrency model's "context accepted only at
// the facade" rule.
func watchContext(ctx context.Context, token *strategy.CancelToken) (stop func()) {
	if ctx == nil {
		return func() {}
	}
	if ctx.Err() != nil {
		// Already cancelled/expired: fire synchronously so the very first
		// yield point observes it, rather than racing a goroutine against
		// the core loop's first iteration.
		token.Cancel()
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			token.Cancel()
		case <-done:
		}
	}()
	return func() { close(done) }
}

func validateSingle(polygons []model.PackablePolygon, sheetW, sheetH, spacing float64) error {
	if len(polygons) == 0 {
		return model.InvalidInputError("polygon set is empty")
	}
	if sheetW <= 0 || sheetH <= 0 {
		return model.InvalidInputError("sheet dimensions must be positive")
	}
	if spacing < 0 {
		return model.InvalidInputError("spacing must not be negative")
	}
	for _, p := range polygons {
		if len(p.Points) < 3 {
			return model.InvalidInputError(fmt.Sprintf("polygon %q has fewer than 3 vertices", p.ID))
		}
	}
	return nil
}

// Pack places polygons once each on a single sheetW x sheetH sheet using
// the strategy named by kind, honoring opts (rotations, spacing, timeout).
// listener, if non-nil, receives progress events as described in
// internal/progress. unit selects whether polygons/sheet dimensions (and
// the returned placements) are in inches or millimeters.
func Pack(ctx context.Context, polygons []model.PackablePolygon, sheetW, sheetH float64, kind strategy.Kind, opts model.Options, unit Unit, listener progress.Listener) (model.Result, error) {
	opts = opts.ApplyRotationPreset()
	converted, w, h, spacing := unit.toInches(polygons, sheetW, sheetH, opts.Spacing)
	if err := validateSingle(converted, w, h, spacing); err != nil {
		return model.Result{}, err
	}

	token := strategy.NewCancelToken()
	if opts.Timeout > 0 {
		timeoutCtx, cancel := context.WithTimeout(contextOrBackground(ctx), opts.Timeout)
		defer cancel()
		ctx = timeoutCtx
	}
	stop := watchContext(ctx, token)
	defer stop()

	strat := newStrategy(kind, w, h, opts)
	emitter := progress.NewEmitter(listener)
	placed, unplaced := planner.PackSheet(token, strat, converted, w, h, opts.Rotations, spacing, emitter)

	result := model.Result{
		Placements:  placed,
		Utilization: strat.Utilization(),
		Unplaced:    unplaced,
	}
	result = unit.resultToOutput(result)
	if token.Cancelled() {
		return result, model.CancelledError()
	}
	return result, nil
}

// PackMulti runs the full multi-sheet production pack: oversubscribe,
// sort, pack sheet by sheet, honoring opts.PackAllItems fixed-vs-auto-expand
// semantics. unit selects the coordinate system of designs/sheet/result,
// matching Pack.
func PackMulti(ctx context.Context, designs []model.PackablePolygon, sheetW, sheetH float64, pageCount int, kind strategy.Kind, opts model.Options, unit Unit, listener progress.Listener) (model.MultiSheetResult, error) {
	opts = opts.ApplyRotationPreset()
	converted, w, h, spacing := unit.toInches(designs, sheetW, sheetH, opts.Spacing)
	opts.Spacing = spacing

	emitter := progress.NewEmitter(listener)
	if kind == strategy.Raster && !opts.PackAllItems {
		// Per the estimator's fixed-pages contract (spec.md 4.7): a
		// "cannot fit" verdict aborts before any sheet is packed, rather
		// than letting the planner discover the shortfall candidate by
		// candidate. Only the raster strategy's pre-flight is defined;
		// the other strategies proceed straight to planning.
		est := planner.Estimate(converted, w, h, pageCount, spacing)
		emitter.EstimatingEvent(fmt.Sprintf("estimated utilization %.1f%%, minimum %d page(s) needed", est.EstimatedUtilization, est.MinimumPagesNeeded))
		if !est.CanFitInRequestedPages {
			return model.MultiSheetResult{}, model.InsufficientSpaceError(est.Warning)
		}
	}

	token := strategy.NewCancelToken()
	if opts.Timeout > 0 {
		timeoutCtx, cancel := context.WithTimeout(contextOrBackground(ctx), opts.Timeout)
		defer cancel()
		ctx = timeoutCtx
	}
	stop := watchContext(ctx, token)
	defer stop()

	result, err := planner.Plan(token, newStrategy, converted, w, h, pageCount, kind, opts, emitter)
	return unit.multiResultToOutput(result), err
}

// Estimate runs the rasterization-oriented pre-flight check described in
// spec.md section 4.7: whether designs plausibly fit within pageCount
// sheets at a conservative efficiency floor, without running an actual
// pack.
func Estimate(designs []model.PackablePolygon, sheetW, sheetH float64, pageCount int, spacing float64, unit Unit) (model.Estimate, error) {
	converted, w, h, s := unit.toInches(designs, sheetW, sheetH, spacing)
	if len(converted) == 0 {
		return model.Estimate{}, model.InvalidInputError("design set is empty")
	}
	if w <= 0 || h <= 0 {
		return model.Estimate{}, model.InvalidInputError("sheet dimensions must be positive")
	}
	if pageCount <= 0 {
		return model.Estimate{}, model.InvalidInputError("pageCount must be positive")
	}
	return planner.Estimate(converted, w, h, pageCount, s), nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
