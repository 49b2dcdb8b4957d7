// Package progress defines the structured progress events a strategy or
// planner emits while packing, and a listener wrapper that makes
// invocation nil-safe and guarantees events are never reordered relative
// to candidate processing.
package progress

import "github.com/piwi3910/stickernest/internal/model"

// EventKind identifies which field of Event is populated.
type EventKind int

const (
	Trying EventKind = iota
	Placed
	Failed
	Expanding
	Estimating
	Warning
)

// Event is emitted once per candidate (Trying/Placed/Failed), plus
// occasional planner-level notices (Expanding/Estimating/Warning).
type Event struct {
	Kind EventKind

	// Trying, Placed, Failed
	ID    string
	Index int
	Total int

	// Placed
	Placement model.Placement

	// Failed
	Reason          string
	PositionsTried  int
	RotationsTried  int
	GridUtilization float64

	// Expanding
	FromSheets int
	ToSheets   int

	// Estimating, Warning
	Message string
}

// Listener receives Events. A nil Listener is valid and ignored.
type Listener func(Event)

// Emitter wraps a Listener so core loops can call Emit unconditionally
// without a nil check at every call site, and so a future change to
// buffering/async delivery has one place to land. Emit is always called
// synchronously from the core loop at the two yield points the design
// defines (candidate start, immediately after a placed event) — never
// from inside a geometry primitive or an inner (x,y) scan.
type Emitter struct {
	listener Listener
}

// NewEmitter wraps listener, which may be nil.
func NewEmitter(listener Listener) Emitter {
	return Emitter{listener: listener}
}

// Emit delivers ev to the wrapped listener, or does nothing if there is
// none.
func (e Emitter) Emit(ev Event) {
	if e.listener == nil {
		return
	}
	e.listener(ev)
}

// Trying reports that the strategy is about to search for a placement
// for candidate id (index of total).
func (e Emitter) Trying(id string, index, total int) {
	e.Emit(Event{Kind: Trying, ID: id, Index: index, Total: total})
}

// PlacedEvent reports a successful placement.
func (e Emitter) PlacedEvent(id string, index, total int, placement model.Placement) {
	e.Emit(Event{Kind: Placed, ID: id, Index: index, Total: total, Placement: placement})
}

// FailedEvent reports that candidate id could not be placed after
// exhaustive search.
func (e Emitter) FailedEvent(id string, index, total int, reason string, positionsTried, rotationsTried int, gridUtilization float64) {
	e.Emit(Event{
		Kind:            Failed,
		ID:              id,
		Index:           index,
		Total:           total,
		Reason:          reason,
		PositionsTried:  positionsTried,
		RotationsTried:  rotationsTried,
		GridUtilization: gridUtilization,
	})
}

// ExpandingEvent reports the planner auto-expanding past its original
// page budget.
func (e Emitter) ExpandingEvent(from, to int) {
	e.Emit(Event{Kind: Expanding, FromSheets: from, ToSheets: to})
}

// EstimatingEvent reports a pre-flight estimator message.
func (e Emitter) EstimatingEvent(message string) {
	e.Emit(Event{Kind: Estimating, Message: message})
}

// WarningEvent reports a non-fatal warning, such as the candidate pool
// hitting its absolute cap before reaching the target area.
func (e Emitter) WarningEvent(message string) {
	e.Emit(Event{Kind: Warning, Message: message})
}
