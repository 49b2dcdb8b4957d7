package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the terminal error kinds a pack call may surface.
// CandidatePoolCap and PlacementFailure are not terminal: they are
// reported as a progress warning event and as Unplaced entries
// respectively.
var (
	ErrInvalidInput      = errors.New("model: invalid input")
	ErrInsufficientSpace = errors.New("model: insufficient space for requested page count")
	ErrCancelled         = errors.New("model: pack cancelled")
	ErrInternal          = errors.New("model: internal invariant violation")
)

// Kind classifies a PackError for callers that want to branch on the
// error taxonomy without string matching.
type Kind int

const (
	KindInvalidInput Kind = iota
	KindInsufficientSpace
	KindCancelled
	KindInternal
)

// PackError wraps one of the sentinel errors above with the offending
// candidate ID (when known) so a caller can both errors.Is the sentinel
// and inspect structured detail.
type PackError struct {
	Kind      Kind
	Candidate string
	Err       error
}

func (e *PackError) Error() string {
	if e.Candidate == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Candidate)
}

func (e *PackError) Unwrap() error {
	return e.Err
}

// InvalidInputError wraps ErrInvalidInput with a specific reason.
func InvalidInputError(reason string) *PackError {
	return &PackError{Kind: KindInvalidInput, Err: fmt.Errorf("%w: %s", ErrInvalidInput, reason)}
}

// InsufficientSpaceError wraps ErrInsufficientSpace with the estimator's
// warning string.
func InsufficientSpaceError(warning string) *PackError {
	return &PackError{Kind: KindInsufficientSpace, Err: fmt.Errorf("%w: %s", ErrInsufficientSpace, warning)}
}

// CancelledError wraps ErrCancelled.
func CancelledError() *PackError {
	return &PackError{Kind: KindCancelled, Err: ErrCancelled}
}

// InternalError wraps ErrInternal with the offending candidate ID and a
// reason describing the violated invariant.
func InternalError(candidate, reason string) *PackError {
	return &PackError{Kind: KindInternal, Candidate: candidate, Err: fmt.Errorf("%w: %s", ErrInternal, reason)}
}
