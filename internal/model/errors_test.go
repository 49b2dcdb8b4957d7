package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidInputError_IsSentinel(t *testing.T) {
	err := InvalidInputError("empty design set")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, KindInvalidInput, err.Kind)
	assert.Contains(t, err.Error(), "empty design set")
}

func TestInsufficientSpaceError_IsSentinel(t *testing.T) {
	err := InsufficientSpaceError("needs 5 pages, got 3")
	assert.True(t, errors.Is(err, ErrInsufficientSpace))
	assert.Contains(t, err.Error(), "needs 5 pages")
}

func TestCancelledError_IsSentinel(t *testing.T) {
	err := CancelledError()
	assert.True(t, errors.Is(err, ErrCancelled))
}

func TestInternalError_CarriesCandidateID(t *testing.T) {
	err := InternalError("sticker-a_3", "negative area after rotation")
	assert.True(t, errors.Is(err, ErrInternal))
	assert.Equal(t, "sticker-a_3", err.Candidate)
	assert.Contains(t, err.Error(), "sticker-a_3")
	assert.Contains(t, err.Error(), "negative area after rotation")
}
