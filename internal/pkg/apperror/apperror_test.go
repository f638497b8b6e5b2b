package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("paper not found"), KindNotFound},
		{"conflict", Conflict("already liked"), KindConflict},
		{"bad request", BadRequest("page must be positive"), KindBadRequest},
		{"unauthorized", Unauthorized("missing token"), KindUnauthorized},
		{"wrapped with fmt", fmt.Errorf("service: %w", NotFound("notice not found")), KindNotFound},
		{"plain error", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessageOfHidesInternalDetails(t *testing.T) {
	err := Internal("failed to save great", errors.New("pq: connection refused"))

	assert.Equal(t, "internal server error", MessageOf(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "paper not found", MessageOf(NotFound("paper not found")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Wrap(KindConflict, "already liked", cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, Is(err, KindConflict))
	assert.False(t, Is(nil, KindConflict))
}
