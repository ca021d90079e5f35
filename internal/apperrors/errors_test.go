package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_Is(t *testing.T) {
	err := apperrors.Newf(apperrors.ErrUnbalancedEntry, "debits %s, credits %s", "100", "90")

	assert.True(t, errors.Is(err, apperrors.ErrUnbalancedEntry))
	assert.True(t, errors.Is(err, apperrors.ErrValidation), "specific errors match their kind sentinel")
	assert.False(t, errors.Is(err, apperrors.ErrUnknownAccount))
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Contains(t, err.Error(), "debits 100, credits 90")
}

func TestAppError_WrappedChain(t *testing.T) {
	cause := errors.New("pg: unique violation")
	err := fmt.Errorf("post entry: %w", apperrors.Wrap(apperrors.ErrDuplicateSource, cause, "%s/%s", "invoice", "INV-1"))

	assert.True(t, errors.Is(err, apperrors.ErrDuplicateSource))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, apperrors.KindDuplicateSource, apperrors.KindOf(err))
	assert.Equal(t, "DUPLICATE_SOURCE", apperrors.CodeOf(err))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{"sentinel", apperrors.ErrNotFound, apperrors.KindNotFound},
		{"specific", apperrors.ErrUnmappedEventKind, apperrors.KindConfiguration},
		{"wrapped", fmt.Errorf("x: %w", apperrors.ErrAccountInUse), apperrors.KindConflict},
		{"plain", errors.New("boom"), apperrors.KindStorage},
		{"constructed", apperrors.NewAppError(apperrors.KindValidation, "bad token", nil), apperrors.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.KindOf(tt.err))
		})
	}
}
