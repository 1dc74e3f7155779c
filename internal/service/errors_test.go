package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByKind(t *testing.T) {
	cause := errors.New("duplicate key")
	err := fmt.Errorf("register: %w", withCause(ErrEmailAlreadyRegistered, cause))

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, &Error{Kind: KindConflict, Reason: "another reason"})
}

func TestKindOfAndReasonOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   ErrorKind
		wantReason string
	}{
		{"validation", validationError(errors.New("name is required")), KindValidation, "name is required"},
		{"storage hides cause", storageError(errors.New("pq: relation does not exist")), KindStorage, "storage failure"},
		{"auth", ErrInvalidCredentials, KindAuth, "invalid credentials"},
		{"not a service error", errors.New("raw"), "", "internal server error"},
		{"nil", nil, "", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, KindOf(tt.err))
			assert.Equal(t, tt.wantReason, ReasonOf(tt.err))
		})
	}
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "not_found: invoice not found", ErrInvoiceNotFound.Error())
	assert.Equal(t, "storage: storage failure: boom", storageError(errors.New("boom")).Error())
}
