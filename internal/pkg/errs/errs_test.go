package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func (l label) String() string { return string(l) }

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
		assert.Equal(t, errs.CodeNotFound, err.ErrorCode())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("user", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: user 42 (cause: database connection failed)", err.Error())
	})

	t.Run("newlines in identifiers are flattened", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "a\nb")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("city")

		assert.Equal(t, "value is required: city", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, errs.CodeValueRequired, err.ErrorCode())
	})

	t.Run("invalid with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("role", errors.New("unknown role"))

		assert.Equal(t, "value is invalid: role (cause: unknown role)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, errs.CodeValueInvalid, err.ErrorCode())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError(errs.CodeInvalidOrderTransition, "order", label("PENDING"), label("DELIVERED"))

	assert.Equal(t, "PENDING", err.From)
	assert.Equal(t, "DELIVERED", err.To)
	assert.Equal(t, "invalid transition: order PENDING -> DELIVERED", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, errs.CodeInvalidOrderTransition, err.ErrorCode())
}

func TestPolicyDisabledError(t *testing.T) {
	err := errs.NewPolicyDisabledError(errs.CodeRiderSelfServiceDisabled, "ask an administrator")

	require.ErrorIs(t, err, errs.ErrPolicyDisabled)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, "policy disabled: ask an administrator", err.Error())
}

func TestConflictErrorWithCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := errs.NewConflictErrorWithCause(errs.CodeDisputeAlreadyExists, "dispute already exists", cause)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, "conflict: dispute already exists (cause: duplicate key)", err.Error())
}

func TestCodeOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want errs.Code
	}{
		{"forbidden", errs.NewForbiddenError(errs.CodeNotAssignedAgency, "x"), errs.CodeNotAssignedAgency},
		{"invalid state", errs.NewInvalidStateError(errs.CodeOrderNotDelivered, "x"), errs.CodeOrderNotDelivered},
		{"wrapped", fmt.Errorf("handler: %w", errs.NewConflictError(errs.CodeJobAlreadyAssigned, "x")), errs.CodeJobAlreadyAssigned},
		{"plain", errors.New("boom"), errs.CodeUnknown},
		{"nil", nil, errs.CodeUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.CodeOf(tc.err))
		})
	}
}
