package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"salesflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "SO1001")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "SO1001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: SO1001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset by peer")
		err := errs.NewObjectNotFoundErrorWithCause("order", "SO1001", cause)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "SO1001", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: order, ID is: SO1001 (cause: connection reset by peer)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("line item", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("order number")

		assert.Equal(t, "order number", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: order number", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("SO1001 already exists")
		err := errs.NewValueIsInvalidErrorWithCause("order number", cause)

		assert.Equal(t, "order number", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: order number (cause: SO1001 already exists)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("negative priority")
		err := errs.NewValueIsOutOfRangeErrorWithCause("priority", -5, 0, 100, cause)

		assert.Equal(t, "priority", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is priority, min value is 0, max value is 100 (cause: negative priority)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("sku name", "Phone\nA", 0, 10)
		assert.Contains(t, err.Error(), "Phone A")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customer name")

		assert.Equal(t, "customer name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customer name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank cell")
		err := errs.NewValueIsRequiredErrorWithCause("customer name", cause)

		assert.Equal(t, "customer name", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customer name (cause: blank cell)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("order")

		assert.Equal(t, "order", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: order", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("expected version 3")
		err := errs.NewVersionIsInvalidErrorWithCause("order", cause)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: order (cause: expected version 3)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestPreconditionFailedError(t *testing.T) {
	t.Run("NewPreconditionFailedError", func(t *testing.T) {
		err := errs.NewPreconditionFailedError("all raw materials must be ordered")

		assert.Equal(t, "all raw materials must be ordered", err.Condition)
		assert.Equal(t, "precondition failed: all raw materials must be ordered", err.Error())
		assert.Equal(t, errs.ErrPreconditionFailed, err.Unwrap())
	})

	t.Run("NewPreconditionFailedErrorWithCause", func(t *testing.T) {
		cause := errors.New("item 2 pending")
		err := errs.NewPreconditionFailedErrorWithCause("QA approval required", cause)

		assert.Equal(t, "precondition failed: QA approval required (cause: item 2 pending)", err.Error())
	})
}

func TestOperationIsNotAllowedError(t *testing.T) {
	err := errs.NewOperationIsNotAllowedError("advance", "master orders do not move through stages")

	assert.Equal(t, "advance", err.Operation)
	assert.Equal(t,
		"operation is not allowed: advance (master orders do not move through stages)",
		err.Error())
	assert.Equal(t, errs.ErrOperationIsNotAllowed, err.Unwrap())
}

func TestClassification(t *testing.T) {
	t.Run("validation family", func(t *testing.T) {
		assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("customer")))
		assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("qty")))
		assert.True(t, errs.IsValidation(errs.NewValueIsOutOfRangeError("priority", -1, 0, 100)))
		assert.True(t, errs.IsValidation(errs.NewPreconditionFailedError("plant missing")))
		assert.False(t, errs.IsValidation(errs.NewObjectNotFoundError("order", "1")))
	})

	t.Run("wrapped errors keep their class", func(t *testing.T) {
		wrapped := fmt.Errorf("split order: %w", errs.NewObjectNotFoundError("order", "1"))
		assert.True(t, errs.IsNotFound(wrapped))

		joined := errors.Join(errors.New("other"), errs.NewVersionIsInvalidError("order"))
		assert.True(t, errs.IsConflict(joined))

		assert.True(t, errs.IsNotAllowed(errs.NewOperationIsNotAllowedError("advance", "terminal")))
	})

	t.Run("plain errors are not classified", func(t *testing.T) {
		err := errors.New("connection reset")
		assert.False(t, errs.IsValidation(err))
		assert.False(t, errs.IsNotFound(err))
		assert.False(t, errs.IsNotAllowed(err))
		assert.False(t, errs.IsConflict(err))
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionIsInvalid)
		require.Error(t, errs.ErrPreconditionFailed)
		require.Error(t, errs.ErrOperationIsNotAllowed)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
		assert.Equal(t, "precondition failed", errs.ErrPreconditionFailed.Error())
		assert.Equal(t, "operation is not allowed", errs.ErrOperationIsNotAllowed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("order", "SO1001")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("order number")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("customer name")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		versionInvalidErr := errs.NewVersionIsInvalidError("order")
		require.ErrorIs(t, versionInvalidErr, errs.ErrVersionIsInvalid)
	})
}
