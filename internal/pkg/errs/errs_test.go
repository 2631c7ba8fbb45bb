package errs_test

import (
	"errors"
	"testing"

	"fulfilment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("businessUnitCode", "MWH.001")

		assert.Equal(t, "businessUnitCode", err.ParamName)
		assert.Equal(t, "MWH.001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: MWH.001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("businessUnitCode", "MWH.001", cause)

		assert.Equal(t, "businessUnitCode", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: businessUnitCode, ID is: MWH.001 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("location")

		assert.Equal(t, "location", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: location", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown identifier")
		err := errs.NewValueIsInvalidErrorWithCause("location", cause)

		assert.Equal(t, "location", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: location (cause: unknown identifier)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("stock", 150, 0, 120)

		assert.Equal(t, "stock", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is stock, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("capacity", -5, 1, 100, cause)

		assert.Equal(t, "capacity", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is capacity, min value is 1, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("businessUnitCode")

		assert.Equal(t, "businessUnitCode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: businessUnitCode", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("businessUnitCode", cause)

		assert.Equal(t, "businessUnitCode", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: businessUnitCode (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestBusinessRuleViolationError(t *testing.T) {
	t.Run("NewBusinessRuleViolationError", func(t *testing.T) {
		err := errs.NewBusinessRuleViolationError("maximum number of warehouses reached for location ZWOLLE-001")

		require.NoError(t, err.Cause)
		assert.Equal(t,
			"business rule violated: maximum number of warehouses reached for location ZWOLLE-001",
			err.Error())
		assert.Equal(t, errs.ErrBusinessRuleViolated, err.Unwrap())
	})

	t.Run("NewBusinessRuleViolationErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewBusinessRuleViolationErrorWithCause("assignment already exists", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"business rule violated: assignment already exists (cause: duplicate key value violates unique constraint)",
			err.Error())
		assert.Equal(t, errs.ErrBusinessRuleViolated, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrBusinessRuleViolated)
	})

	t.Run("errors.Is matches through typed errors", func(t *testing.T) {
		var err error = errs.NewBusinessRuleViolationError("stock mismatch")
		assert.True(t, errors.Is(err, errs.ErrBusinessRuleViolated))
		assert.False(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}
