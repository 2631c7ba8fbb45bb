// Package errs provides standardized error types for the fulfilment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - BusinessRuleViolationError: For when an operation would break a hard
//     business limit (capacity ceilings, fan-out limits, duplicate codes)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinel families map directly onto transport semantics: required,
// invalid, and out-of-range values are caller mistakes (400), missing objects
// are 404, and business rule violations are conflicts (409). The HTTP adapter
// relies on errors.Is against the sentinels for this classification.
package errs
