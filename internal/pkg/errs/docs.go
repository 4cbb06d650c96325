// Package errs provides standardized error types for the sales order workflow.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - PreconditionFailedError: a stage or milestone rule that is not yet satisfied
//   - ObjectNotFoundError: a referenced order, item or customer does not exist
//   - OperationIsNotAllowedError: a structurally disallowed operation
//   - VersionIsInvalidError: a concurrent modification was detected
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// IsValidation, IsNotFound, IsNotAllowed and IsConflict classify any error
// chain into the categories surfaced to callers.
package errs
