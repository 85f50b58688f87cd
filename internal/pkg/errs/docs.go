// Package errs provides standardized error types for the catering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups errors into three kinds that callers can match with errors.Is:
//   - not found: ObjectNotFoundError (ErrObjectNotFound)
//   - invalid input: ValueIsInvalidError, ValueIsRequiredError,
//     ValueIsOutOfRangeError (ErrValueIsInvalid, ErrValueIsRequired, ErrValueIsOutOfRange)
//   - conflict: ConflictError (ErrConflict)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
package errs
