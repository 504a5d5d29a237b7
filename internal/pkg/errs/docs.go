// Package errs provides standardized error types for the shipping module.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: a required value (e.g. an item's shipment) is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found in storage
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is support
//
// Precondition violations in the grouping and persistence paths are reported
// with ValueIsRequiredError naming the missing field, never defaulted.
package errs
