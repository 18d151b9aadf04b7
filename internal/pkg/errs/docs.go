// Package errs provides the standardized error types used across the
// transfer-order service. It implements a consistent pattern for error
// creation, formatting, and unwrapping.
//
// The taxonomy mirrors the failure classes of the order lifecycle:
//   - ValueIsRequiredError / ValueIsInvalidError: missing or malformed input,
//     recoverable locally, no state change
//   - ObjectNotFoundError: an order, line, product or warehouse does not resolve
//   - InvalidStateError: an operation attempted outside its legal lifecycle
//     state, for example editing lines on a non-draft order
//   - ConflictError: the operation cannot be applied to the current data, for
//     example splitting a line that is not strictly partial
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
package errs
