// Package errs provides the standardized error types used across the
// production tracking application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct carrying the failing parameter and an optional Cause
//   - constructors with and without cause
//   - Error() producing a single-line message
//   - Unwrap() returning the sentinel
//
// Domain packages wrap these types for rule violations while keeping their own
// sentinels (e.g. order.ErrInvalidTransition) for business-level outcomes.
package errs
