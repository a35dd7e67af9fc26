// Package errs provides the standard value and lookup errors of the ordering
// core. Domain packages define their own sentinel errors for business rule
// violations; this package covers the generic cases shared by all of them.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: a repository lookup found nothing
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) returned by Unwrap,
//     so callers classify with errors.Is
//   - a struct exposing the offending parameter and an optional Cause
//   - constructors with and without cause
package errs
