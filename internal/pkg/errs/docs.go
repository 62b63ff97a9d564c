// Package errs provides the error taxonomy shared by the marketplace core.
//
// Every error kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrForbidden, ErrConflict, ...) usable with errors.Is
//   - a struct type carrying the details of the failure
//   - constructors, Error() for formatting and Unwrap() returning the sentinel
//
// Domain failures additionally carry a stable machine-readable Code so that
// transport layers can render localized messages without matching on text.
// CodeOf extracts the code from any error chain.
package errs
