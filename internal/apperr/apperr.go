// Package apperr defines the error categories handlers translate to HTTP
// status codes. Lower layers wrap these sentinels with context via
// fmt.Errorf("%w: ..."), and the mapping to a response happens exactly once
// at the handler boundary.
package apperr

import "errors"

var (
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthenticated marks a missing, invalid, or expired credential.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound marks an entity that is absent or not owned by the caller.
	// The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness violation, e.g. a duplicate email.
	ErrConflict = errors.New("conflict")
)
