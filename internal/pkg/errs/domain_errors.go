package errs

import "errors"

// Error kinds shared by domain, usecase and handler layers.
// Concrete errors are attached to a kind with Mark and tested with Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrNotAvailable = errors.New("not available")
	ErrNotOwner     = errors.New("not owner")

	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// KindOf returns the kind err is marked with, or nil.
func KindOf(err error) error {
	for _, kind := range []error{ErrNotFound, ErrNotAvailable, ErrNotOwner, ErrValidation, ErrUnauthorized, ErrConflict} {
		if Is(err, kind) {
			return kind
		}
	}
	return nil
}
