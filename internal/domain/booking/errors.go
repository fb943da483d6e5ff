package booking

import "gin-shareit/internal/pkg/errs"

var (
	ErrInvalidStatus = errs.Mark(errs.New("invalid booking status"), errs.ErrValidation)
	ErrInvalidPeriod = errs.Mark(errs.New("booking end must be after its start"), errs.ErrValidation)
	ErrStartInPast   = errs.Mark(errs.New("booking start must be in the future"), errs.ErrValidation)

	ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	// Unrelated users get the same answer as for a missing booking.
	ErrAccessDenied = errs.Mark(errs.New("booking not found for this user"), errs.ErrNotFound)
	ErrSelfBooking  = errs.Mark(errs.New("owner cannot book their own item"), errs.ErrNotFound)

	ErrAlreadyDecided = errs.Mark(errs.New("booking already has the requested status"), errs.ErrNotAvailable)
)
