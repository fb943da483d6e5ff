package item

import "gin-shareit/internal/pkg/errs"

var (
	ErrInvalidName        = errs.Mark(errs.New("item name must not be blank"), errs.ErrValidation)
	ErrInvalidDescription = errs.Mark(errs.New("item description must not be blank"), errs.ErrValidation)

	ErrItemNotFound     = errs.Mark(errs.New("item not found"), errs.ErrNotFound)
	ErrItemNotAvailable = errs.Mark(errs.New("item is not available for booking"), errs.ErrNotAvailable)
	ErrNotItemOwner     = errs.Mark(errs.New("only the owner can manage this item"), errs.ErrNotOwner)

	// Bookings are kept as history, so a booked item cannot be removed.
	ErrItemHasBookings = errs.Mark(errs.New("item has bookings and cannot be deleted"), errs.ErrConflict)
)
