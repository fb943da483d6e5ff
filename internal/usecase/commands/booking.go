package commands

import (
	"context"
	"log/slog"
	"time"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/domain/item"
	"gin-shareit/internal/domain/user"
	"gin-shareit/internal/infra"
	"gin-shareit/internal/pkg/clock"
	"gin-shareit/internal/pkg/metrics"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, req CreateBookingRequest) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, requesterID uuid.UUID, req CreateBookingRequest) (*booking.Booking, error) {
	period, err := booking.NewRequestedPeriod(req.Start, req.End, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Items().FindByID(ctx, req.ItemID)
		if err != nil {
			return translateNotFound(err, item.ErrItemNotFound)
		}
		if !it.Available() {
			return item.ErrItemNotAvailable
		}
		if it.IsOwnedBy(requesterID) {
			return booking.ErrSelfBooking
		}

		exists, err := tx.Users().Exists(ctx, requesterID)
		if err != nil {
			return err
		}
		if !exists {
			return user.ErrUserNotFound
		}

		b := booking.NewBooking(it.ID(), requesterID, period)
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	slog.InfoContext(ctx, "booking created",
		"booking_id", created.ID(),
		"item_id", created.ItemID(),
		"booker_id", requesterID)

	return created, nil
}

func (uc *bookingCommandsImpl) UpdateStatus(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) (*booking.Booking, error) {
	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return translateNotFound(err, booking.ErrBookingNotFound)
		}

		it, err := tx.Items().FindByID(ctx, b.ItemID())
		if err != nil {
			return translateNotFound(err, item.ErrItemNotFound)
		}
		if err := it.EnsureOwner(actorID); err != nil {
			return err
		}

		if err := b.Decide(approve); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingDecision(updated.Status().String())
	slog.InfoContext(ctx, "booking status changed",
		"booking_id", updated.ID(),
		"status", updated.Status().String(),
		"owner_id", actorID)

	return updated, nil
}

// translateNotFound maps a repository NOT_FOUND to the given domain error.
func translateNotFound(err, domainErr error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return domainErr
	}
	return err
}

// translateReferenced maps a delete blocked by a foreign key to domainErr.
func translateReferenced(err, domainErr error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return domainErr
	}
	return err
}
