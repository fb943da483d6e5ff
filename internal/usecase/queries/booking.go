package queries

import (
	"context"
	"fmt"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/infra"
	"gin-shareit/internal/pkg/clock"
	"gin-shareit/internal/pkg/errs"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubjectRole string

const (
	RoleBooker SubjectRole = "booker"
	RoleOwner  SubjectRole = "owner"
)

// NoBookingsError reports an empty listing. It is marked errs.ErrNotFound.
type NoBookingsError struct {
	State     booking.State
	SubjectID uuid.UUID
	Role      SubjectRole
}

func (e *NoBookingsError) Error() string {
	return fmt.Sprintf("no bookings in state %s for %s %s", e.State, e.Role, e.SubjectID)
}

type BookingQueries interface {
	GetByID(ctx context.Context, requesterID, bookingID uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID uuid.UUID, state booking.State, page shared.Page) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State, page shared.Page) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List returns bookings matching spec ordered by start time, latest first.
	List(ctx context.Context, spec booking.Spec, page shared.Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
	clock     clock.Clock
}

func NewBookingQueries(readStore BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, requesterID, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}

	if requesterID != view.Booker.ID && requesterID != view.ItemOwnerID {
		return nil, booking.ErrAccessDenied
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID uuid.UUID, state booking.State, page shared.Page) ([]*BookingView, error) {
	return q.list(ctx, booking.ByBooker(bookerID), bookerID, RoleBooker, state, page)
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State, page shared.Page) ([]*BookingView, error) {
	return q.list(ctx, booking.ByOwner(ownerID), ownerID, RoleOwner, state, page)
}

func (q *bookingQueriesImpl) list(ctx context.Context, identity booking.Spec, subjectID uuid.UUID, role SubjectRole, state booking.State, page shared.Page) ([]*BookingView, error) {
	now := q.clock.Now()
	spec := identity.AndSpec(state.Predicate(now))

	views, err := q.readStore.List(ctx, spec, page)
	if err != nil {
		return nil, err
	}

	if len(views) == 0 {
		return nil, errs.Mark(&NoBookingsError{State: state, SubjectID: subjectID, Role: role}, errs.ErrNotFound)
	}

	return views, nil
}
