//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/pkg/clock"
	"gin-shareit/internal/pkg/errs"
	"gin-shareit/internal/usecase/queries"
	"gin-shareit/internal/usecase/shared"
	"gin-shareit/tests/common/builder"
	"gin-shareit/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const day = 24 * time.Hour

type BookingQueriesTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memstore.Store
	queries queries.BookingQueries

	ownerID  uuid.UUID
	bookerID uuid.UUID
	otherID  uuid.UUID

	past, current, waiting, rejected uuid.UUID
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.queries = queries.NewBookingQueries(s.store.BookingReadStore(), clock.NewMockClock(builder.BaseTime))

	s.ownerID = s.store.SeedUser("Owner", "owner@example.com")
	s.bookerID = s.store.SeedUser("Booker", "booker@example.com")
	s.otherID = s.store.SeedUser("Other", "other@example.com")
	itemID := s.store.SeedItem(s.ownerID, "Drill", true)

	seed := func(start, end time.Duration, status booking.Status) uuid.UUID {
		b, err := builder.NewBookingBuilder().
			WithItem(itemID).
			WithBooker(s.bookerID).
			WithPeriod(builder.BaseTime.Add(start), builder.BaseTime.Add(end)).
			WithStatus(status).
			BuildDomain()
		s.Require().NoError(err)
		s.store.SeedBooking(b)
		return b.ID()
	}
	s.past = seed(-3*day, -2*day, booking.StatusApproved)
	s.current = seed(-time.Hour, time.Hour, booking.StatusApproved)
	s.waiting = seed(day, 2*day, booking.StatusWaiting)
	s.rejected = seed(3*day, 4*day, booking.StatusRejected)
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func ids(views []*queries.BookingView) []uuid.UUID {
	out := make([]uuid.UUID, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingQueriesTestSuite) TestList() {
	testCases := []struct {
		state    booking.State
		expected []uuid.UUID
	}{
		{state: booking.StateAll, expected: []uuid.UUID{s.rejected, s.waiting, s.current, s.past}},
		{state: booking.StateCurrent, expected: []uuid.UUID{s.current}},
		{state: booking.StatePast, expected: []uuid.UUID{s.past}},
		{state: booking.StateFuture, expected: []uuid.UUID{s.rejected, s.waiting}},
		{state: booking.StateWaiting, expected: []uuid.UUID{s.waiting}},
		{state: booking.StateRejected, expected: []uuid.UUID{s.rejected}},
	}

	for _, tc := range testCases {
		s.Run("booker "+tc.state.String(), func() {
			views, err := s.queries.ListByBooker(s.ctx, s.bookerID, tc.state, shared.DefaultPage())

			s.Require().NoError(err)
			s.Equal(tc.expected, ids(views))
		})
		s.Run("owner "+tc.state.String(), func() {
			views, err := s.queries.ListByOwner(s.ctx, s.ownerID, tc.state, shared.DefaultPage())

			s.Require().NoError(err)
			s.Equal(tc.expected, ids(views))
		})
	}

	s.Run("pagination windows the sorted result", func() {
		views, err := s.queries.ListByBooker(s.ctx, s.bookerID, booking.StateAll, shared.Page{Offset: 1, Size: 2})

		s.Require().NoError(err)
		s.Equal([]uuid.UUID{s.waiting, s.current}, ids(views))
	})

	s.Run("views carry item and booker", func() {
		views, err := s.queries.ListByOwner(s.ctx, s.ownerID, booking.StateCurrent, shared.DefaultPage())

		s.Require().NoError(err)
		s.Equal("Drill", views[0].Item.Name)
		s.Equal("Booker", views[0].Booker.Name)
		s.Equal(booking.StatusApproved.String(), views[0].Status)
	})

	s.Run("error: empty listing", func() {
		testCases := []struct {
			name string
			call func() ([]*queries.BookingView, error)
			role queries.SubjectRole
		}{
			{
				name: "owner role for a booker",
				call: func() ([]*queries.BookingView, error) {
					return s.queries.ListByOwner(s.ctx, s.bookerID, booking.StateAll, shared.DefaultPage())
				},
				role: queries.RoleOwner,
			},
			{
				name: "booker role for an owner",
				call: func() ([]*queries.BookingView, error) {
					return s.queries.ListByBooker(s.ctx, s.ownerID, booking.StateWaiting, shared.DefaultPage())
				},
				role: queries.RoleBooker,
			},
			{
				name: "page past the end",
				call: func() ([]*queries.BookingView, error) {
					return s.queries.ListByBooker(s.ctx, s.bookerID, booking.StateAll, shared.Page{Offset: 10, Size: 10})
				},
				role: queries.RoleBooker,
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				views, err := tc.call()

				s.Nil(views)
				s.True(errs.Is(err, errs.ErrNotFound))
				var noBookings *queries.NoBookingsError
				s.Require().True(errs.As(err, &noBookings))
				s.Equal(tc.role, noBookings.Role)
			})
		}
	})
}

// ================================================================================
// TestGetByID
// ================================================================================

func (s *BookingQueriesTestSuite) TestGetByID() {
	s.Run("success: booker and owner see the booking", func() {
		for _, requester := range []uuid.UUID{s.bookerID, s.ownerID} {
			view, err := s.queries.GetByID(s.ctx, requester, s.waiting)

			s.Require().NoError(err)
			s.Equal(s.waiting, view.ID)
			s.Equal(s.ownerID, view.ItemOwnerID)
		}
	})

	s.Run("error: unrelated user gets not found", func() {
		_, err := s.queries.GetByID(s.ctx, s.otherID, s.waiting)

		s.True(errs.Is(err, booking.ErrAccessDenied))
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: unknown booking", func() {
		_, err := s.queries.GetByID(s.ctx, s.bookerID, uuid.New())

		s.True(errs.Is(err, booking.ErrBookingNotFound))
	})
}
