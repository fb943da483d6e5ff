//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/domain/comment"
	"gin-shareit/internal/domain/item"
	"gin-shareit/internal/pkg/clock"
	"gin-shareit/internal/pkg/errs"
	"gin-shareit/internal/usecase/commands"
	"gin-shareit/tests/common/builder"
	"gin-shareit/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CommentCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memstore.Store
	clock    *clock.MockClock
	commands commands.CommentCommands

	ownerID  uuid.UUID
	bookerID uuid.UUID
	itemID   uuid.UUID
}

func (s *CommentCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(builder.BaseTime)
	s.commands = commands.NewCommentCommands(s.store, s.clock)

	s.ownerID = s.store.SeedUser("Owner", "owner@example.com")
	s.bookerID = s.store.SeedUser("Bob", "bob@example.com")
	s.itemID = s.store.SeedItem(s.ownerID, "Drill", true)
}

func TestCommentCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommentCommandsTestSuite))
}

// seedBooking stores a booking of the suite item by the booker, offset
// from BaseTime.
func (s *CommentCommandsTestSuite) seedBooking(start, end time.Duration, status booking.Status) {
	b, err := builder.NewBookingBuilder().
		WithItem(s.itemID).
		WithBooker(s.bookerID).
		WithPeriod(builder.BaseTime.Add(start), builder.BaseTime.Add(end)).
		WithStatus(status).
		BuildDomain()
	s.Require().NoError(err)
	s.store.SeedBooking(b)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CommentCommandsTestSuite) TestCreate() {
	text := builder.NewCommentBuilder().Text

	s.Run("success: booker with a finished booking comments", func() {
		s.seedBooking(-48*time.Hour, -24*time.Hour, booking.StatusApproved)

		result, err := s.commands.Create(s.ctx, s.bookerID, s.itemID, "  "+text+"  ")

		s.Require().NoError(err)
		s.Equal(text, result.Comment.Text().String())
		s.Equal("Bob", result.AuthorName)
		s.Equal(builder.BaseTime, result.Comment.CreatedAt())
	})

	s.Run("error: no finished booking", func() {
		testCases := []struct {
			name   string
			start  time.Duration
			end    time.Duration
			status booking.Status
		}{
			{name: "booking still running", start: -time.Hour, end: time.Hour, status: booking.StatusApproved},
			{name: "booking ends exactly now", start: -time.Hour, end: 0, status: booking.StatusApproved},
			{name: "finished booking was rejected", start: -48 * time.Hour, end: -24 * time.Hour, status: booking.StatusRejected},
			{name: "booking in the future", start: time.Hour, end: 2 * time.Hour, status: booking.StatusWaiting},
		}

		for _, tc := range testCases {
			s.SetupTest()
			s.Run(tc.name, func() {
				s.seedBooking(tc.start, tc.end, tc.status)

				result, err := s.commands.Create(s.ctx, s.bookerID, s.itemID, text)

				s.Nil(result)
				s.True(errs.Is(err, comment.ErrNoPriorBooking), "got %v", err)
				s.True(errs.Is(err, errs.ErrNotAvailable))
			})
		}
	})

	s.Run("error: text length is checked after trimming", func() {
		testCases := []struct {
			name string
			text string
		}{
			{name: "blank", text: "     "},
			{name: "too short once trimmed", text: "  abcd  "},
			{name: "too long", text: strings.Repeat("a", comment.MaxTextLength+1)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				_, err := s.commands.Create(s.ctx, s.bookerID, s.itemID, tc.text)

				s.True(errs.Is(err, comment.ErrInvalidText))
			})
		}
	})

	s.Run("error: unknown item", func() {
		_, err := s.commands.Create(s.ctx, s.bookerID, uuid.New(), text)

		s.True(errs.Is(err, item.ErrItemNotFound))
	})
}

// ================================================================================
// TestCanComment
// ================================================================================

func (s *CommentCommandsTestSuite) TestCanComment() {
	s.Run("false without bookings", func() {
		ok, err := s.commands.CanComment(s.ctx, s.bookerID, s.itemID)

		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("true once a booking has ended", func() {
		s.seedBooking(-2*time.Hour, -time.Hour, booking.StatusWaiting)

		ok, err := s.commands.CanComment(s.ctx, s.bookerID, s.itemID)

		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("other users stay ineligible", func() {
		ok, err := s.commands.CanComment(s.ctx, s.ownerID, s.itemID)

		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("error: unknown item", func() {
		_, err := s.commands.CanComment(s.ctx, s.bookerID, uuid.New())

		s.True(errs.Is(err, item.ErrItemNotFound))
	})
}
