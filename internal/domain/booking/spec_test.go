//go:build unit

package booking_test

import (
	"testing"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSpec(t *testing.T) {
	now := builder.BaseTime
	ownerID := uuid.New()
	b := bookingAt(t, now.Add(-2*day), now.Add(-day), booking.StatusApproved)
	c := booking.Candidate{Booking: b, OwnerID: ownerID}

	t.Run("zero spec matches everything", func(t *testing.T) {
		assert.True(t, booking.Spec{}.Matches(c))
		assert.Empty(t, booking.Spec{}.Terms())
	})

	t.Run("identity terms", func(t *testing.T) {
		assert.True(t, booking.ByBooker(b.BookerID()).Matches(c))
		assert.False(t, booking.ByBooker(uuid.New()).Matches(c))
		assert.True(t, booking.ByOwner(ownerID).Matches(c))
		assert.False(t, booking.ByOwner(b.BookerID()).Matches(c))
		assert.True(t, booking.ByItem(b.ItemID()).Matches(c))
	})

	t.Run("conjunction", func(t *testing.T) {
		spec := booking.ByOwner(ownerID).AndSpec(booking.StatePast.Predicate(now))
		assert.True(t, spec.Matches(c))
		assert.Len(t, spec.Terms(), 2)

		spec = spec.AndSpec(booking.WithStatus(booking.StatusRejected))
		assert.False(t, spec.Matches(c))
	})

	t.Run("And does not alias the receiver", func(t *testing.T) {
		base := booking.ByOwner(ownerID)
		a := base.And(booking.StartAfter{T: now})
		bb := base.And(booking.EndBefore{T: now})

		assert.Len(t, base.Terms(), 1)
		assert.Equal(t, booking.StartAfter{T: now}, a.Terms()[1])
		assert.Equal(t, booking.EndBefore{T: now}, bb.Terms()[1])
	})

	t.Run("comment eligibility spec", func(t *testing.T) {
		assert.True(t, booking.EndedBefore(b.ItemID(), b.BookerID(), now).Matches(c))
		assert.False(t, booking.EndedBefore(b.ItemID(), b.BookerID(), now.Add(-2*day)).Matches(c))

		rejected := bookingAt(t, now.Add(-2*day), now.Add(-day), booking.StatusRejected)
		assert.False(t, booking.EndedBefore(rejected.ItemID(), rejected.BookerID(), now).
			Matches(booking.Candidate{Booking: rejected}))
	})
}
