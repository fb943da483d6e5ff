//go:build unit

package booking_test

import (
	"testing"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ref(b *booking.Booking) *booking.Ref {
	return &booking.Ref{ID: b.ID(), BookerID: b.BookerID()}
}

func TestSummarize(t *testing.T) {
	now := builder.BaseTime

	t.Run("rejected bookings are skipped", func(t *testing.T) {
		a := bookingAt(t, now.Add(-5*day), now.Add(-4*day), booking.StatusApproved)
		b := bookingAt(t, now.Add(3*day), now.Add(4*day), booking.StatusWaiting)
		c := bookingAt(t, now.Add(-day), now.Add(day), booking.StatusRejected)

		got := booking.Summarize([]*booking.Booking{b, c, a}, now)

		want := booking.Summary{Last: ref(a), Next: ref(b)}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Summary mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("closest on each side wins", func(t *testing.T) {
		older := bookingAt(t, now.Add(-10*day), now.Add(-9*day), booking.StatusApproved)
		recent := bookingAt(t, now.Add(-2*day), now.Add(day), booking.StatusApproved)
		soon := bookingAt(t, now.Add(day), now.Add(2*day), booking.StatusWaiting)
		later := bookingAt(t, now.Add(7*day), now.Add(8*day), booking.StatusApproved)

		got := booking.Summarize([]*booking.Booking{later, older, soon, recent}, now)
		assert.Equal(t, ref(recent), got.Last)
		assert.Equal(t, ref(soon), got.Next)
	})

	t.Run("start equal to now is neither last nor next", func(t *testing.T) {
		b := bookingAt(t, now, now.Add(day), booking.StatusApproved)
		got := booking.Summarize([]*booking.Booking{b}, now)
		assert.Nil(t, got.Last)
		assert.Nil(t, got.Next)
	})

	t.Run("ties go to the later booking in scan order", func(t *testing.T) {
		first := bookingAt(t, now.Add(-day), now.Add(day), booking.StatusApproved)
		second := bookingAt(t, now.Add(-day), now.Add(2*day), booking.StatusWaiting)
		got := booking.Summarize([]*booking.Booking{first, second}, now)
		assert.Equal(t, ref(second), got.Last)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, booking.Summary{}, booking.Summarize(nil, now))
	})
}

func TestSummarizeByItem(t *testing.T) {
	now := builder.BaseTime
	itemA, itemB := uuid.New(), uuid.New()

	pastA, err := builder.NewBookingBuilder().WithItem(itemA).
		WithPeriod(now.Add(-3*day), now.Add(-2*day)).BuildDomain()
	assert.NoError(t, err)
	nextB, err := builder.NewBookingBuilder().WithItem(itemB).
		WithPeriod(now.Add(2*day), now.Add(3*day)).BuildDomain()
	assert.NoError(t, err)

	got := booking.SummarizeByItem([]*booking.Booking{pastA, nextB}, now)
	assert.Equal(t, ref(pastA), got[itemA].Last)
	assert.Nil(t, got[itemA].Next)
	assert.Equal(t, ref(nextB), got[itemB].Next)
	assert.Nil(t, got[itemB].Last)
}

func TestSummaryForViewer(t *testing.T) {
	owner := uuid.New()
	s := booking.Summary{Last: &booking.Ref{ID: uuid.New()}, Next: &booking.Ref{ID: uuid.New()}}

	assert.Equal(t, s, s.ForViewer(owner, owner))
	assert.Equal(t, booking.Summary{}, s.ForViewer(uuid.New(), owner))
}
