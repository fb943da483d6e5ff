//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/pkg/errs"
	"gin-shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

func bookingAt(t *testing.T, start, end time.Time, status booking.Status) *booking.Booking {
	t.Helper()
	b, err := builder.NewBookingBuilder().WithPeriod(start, end).WithStatus(status).BuildDomain()
	require.NoError(t, err)
	return b
}

func TestClassify(t *testing.T) {
	now := builder.BaseTime

	cases := []struct {
		name       string
		start, end time.Time
		want       booking.State
		ok         bool
	}{
		{name: "straddles now", start: now.Add(-day), end: now.Add(day), want: booking.StateCurrent, ok: true},
		{name: "ended yesterday", start: now.Add(-2 * day), end: now.Add(-day), want: booking.StatePast, ok: true},
		{name: "starts tomorrow", start: now.Add(day), end: now.Add(2 * day), want: booking.StateFuture, ok: true},
		{name: "starts exactly now", start: now, end: now.Add(day), want: booking.StateCurrent, ok: true},
		{name: "ends exactly now", start: now.Add(-day), end: now, ok: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := booking.Classify(bookingAt(t, c.start, c.end, booking.StatusApproved), now)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestStatePredicate(t *testing.T) {
	now := builder.BaseTime
	current := bookingAt(t, now.Add(-day), now.Add(day), booking.StatusApproved)
	past := bookingAt(t, now.Add(-2*day), now.Add(-day), booking.StatusWaiting)
	future := bookingAt(t, now.Add(day), now.Add(2*day), booking.StatusRejected)
	all := []*booking.Booking{current, past, future}

	cases := []struct {
		state booking.State
		want  []*booking.Booking
	}{
		{state: booking.StateAll, want: all},
		{state: booking.StateCurrent, want: []*booking.Booking{current}},
		{state: booking.StatePast, want: []*booking.Booking{past}},
		{state: booking.StateFuture, want: []*booking.Booking{future}},
		{state: booking.StateWaiting, want: []*booking.Booking{past}},
		{state: booking.StateRejected, want: []*booking.Booking{future}},
	}

	for _, c := range cases {
		t.Run(c.state.String(), func(t *testing.T) {
			spec := c.state.Predicate(now)
			var got []*booking.Booking
			for _, b := range all {
				if spec.Matches(booking.Candidate{Booking: b, OwnerID: uuid.New()}) {
					got = append(got, b)
				}
			}
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseState(t *testing.T) {
	for in, want := range map[string]booking.State{
		"":         booking.StateAll,
		"all":      booking.StateAll,
		"Current":  booking.StateCurrent,
		"PAST":     booking.StatePast,
		"future":   booking.StateFuture,
		"waiting":  booking.StateWaiting,
		"REJECTED": booking.StateRejected,
	} {
		got, err := booking.ParseState(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := booking.ParseState("UNSUPPORTED_STATUS")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrValidation))
	assert.Contains(t, err.Error(), "Unknown state: UNSUPPORTED_STATUS")
}
