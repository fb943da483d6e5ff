package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id       uuid.UUID
	itemID   uuid.UUID
	bookerID uuid.UUID
	period   Period
	status   Status
}

// NewBooking creates a request waiting for the owner's decision.
func NewBooking(itemID, bookerID uuid.UUID, period Period) *Booking {
	return &Booking{
		id:       uuid.New(),
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}
}

// Reconstruct rebuilds a booking from storage without validation.
func Reconstruct(id, itemID, bookerID uuid.UUID, start, end time.Time, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		period:   Period{start: start, end: end},
		status:   status,
	}
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) ItemID() uuid.UUID   { return b.itemID }
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }
func (b *Booking) Period() Period      { return b.period }
func (b *Booking) Start() time.Time    { return b.period.start }
func (b *Booking) End() time.Time      { return b.period.end }
func (b *Booking) Status() Status      { return b.status }

// Decide applies the owner's decision. The booking is unchanged on error.
func (b *Booking) Decide(approve bool) error {
	next, err := b.status.Decide(approve)
	if err != nil {
		return err
	}
	b.status = next
	return nil
}

// VisibleTo reports whether userID may see the booking: its booker or the
// owner of the booked item.
func (b *Booking) VisibleTo(userID, itemOwnerID uuid.UUID) bool {
	return userID == b.bookerID || userID == itemOwnerID
}
