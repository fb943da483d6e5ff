//go:build unit || e2e

package builder

import (
	"time"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/handler/dto/request"
	"gin-shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

// BaseTime is the "now" used across tests; far enough ahead that requested
// periods stay in the future for the real clock too.
var BaseTime = time.Date(2030, 1, 15, 12, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ItemID   uuid.UUID
	BookerID uuid.UUID
	Start    time.Time
	End      time.Time
	Status   booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ItemID:   uuid.New(),
		BookerID: uuid.New(),
		Start:    BaseTime.Add(24 * time.Hour),
		End:      BaseTime.Add(48 * time.Hour),
		Status:   booking.StatusWaiting,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.NewPeriod(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	if b.Status == booking.StatusWaiting {
		return booking.NewBooking(b.ItemID, b.BookerID, period), nil
	}
	return booking.Reconstruct(uuid.New(), b.ItemID, b.BookerID, b.Start, b.End, b.Status), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:     uuid.New(),
		Start:  b.Start,
		End:    b.End,
		Status: b.Status.String(),
		Item: queries.BookingItemView{
			ID:        b.ItemID,
			Name:      "Drill",
			Available: true,
		},
		Booker: queries.BookingUserView{
			ID:   b.BookerID,
			Name: "Booker",
		},
		ItemOwnerID: uuid.New(),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithItem(itemID uuid.UUID) *BookingBuilder {
	b.ItemID = itemID
	return b
}

func (b *BookingBuilder) WithBooker(bookerID uuid.UUID) *BookingBuilder {
	b.BookerID = bookerID
	return b
}
