package request

import (
	"time"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"item_id" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// PageQuery binds from/size; absent values fall back to the first page.
type PageQuery struct {
	From int `form:"from,default=0"`
	Size int `form:"size,default=10"`
}

func (q PageQuery) ToPage() (shared.Page, error) {
	return shared.NewPage(q.From, q.Size)
}

type ListBookingsQuery struct {
	PageQuery
	State string `form:"state,default=ALL"`
}

func (q ListBookingsQuery) ToState() (booking.State, error) {
	return booking.ParseState(q.State)
}

type DecideBookingQuery struct {
	Approved *bool `form:"approved" binding:"required"`
}
