package queries

import (
	"time"

	"github.com/google/uuid"
)

// UserView represents read-optimized user data
type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// BookingView is a booking joined with its item and booker
type BookingView struct {
	ID     uuid.UUID       `json:"id"`
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Status string          `json:"status"`
	Item   BookingItemView `json:"item"`
	Booker BookingUserView `json:"booker"`

	ItemOwnerID uuid.UUID `json:"-"`
}

type BookingItemView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
}

type BookingUserView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ItemView carries the availability summary only for the owner
type ItemView struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Available   bool            `json:"available"`
	RequestID   *uuid.UUID      `json:"request_id"`
	LastBooking *BookingRefView `json:"last_booking"`
	NextBooking *BookingRefView `json:"next_booking"`
	Comments    []CommentView   `json:"comments"`
}

type BookingRefView struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"booker_id"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

// RequestView is an item request with the items listed in answer to it
type RequestView struct {
	ID          uuid.UUID         `json:"id"`
	Description string            `json:"description"`
	Created     time.Time         `json:"created"`
	Items       []RequestItemView `json:"items"`
}

type RequestItemView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	RequestID   uuid.UUID `json:"request_id"`
}
