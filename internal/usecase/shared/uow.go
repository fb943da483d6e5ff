package shared

import (
	"context"
	"time"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/domain/comment"
	"gin-shareit/internal/domain/item"
	"gin-shareit/internal/domain/itemrequest"
	"gin-shareit/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Bookings() BookingRepository
	Comments() CommentRepository
	Requests() RequestRepository
}

// Repositories report a missing row as an infra.RepositoryError of kind
// NOT_FOUND; callers translate it to the domain error.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ItemRepository interface {
	Create(ctx context.Context, it *item.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, it *item.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByOwner orders by creation time, oldest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*item.Item, error)
	// Search matches available items whose name or description contains
	// text, ignoring case.
	Search(ctx context.Context, text string, page Page) ([]*item.Item, error)
	// ListByRequests returns the items answering any of the requests.
	ListByRequests(ctx context.Context, requestIDs []uuid.UUID) ([]*item.Item, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindByIDForUpdate locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	// FindAcceptedByItems returns WAITING and APPROVED bookings of the items.
	FindAcceptedByItems(ctx context.Context, itemIDs []uuid.UUID) ([]*booking.Booking, error)
	// CountPrior counts the bookings matching booking.EndedBefore.
	CountPrior(ctx context.Context, itemID, userID uuid.UUID, now time.Time) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) error
	// ListByItems returns comments oldest first.
	ListByItems(ctx context.Context, itemIDs []uuid.UUID) ([]CommentRecord, error)
}

type RequestRepository interface {
	Create(ctx context.Context, r *itemrequest.ItemRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*itemrequest.ItemRequest, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// ListByRequester returns the requester's requests, newest first.
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*itemrequest.ItemRequest, error)
	// ListOthers returns everyone else's requests, newest first.
	ListOthers(ctx context.Context, userID uuid.UUID, page Page) ([]*itemrequest.ItemRequest, error)
}

// CommentRecord is a stored comment joined with its author's name.
type CommentRecord struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Text       string
	CreatedAt  time.Time
}
