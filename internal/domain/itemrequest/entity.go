// Package itemrequest models a user asking for an item nobody lists yet.
// Owners answer a request by listing an item that references it.
package itemrequest

import (
	"strings"
	"time"
	"unicode/utf8"

	"gin-shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MinDescriptionLength = 10
	MaxDescriptionLength = 500
)

var (
	ErrInvalidDescription = errs.Mark(
		errs.Newf("request description must be %d to %d characters", MinDescriptionLength, MaxDescriptionLength),
		errs.ErrValidation,
	)
	ErrRequestNotFound = errs.Mark(errs.New("item request not found"), errs.ErrNotFound)
)

type ItemRequest struct {
	id          uuid.UUID
	requesterID uuid.UUID
	description string
	createdAt   time.Time
}

func NewItemRequest(requesterID uuid.UUID, description string, now time.Time) (*ItemRequest, error) {
	description = strings.TrimSpace(description)
	if n := utf8.RuneCountInString(description); n < MinDescriptionLength || n > MaxDescriptionLength {
		return nil, ErrInvalidDescription
	}
	return &ItemRequest{
		id:          uuid.New(),
		requesterID: requesterID,
		description: description,
		createdAt:   now,
	}, nil
}

func Reconstruct(id, requesterID uuid.UUID, description string, createdAt time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		requesterID: requesterID,
		description: description,
		createdAt:   createdAt,
	}
}

func (r *ItemRequest) ID() uuid.UUID          { return r.id }
func (r *ItemRequest) RequesterID() uuid.UUID { return r.requesterID }
func (r *ItemRequest) Description() string    { return r.description }
func (r *ItemRequest) CreatedAt() time.Time   { return r.createdAt }
