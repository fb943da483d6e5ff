package item

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 2000
)

type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
	requestID   *uuid.UUID
	createdAt   time.Time
}

func NewItem(ownerID uuid.UUID, name, description string, available bool) (*Item, error) {
	it := &Item{
		id:        uuid.New(),
		ownerID:   ownerID,
		available: available,
	}
	if err := it.setName(name); err != nil {
		return nil, err
	}
	if err := it.setDescription(description); err != nil {
		return nil, err
	}
	return it, nil
}

// Reconstruct rebuilds an item loaded from storage.
func Reconstruct(id, ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID, createdAt time.Time) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   createdAt,
	}
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) OwnerID() uuid.UUID   { return i.ownerID }
func (i *Item) Name() string         { return i.name }
func (i *Item) Description() string  { return i.description }
func (i *Item) Available() bool      { return i.available }
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// RequestID is the item request this item was listed in answer to, if any.
func (i *Item) RequestID() *uuid.UUID { return i.requestID }

func (i *Item) AnswerRequest(requestID uuid.UUID) {
	i.requestID = &requestID
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

func (i *Item) EnsureOwner(userID uuid.UUID) error {
	if !i.IsOwnedBy(userID) {
		return ErrNotItemOwner
	}
	return nil
}

// Patch applies the non-nil fields. On error the item is left unchanged.
func (i *Item) Patch(name, description *string, available *bool) error {
	next := *i
	if name != nil {
		if err := next.setName(*name); err != nil {
			return err
		}
	}
	if description != nil {
		if err := next.setDescription(*description); err != nil {
			return err
		}
	}
	if available != nil {
		next.available = *available
	}
	*i = next
	return nil
}

func (i *Item) setName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || len([]rune(s)) > maxNameLength {
		return ErrInvalidName
	}
	i.name = s
	return nil
}

func (i *Item) setDescription(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || len([]rune(s)) > maxDescriptionLength {
		return ErrInvalidDescription
	}
	i.description = s
	return nil
}
