//go:build unit || e2e

package builder

import (
	"gin-shareit/internal/domain/item"
	"gin-shareit/internal/handler/dto/request"
	"gin-shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		OwnerID:     uuid.New(),
		Name:        "Drill",
		Description: "Impact drill with two batteries",
		Available:   true,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	it, err := item.NewItem(b.OwnerID, b.Name, b.Description, b.Available)
	if err != nil {
		return nil, err
	}
	if b.RequestID != nil {
		it.AnswerRequest(*b.RequestID)
	}
	return it, nil
}

func (b *ItemBuilder) BuildCreateRequestDTO() request.CreateItemRequest {
	available := b.Available
	return request.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   &available,
		RequestID:   b.RequestID,
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          uuid.New(),
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		RequestID:   b.RequestID,
		Comments:    []queries.CommentView{},
	}
}

// Fluent builder methods
func (b *ItemBuilder) WithOwner(ownerID uuid.UUID) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithRequest(requestID uuid.UUID) *ItemBuilder {
	b.RequestID = &requestID
	return b
}

func (b *ItemBuilder) Unavailable() *ItemBuilder {
	b.Available = false
	return b
}
