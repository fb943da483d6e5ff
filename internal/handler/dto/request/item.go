package request

import (
	"gin-shareit/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string     `json:"name" binding:"required,max=255"`
	Description string     `json:"description" binding:"required,max=2000"`
	Available   *bool      `json:"available" binding:"required"`
	RequestID   *uuid.UUID `json:"request_id"`
}

// UpdateItemRequest is a partial update. Blank strings keep the stored value.
type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Available   *bool   `json:"available"`
}

func (r UpdateItemRequest) Normalized() UpdateItemRequest {
	return UpdateItemRequest{
		Name:        patch.TrimmedOrNil(r.Name),
		Description: patch.TrimmedOrNil(r.Description),
		Available:   r.Available,
	}
}

type SearchItemsQuery struct {
	PageQuery
	Text string `form:"text"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
