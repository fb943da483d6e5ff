package response

import (
	"time"

	"gin-shareit/internal/domain/item"
	"gin-shareit/internal/usecase/commands"
	"gin-shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID           `json:"id"`
	OwnerID     uuid.UUID           `json:"owner_id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Available   bool                `json:"available"`
	RequestID   *uuid.UUID          `json:"request_id"`
	LastBooking *BookingRefResponse `json:"last_booking"`
	NextBooking *BookingRefResponse `json:"next_booking"`
	Comments    []CommentResponse   `json:"comments"`
}

type BookingRefResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"booker_id"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

type EligibilityResponse struct {
	Eligible bool `json:"eligible"`
}

func FromItem(it *item.Item) *ItemResponse {
	return &ItemResponse{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
		Comments:    []CommentResponse{},
	}
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	var res ItemResponse
	_ = copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true})
	if res.Comments == nil {
		res.Comments = []CommentResponse{}
	}
	return &res
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	res := make([]*ItemResponse, len(views))
	for i, v := range views {
		res[i] = FromItemView(v)
	}
	return res
}

func FromCommentResult(r *commands.CreateCommentResult) *CommentResponse {
	return &CommentResponse{
		ID:         r.Comment.ID(),
		Text:       r.Comment.Text().String(),
		AuthorName: r.AuthorName,
		Created:    r.Comment.CreatedAt(),
	}
}
