package response

import (
	"time"

	"gin-shareit/internal/domain/itemrequest"
	"gin-shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemRequestResponse struct {
	ID          uuid.UUID               `json:"id"`
	Description string                  `json:"description"`
	Created     time.Time               `json:"created"`
	Items       []RequestedItemResponse `json:"items"`
}

type RequestedItemResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	RequestID   uuid.UUID `json:"request_id"`
}

func FromItemRequest(r *itemrequest.ItemRequest) *ItemRequestResponse {
	return &ItemRequestResponse{
		ID:          r.ID(),
		Description: r.Description(),
		Created:     r.CreatedAt(),
		Items:       []RequestedItemResponse{},
	}
}

func FromRequestView(v *queries.RequestView) *ItemRequestResponse {
	var res ItemRequestResponse
	_ = copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true})
	if res.Items == nil {
		res.Items = []RequestedItemResponse{}
	}
	return &res
}

func FromRequestViews(views []*queries.RequestView) []*ItemRequestResponse {
	res := make([]*ItemRequestResponse, len(views))
	for i, v := range views {
		res[i] = FromRequestView(v)
	}
	return res
}
