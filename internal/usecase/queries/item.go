package queries

import (
	"context"
	"strings"

	"gin-shareit/internal/domain/booking"
	"gin-shareit/internal/domain/item"
	"gin-shareit/internal/infra"
	"gin-shareit/internal/pkg/clock"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemQueries interface {
	// GetByID shows the availability summary only when viewerID owns the item.
	GetByID(ctx context.Context, viewerID, itemID uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]*ItemView, error)
	Search(ctx context.Context, text string, page shared.Page) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemQueries(uow shared.UnitOfWork, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		uow:   uow,
		clock: clk,
	}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, viewerID, itemID uuid.UUID) (*ItemView, error) {
	var view *ItemView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Items().FindByID(ctx, itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return item.ErrItemNotFound
			}
			return err
		}

		views, err := q.assemble(ctx, tx, viewerID, []*item.Item{it})
		if err != nil {
			return err
		}
		view = views[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, page shared.Page) ([]*ItemView, error) {
	var views []*ItemView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Items().ListByOwner(ctx, ownerID, page)
		if err != nil {
			return err
		}
		views, err = q.assemble(ctx, tx, ownerID, items)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, page shared.Page) ([]*ItemView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*ItemView{}, nil
	}

	var views []*ItemView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := tx.Items().Search(ctx, text, page)
		if err != nil {
			return err
		}
		views = make([]*ItemView, len(items))
		for i, it := range items {
			views[i] = toItemView(it)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// assemble attaches comments and, for the owner, last/next bookings. It
// issues one query per kind regardless of how many items are given.
func (q *itemQueriesImpl) assemble(ctx context.Context, tx shared.Tx, viewerID uuid.UUID, items []*item.Item) ([]*ItemView, error) {
	if len(items) == 0 {
		return []*ItemView{}, nil
	}

	ids := make([]uuid.UUID, len(items))
	var owned []uuid.UUID
	for i, it := range items {
		ids[i] = it.ID()
		if it.IsOwnedBy(viewerID) {
			owned = append(owned, it.ID())
		}
	}

	comments, err := tx.Comments().ListByItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	commentsByItem := make(map[uuid.UUID][]CommentView, len(items))
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], CommentView{
			ID:         c.ID,
			Text:       c.Text,
			AuthorName: c.AuthorName,
			Created:    c.CreatedAt,
		})
	}

	summaries := map[uuid.UUID]booking.Summary{}
	if len(owned) > 0 {
		bookings, err := tx.Bookings().FindAcceptedByItems(ctx, owned)
		if err != nil {
			return nil, err
		}
		summaries = booking.SummarizeByItem(bookings, q.clock.Now())
	}

	views := make([]*ItemView, len(items))
	for i, it := range items {
		v := toItemView(it)
		if cs, ok := commentsByItem[it.ID()]; ok {
			v.Comments = cs
		}
		summary := summaries[it.ID()].ForViewer(viewerID, it.OwnerID())
		v.LastBooking = toRefView(summary.Last)
		v.NextBooking = toRefView(summary.Next)
		views[i] = v
	}
	return views, nil
}

func toItemView(it *item.Item) *ItemView {
	return &ItemView{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
		Comments:    []CommentView{},
	}
}

func toRefView(ref *booking.Ref) *BookingRefView {
	if ref == nil {
		return nil
	}
	return &BookingRefView{ID: ref.ID, BookerID: ref.BookerID}
}
