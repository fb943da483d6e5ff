package queries

import (
	"context"

	"gin-shareit/internal/domain/item"
	"gin-shareit/internal/domain/itemrequest"
	"gin-shareit/internal/domain/user"
	"gin-shareit/internal/infra"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

// RequestQueries reads item requests. Every call requires userID to exist.
type RequestQueries interface {
	// ListOwn returns userID's requests, newest first.
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*RequestView, error)
	// ListOthers returns the requests of all other users, newest first.
	ListOthers(ctx context.Context, userID uuid.UUID, page shared.Page) ([]*RequestView, error)
	GetByID(ctx context.Context, userID, requestID uuid.UUID) (*RequestView, error)
}

type requestQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRequestQueries(uow shared.UnitOfWork) RequestQueries {
	return &requestQueriesImpl{uow: uow}
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, userID uuid.UUID) ([]*RequestView, error) {
	return q.list(ctx, userID, func(ctx context.Context, tx shared.Tx) ([]*itemrequest.ItemRequest, error) {
		return tx.Requests().ListByRequester(ctx, userID)
	})
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, userID uuid.UUID, page shared.Page) ([]*RequestView, error) {
	return q.list(ctx, userID, func(ctx context.Context, tx shared.Tx) ([]*itemrequest.ItemRequest, error) {
		return tx.Requests().ListOthers(ctx, userID, page)
	})
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, userID, requestID uuid.UUID) (*RequestView, error) {
	views, err := q.list(ctx, userID, func(ctx context.Context, tx shared.Tx) ([]*itemrequest.ItemRequest, error) {
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, itemrequest.ErrRequestNotFound
			}
			return nil, err
		}
		return []*itemrequest.ItemRequest{req}, nil
	})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (q *requestQueriesImpl) list(
	ctx context.Context,
	userID uuid.UUID,
	load func(ctx context.Context, tx shared.Tx) ([]*itemrequest.ItemRequest, error),
) ([]*RequestView, error) {
	var views []*RequestView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Users().Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return user.ErrUserNotFound
		}

		requests, err := load(ctx, tx)
		if err != nil {
			return err
		}
		views, err = attachAnswers(ctx, tx, requests)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// attachAnswers loads the answering items of all requests in one query.
func attachAnswers(ctx context.Context, tx shared.Tx, requests []*itemrequest.ItemRequest) ([]*RequestView, error) {
	ids := make([]uuid.UUID, len(requests))
	for i, r := range requests {
		ids[i] = r.ID()
	}

	items, err := tx.Items().ListByRequests(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[uuid.UUID][]RequestItemView, len(requests))
	for _, it := range items {
		requestID := *it.RequestID()
		byRequest[requestID] = append(byRequest[requestID], toRequestItemView(it, requestID))
	}

	views := make([]*RequestView, len(requests))
	for i, r := range requests {
		answers := byRequest[r.ID()]
		if answers == nil {
			answers = []RequestItemView{}
		}
		views[i] = &RequestView{
			ID:          r.ID(),
			Description: r.Description(),
			Created:     r.CreatedAt(),
			Items:       answers,
		}
	}
	return views, nil
}

func toRequestItemView(it *item.Item, requestID uuid.UUID) RequestItemView {
	return RequestItemView{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   requestID,
	}
}
