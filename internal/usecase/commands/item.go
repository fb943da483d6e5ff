package commands

import (
	"context"

	"gin-shareit/internal/domain/item"
	"gin-shareit/internal/domain/itemrequest"
	"gin-shareit/internal/domain/user"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   bool
	// RequestID links the item to the item request it answers.
	RequestID *uuid.UUID
}

// UpdateItemRequest holds a partial update; nil fields keep stored values.
type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*item.Item, error)
	Update(ctx context.Context, actorID, itemID uuid.UUID, req UpdateItemRequest) (*item.Item, error)
	Delete(ctx context.Context, actorID, itemID uuid.UUID) error
}

type itemCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewItemCommands(uow shared.UnitOfWork) ItemCommands {
	return &itemCommandsImpl{uow: uow}
}

func (uc *itemCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*item.Item, error) {
	it, err := item.NewItem(ownerID, req.Name, req.Description, req.Available)
	if err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		it.AnswerRequest(*req.RequestID)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Users().Exists(ctx, ownerID)
		if err != nil {
			return err
		}
		if !exists {
			return user.ErrUserNotFound
		}

		if req.RequestID != nil {
			exists, err := tx.Requests().Exists(ctx, *req.RequestID)
			if err != nil {
				return err
			}
			if !exists {
				return itemrequest.ErrRequestNotFound
			}
		}
		return tx.Items().Create(ctx, it)
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (uc *itemCommandsImpl) Update(ctx context.Context, actorID, itemID uuid.UUID, req UpdateItemRequest) (*item.Item, error) {
	var updated *item.Item
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Items().FindByID(ctx, itemID)
		if err != nil {
			return translateNotFound(err, item.ErrItemNotFound)
		}
		if err := it.EnsureOwner(actorID); err != nil {
			return err
		}
		if err := it.Patch(req.Name, req.Description, req.Available); err != nil {
			return err
		}
		if err := tx.Items().Update(ctx, it); err != nil {
			return translateNotFound(err, item.ErrItemNotFound)
		}
		updated = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *itemCommandsImpl) Delete(ctx context.Context, actorID, itemID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Items().FindByID(ctx, itemID)
		if err != nil {
			return translateNotFound(err, item.ErrItemNotFound)
		}
		if err := it.EnsureOwner(actorID); err != nil {
			return err
		}
		err = translateNotFound(tx.Items().Delete(ctx, itemID), item.ErrItemNotFound)
		return translateReferenced(err, item.ErrItemHasBookings)
	})
}
