package commands

import (
	"context"
	"log/slog"

	"gin-shareit/internal/domain/itemrequest"
	"gin-shareit/internal/domain/user"
	"gin-shareit/internal/pkg/clock"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, description string) (*itemrequest.ItemRequest, error)
}

type requestCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{uow: uow, clock: clk}
}

func (uc *requestCommandsImpl) Create(ctx context.Context, requesterID uuid.UUID, description string) (*itemrequest.ItemRequest, error) {
	req, err := itemrequest.NewItemRequest(requesterID, description, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Users().Exists(ctx, requesterID)
		if err != nil {
			return err
		}
		if !exists {
			return user.ErrUserNotFound
		}
		return tx.Requests().Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "item request created",
		"request_id", req.ID(),
		"requester_id", requesterID)

	return req, nil
}
