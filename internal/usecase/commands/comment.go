package commands

import (
	"context"
	"log/slog"

	"gin-shareit/internal/domain/comment"
	"gin-shareit/internal/domain/item"
	"gin-shareit/internal/domain/user"
	"gin-shareit/internal/pkg/clock"
	"gin-shareit/internal/pkg/metrics"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCommentResult struct {
	Comment    *comment.Comment
	AuthorName string
}

type CommentCommands interface {
	// CanComment reports whether userID has a finished, non-rejected booking
	// of itemID.
	CanComment(ctx context.Context, userID, itemID uuid.UUID) (bool, error)
	Create(ctx context.Context, authorID, itemID uuid.UUID, text string) (*CreateCommentResult, error)
}

type commentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentCommands(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentCommandsImpl{uow: uow, clock: clk}
}

func (uc *commentCommandsImpl) CanComment(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	var eligible bool
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Items().Exists(ctx, itemID)
		if err != nil {
			return err
		}
		if !exists {
			return item.ErrItemNotFound
		}

		count, err := tx.Bookings().CountPrior(ctx, itemID, userID, uc.clock.Now())
		if err != nil {
			return err
		}
		eligible = comment.CheckEligibility(count) == nil
		return nil
	})
	if err != nil {
		return false, err
	}
	return eligible, nil
}

func (uc *commentCommandsImpl) Create(ctx context.Context, authorID, itemID uuid.UUID, text string) (*CreateCommentResult, error) {
	body, err := comment.NewText(text)
	if err != nil {
		return nil, err
	}

	var result *CreateCommentResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Items().Exists(ctx, itemID)
		if err != nil {
			return err
		}
		if !exists {
			return item.ErrItemNotFound
		}

		author, err := tx.Users().FindByID(ctx, authorID)
		if err != nil {
			return translateNotFound(err, user.ErrUserNotFound)
		}

		now := uc.clock.Now()
		count, err := tx.Bookings().CountPrior(ctx, itemID, authorID, now)
		if err != nil {
			return err
		}

		c, err := comment.NewComment(itemID, authorID, body, count, now)
		if err != nil {
			return err
		}
		if err := tx.Comments().Create(ctx, c); err != nil {
			return err
		}

		result = &CreateCommentResult{Comment: c, AuthorName: author.Name().Value()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCommentCreated()
	slog.InfoContext(ctx, "comment created",
		"comment_id", result.Comment.ID(),
		"item_id", itemID,
		"author_id", authorID)

	return result, nil
}
