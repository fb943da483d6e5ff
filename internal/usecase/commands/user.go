package commands

import (
	"context"

	"gin-shareit/internal/domain/user"
	"gin-shareit/internal/infra"
	"gin-shareit/internal/pkg/errs"
	"gin-shareit/internal/pkg/patch"
	"gin-shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type RegisterUserRequest struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserRequest holds a partial update; nil fields keep stored values.
type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Register(ctx context.Context, req RegisterUserRequest) (*user.User, error)
	Update(ctx context.Context, actorID, userID uuid.UUID, req UpdateUserRequest) (*user.User, error)
	Delete(ctx context.Context, actorID, userID uuid.UUID) error
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
}

func NewUserCommands(uow shared.UnitOfWork, hasher PasswordHasher) UserCommands {
	return &userCommandsImpl{uow: uow, hasher: hasher}
}

func (uc *userCommandsImpl) Register(ctx context.Context, req RegisterUserRequest) (*user.User, error) {
	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(name, email, hash)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateDuplicate(tx.Users().Create(ctx, u))
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *userCommandsImpl) Update(ctx context.Context, actorID, userID uuid.UUID, req UpdateUserRequest) (*user.User, error) {
	if actorID != userID {
		return nil, user.ErrNotSelf
	}

	var updated *user.User
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return translateNotFound(err, user.ErrUserNotFound)
		}

		name, err := user.NewName(patch.Coalesce(req.Name, u.Name().Value()))
		if err != nil {
			return err
		}
		email, err := user.NewEmail(patch.Coalesce(req.Email, u.Email().Value()))
		if err != nil {
			return err
		}
		u.Rename(name)
		u.ChangeEmail(email)

		if err := tx.Users().Update(ctx, u); err != nil {
			return translateDuplicate(translateNotFound(err, user.ErrUserNotFound))
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *userCommandsImpl) Delete(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID != userID {
		return user.ErrNotSelf
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := translateNotFound(tx.Users().Delete(ctx, userID), user.ErrUserNotFound)
		return translateReferenced(err, user.ErrHasBookings)
	})
}

func translateDuplicate(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return user.ErrEmailTaken
	}
	return err
}
