//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gin-shareit/internal/domain/itemrequest"
	"gin-shareit/internal/domain/user"
	"gin-shareit/internal/pkg/clock"
	"gin-shareit/internal/pkg/errs"
	"gin-shareit/internal/usecase/commands"
	"gin-shareit/internal/usecase/shared"
	"gin-shareit/tests/common/builder"
	"gin-shareit/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RequestCommandsTestSuite struct {
	suite.Suite
	ctx         context.Context
	store       *memstore.Store
	commands    commands.RequestCommands
	requesterID uuid.UUID
}

func (s *RequestCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.commands = commands.NewRequestCommands(s.store, clock.NewMockClock(builder.BaseTime))
	s.requesterID = s.store.SeedUser("Requester", "requester@example.com")
}

func TestRequestCommandsSuite(t *testing.T) {
	suite.Run(t, new(RequestCommandsTestSuite))
}

func (s *RequestCommandsTestSuite) TestCreate() {
	s.Run("success: stamped with the current time", func() {
		req, err := s.commands.Create(s.ctx, s.requesterID, "  Need a ladder for the attic  ")

		s.Require().NoError(err)
		s.Equal("Need a ladder for the attic", req.Description())
		s.Equal(s.requesterID, req.RequesterID())
		s.Equal(builder.BaseTime, req.CreatedAt())

		err = s.store.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			stored, err := tx.Requests().FindByID(ctx, req.ID())
			if err == nil {
				s.Equal(req.Description(), stored.Description())
			}
			return err
		})
		s.Require().NoError(err)
	})

	s.Run("error: description too short", func() {
		_, err := s.commands.Create(s.ctx, s.requesterID, "ladder")

		s.True(errs.Is(err, itemrequest.ErrInvalidDescription))
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: unknown requester", func() {
		_, err := s.commands.Create(s.ctx, uuid.New(), "Need a ladder for the attic")

		s.True(errs.Is(err, user.ErrUserNotFound))
	})
}
