//go:build unit

package itemrequest_test

import (
	"strings"
	"testing"

	"gin-shareit/internal/domain/itemrequest"
	"gin-shareit/internal/pkg/errs"
	"gin-shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemRequest(t *testing.T) {
	requesterID := uuid.New()

	t.Run("basic", func(t *testing.T) {
		actual, err := itemrequest.NewItemRequest(requesterID, "  Need a ladder for the weekend  ", builder.BaseTime)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, requesterID, actual.RequesterID())
		assert.Equal(t, "Need a ladder for the weekend", actual.Description())
		assert.Equal(t, builder.BaseTime, actual.CreatedAt())
	})

	cases := []struct {
		name        string
		description string
		valid       bool
	}{
		{name: "minimum length", description: strings.Repeat("a", 10), valid: true},
		{name: "maximum length", description: strings.Repeat("a", 500), valid: true},
		{name: "too short", description: "Need saw!"},
		{name: "too short after trim", description: "   ladder   "},
		{name: "too long", description: strings.Repeat("a", 501)},
		{name: "blank", description: "  "},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := itemrequest.NewItemRequest(requesterID, c.description, builder.BaseTime)
			if c.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, itemrequest.ErrInvalidDescription)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}
