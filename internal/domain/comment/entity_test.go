//go:build unit

package comment_test

import (
	"strings"
	"testing"

	"gin-shareit/internal/domain/comment"
	"gin-shareit/internal/pkg/errs"
	"gin-shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  string
		errIs error
	}{
		{name: "minimum length", in: "Great", want: "Great"},
		{name: "trimmed before counting", in: "  Great  ", want: "Great"},
		{name: "maximum length", in: strings.Repeat("a", 500), want: strings.Repeat("a", 500)},
		{name: "multibyte counted as characters", in: "ÄÖÜßé", want: "ÄÖÜßé"},
		{name: "too short", in: "Good", errIs: comment.ErrInvalidText},
		{name: "too short after trim", in: "  ok   ", errIs: comment.ErrInvalidText},
		{name: "too long", in: strings.Repeat("a", 501), errIs: comment.ErrInvalidText},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := comment.NewText(c.in)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestNewComment(t *testing.T) {
	text, err := comment.NewText("Worked perfectly")
	require.NoError(t, err)
	itemID, authorID := uuid.New(), uuid.New()

	t.Run("without prior booking", func(t *testing.T) {
		c, err := comment.NewComment(itemID, authorID, text, 0, builder.BaseTime)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, comment.ErrNoPriorBooking)
		assert.True(t, errs.Is(err, errs.ErrNotAvailable))
	})

	t.Run("with prior booking", func(t *testing.T) {
		c, err := comment.NewComment(itemID, authorID, text, 2, builder.BaseTime)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.Equal(t, itemID, c.ItemID())
		assert.Equal(t, authorID, c.AuthorID())
		assert.Equal(t, "Worked perfectly", c.Text().String())
		assert.Equal(t, builder.BaseTime, c.CreatedAt())
	})
}
