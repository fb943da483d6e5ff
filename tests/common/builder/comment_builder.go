//go:build unit || e2e

package builder

import (
	"gin-shareit/internal/handler/dto/request"
	"gin-shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentBuilder struct {
	ItemID     uuid.UUID
	Text       string
	AuthorName string
}

func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		ItemID:     uuid.New(),
		Text:       "Worked like a charm",
		AuthorName: "Bob",
	}
}

func (c *CommentBuilder) BuildRequestDTO() request.CreateCommentRequest {
	return request.CreateCommentRequest{Text: c.Text}
}

func (c *CommentBuilder) BuildView() *queries.CommentView {
	return &queries.CommentView{
		ID:         uuid.New(),
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    BaseTime,
	}
}

func (c *CommentBuilder) WithText(text string) *CommentBuilder {
	c.Text = text
	return c
}
