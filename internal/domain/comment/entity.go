package comment

import (
	"strings"
	"time"
	"unicode/utf8"

	"gin-shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MinTextLength = 5
	MaxTextLength = 500
)

var (
	ErrInvalidText = errs.Mark(
		errs.Newf("comment text must be %d to %d characters", MinTextLength, MaxTextLength),
		errs.ErrValidation,
	)
	ErrNoPriorBooking = errs.Mark(
		errs.New("user has no finished booking of this item"),
		errs.ErrNotAvailable,
	)
)

type Text struct {
	value string
}

func NewText(s string) (Text, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n < MinTextLength || n > MaxTextLength {
		return Text{}, ErrInvalidText
	}
	return Text{value: s}, nil
}

func (t Text) String() string {
	return t.value
}

type Comment struct {
	id        uuid.UUID
	itemID    uuid.UUID
	authorID  uuid.UUID
	text      Text
	createdAt time.Time
}

// NewComment requires the author to have at least one finished booking of
// the item.
func NewComment(itemID, authorID uuid.UUID, text Text, priorBookings int, now time.Time) (*Comment, error) {
	if err := CheckEligibility(priorBookings); err != nil {
		return nil, err
	}
	return &Comment{
		id:        uuid.New(),
		itemID:    itemID,
		authorID:  authorID,
		text:      text,
		createdAt: now,
	}, nil
}

func Reconstruct(id, itemID, authorID uuid.UUID, text string, createdAt time.Time) *Comment {
	return &Comment{
		id:        id,
		itemID:    itemID,
		authorID:  authorID,
		text:      Text{value: text},
		createdAt: createdAt,
	}
}

func (c *Comment) ID() uuid.UUID        { return c.id }
func (c *Comment) ItemID() uuid.UUID    { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID  { return c.authorID }
func (c *Comment) Text() Text           { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func CheckEligibility(priorBookings int) error {
	if priorBookings < 1 {
		return ErrNoPriorBooking
	}
	return nil
}
