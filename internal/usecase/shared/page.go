package shared

import "gin-shareit/internal/pkg/errs"

const (
	DefaultPageSize = 10
	MaxPageSize     = 200
)

var ErrInvalidPage = errs.Mark(errs.New("from must be >= 0 and size > 0"), errs.ErrValidation)

// Page addresses a window of a sorted result by element offset.
type Page struct {
	Offset int
	Size   int
}

// NewPage validates from/size query values. Sizes above MaxPageSize are
// capped rather than rejected.
func NewPage(from, size int) (Page, error) {
	if from < 0 || size <= 0 {
		return Page{}, ErrInvalidPage
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Offset: from, Size: size}, nil
}

func DefaultPage() Page {
	return Page{Offset: 0, Size: DefaultPageSize}
}
