package books

import (
	"context"
	"errors"

	"bookql/internal/types"
)

// ErrNegativeLimit is returned when a caller requests a negative result limit.
var ErrNegativeLimit = errors.New("limit must not be negative")

// Filter carries the optional constraints of a book lookup.
// Zero values mean "absent": a nil/empty AuthorIds applies no author filter,
// an empty Search applies no title filter, a zero Limit leaves the result
// set unbounded.
type Filter struct {
	AuthorIds []int64
	Search    string
	Limit     int
}

type Repository interface {
	GetBooks(ctx context.Context, f Filter) ([]types.Book, error)
}
