package review

import (
	"errors"
	"time"
)

var (
	// ErrBookNotFound is returned when the ISBN resolves to no book.
	ErrBookNotFound = errors.New("book not found")
	// ErrNotFound is returned when the review does not exist or belongs to
	// another user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("review not found or not authorized")
	// ErrInvalidRating is returned when the rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrEmptyComment is returned when the comment is blank.
	ErrEmptyComment = errors.New("comment must not be empty")
)

// Review is one user's rating and comment for one book. At most one review
// exists per (book, user) pair, enforced by a unique index.
type Review struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	UserID    string    `json:"user_id"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
