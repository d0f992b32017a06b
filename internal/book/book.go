package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no book matches the given ISBN.
var ErrNotFound = errors.New("book not found")

// Book is a catalog entry. Reviews are always resolved when a book is read;
// membership is derived from the reviews table, the book row carries no
// review references.
type Book struct {
	ID        string    `json:"id"`
	ISBN      string    `json:"isbn"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Reviews   []Review  `json:"reviews"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Review is the read-side view of a review as it appears attached to a book.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
