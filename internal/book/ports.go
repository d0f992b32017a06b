package book

import (
	"context"
)

// Repository defines the read-only contract for catalog queries. Author and
// title fragments are matched as case-insensitive literal substrings.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	FindByAuthor(ctx context.Context, fragment string) ([]Book, error)
	FindByTitle(ctx context.Context, fragment string) ([]Book, error)
	ListReviewsByISBN(ctx context.Context, isbn string) ([]Review, error)
}
