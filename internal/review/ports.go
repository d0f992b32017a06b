package review

import (
	"context"
)

// Repository defines the contract for review storage. Upsert resolves the
// ISBN itself and must be atomic: a concurrent re-review of the same
// (book, user) pair may never produce two rows.
type Repository interface {
	Upsert(ctx context.Context, userID, isbn, comment string, rating int) (Review, error)
	Delete(ctx context.Context, reviewID, userID string) error
}
