package review

import (
	"context"
	"strings"
)

// Service enforces the review invariants: one review per (book, user),
// rating within 1..5, comment non-empty.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert creates the user's review for the book, or replaces the comment and
// rating of the existing one. After it returns, exactly one review exists
// for the (book, user) pair.
func (s *Service) Upsert(ctx context.Context, userID, isbn, comment string, rating int) (Review, error) {
	if rating < 1 || rating > 5 {
		return Review{}, ErrInvalidRating
	}
	if strings.TrimSpace(comment) == "" {
		return Review{}, ErrEmptyComment
	}
	return s.repo.Upsert(ctx, userID, isbn, comment, rating)
}

// Delete removes the requester's review. A review that does not exist and a
// review owned by someone else fail the same way.
func (s *Service) Delete(ctx context.Context, reviewID, userID string) error {
	return s.repo.Delete(ctx, reviewID, userID)
}
