package book

import (
	"context"
)

// Service provides read-only catalog queries with reviews resolved.
type Service struct {
	repo Repository
}

// NewService creates a new catalog query service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book in the catalog.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// GetByISBN returns the book with the given ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// FindByAuthor returns books whose author contains the fragment,
// case-insensitively.
func (s *Service) FindByAuthor(ctx context.Context, fragment string) ([]Book, error) {
	return s.repo.FindByAuthor(ctx, fragment)
}

// FindByTitle returns books whose title contains the fragment,
// case-insensitively.
func (s *Service) FindByTitle(ctx context.Context, fragment string) ([]Book, error) {
	return s.repo.FindByTitle(ctx, fragment)
}

// ListReviewsByISBN returns the reviews of the book with the given ISBN.
func (s *Service) ListReviewsByISBN(ctx context.Context, isbn string) ([]Review, error) {
	return s.repo.ListReviewsByISBN(ctx, isbn)
}
