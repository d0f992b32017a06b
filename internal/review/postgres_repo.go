package review

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// Upsert inserts the review or, if the (book, user) pair already has one,
// replaces its comment and rating in place. The existing row keeps its id.
// The single INSERT ... ON CONFLICT statement leans on the unique index on
// (book_id, user_id), so two concurrent upserts for the same pair serialize
// in the database instead of racing a find-then-create.
func (repo *PostgresRepo) Upsert(ctx context.Context, userID, isbn, comment string, rating int) (Review, error) {
	var bookID string
	const findBookSQL = `SELECT id FROM books WHERE isbn = $1 LIMIT 1`
	if err := repo.db.QueryRow(ctx, findBookSQL, isbn).Scan(&bookID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Review{}, ErrBookNotFound
		}
		return Review{}, err
	}

	const upsertSQL = `
		INSERT INTO reviews (id, book_id, user_id, comment, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (book_id, user_id)
		DO UPDATE SET comment = EXCLUDED.comment, rating = EXCLUDED.rating, updated_at = now()
		RETURNING id, book_id, user_id, comment, rating, created_at, updated_at`

	var rv Review
	err := repo.db.QueryRow(ctx, upsertSQL, uuid.New().String(), bookID, userID, comment, rating).Scan(
		&rv.ID, &rv.BookID, &rv.UserID, &rv.Comment, &rv.Rating, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return Review{}, err
	}
	return rv, nil
}

// Delete removes the review only if it exists and belongs to the requester.
// Zero rows affected means either absent or foreign, reported identically.
func (repo *PostgresRepo) Delete(ctx context.Context, reviewID, userID string) error {
	const deleteSQL = `DELETE FROM reviews WHERE id = $1 AND user_id = $2`
	tag, err := repo.db.Exec(ctx, deleteSQL, reviewID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
