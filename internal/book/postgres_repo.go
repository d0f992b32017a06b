package book

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// substringPattern turns user-supplied text into an unanchored ILIKE pattern.
// LIKE metacharacters are escaped so the input is only ever matched literally.
func substringPattern(fragment string) string {
	return "%" + likeEscaper.Replace(fragment) + "%"
}

const bookColumns = "id, isbn, title, author, created_at, updated_at"

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	return r.queryBooks(ctx, "SELECT "+bookColumns+" FROM books ORDER BY title ASC")
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	const query = `SELECT id, isbn, title, author, created_at, updated_at FROM books WHERE isbn = $1`
	var b Book
	err := r.db.QueryRow(ctx, query, isbn).Scan(
		&b.ID, &b.ISBN, &b.Title, &b.Author, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}

	books := []Book{b}
	if err := r.attachReviews(ctx, books); err != nil {
		return Book{}, err
	}
	return books[0], nil
}

func (r *PostgresRepo) FindByAuthor(ctx context.Context, fragment string) ([]Book, error) {
	return r.queryBooks(ctx,
		"SELECT "+bookColumns+" FROM books WHERE author ILIKE $1 ORDER BY title ASC",
		substringPattern(fragment),
	)
}

func (r *PostgresRepo) FindByTitle(ctx context.Context, fragment string) ([]Book, error) {
	return r.queryBooks(ctx,
		"SELECT "+bookColumns+" FROM books WHERE title ILIKE $1 ORDER BY title ASC",
		substringPattern(fragment),
	)
}

func (r *PostgresRepo) ListReviewsByISBN(ctx context.Context, isbn string) ([]Review, error) {
	var bookID string
	err := r.db.QueryRow(ctx, "SELECT id FROM books WHERE isbn = $1", isbn).Scan(&bookID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	const query = `
		SELECT id, user_id, comment, rating, created_at, updated_at
		FROM reviews
		WHERE book_id = $1
		ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.Comment, &rv.Rating, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepo) queryBooks(ctx context.Context, query string, args ...any) ([]Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachReviews(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachReviews resolves the reviews of every book in a single query and
// groups them by book id.
func (r *PostgresRepo) attachReviews(ctx context.Context, books []Book) error {
	if len(books) == 0 {
		return nil
	}

	index := make(map[string]int, len(books))
	ids := make([]string, len(books))
	for i := range books {
		books[i].Reviews = []Review{}
		index[books[i].ID] = i
		ids[i] = books[i].ID
	}

	const query = `
		SELECT id, book_id, user_id, comment, rating, created_at, updated_at
		FROM reviews
		WHERE book_id = ANY($1)
		ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var rv Review
		var bookID string
		if err := rows.Scan(&rv.ID, &bookID, &rv.UserID, &rv.Comment, &rv.Rating, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return err
		}
		if i, ok := index[bookID]; ok {
			books[i].Reviews = append(books[i].Reviews, rv)
		}
	}
	return rows.Err()
}
