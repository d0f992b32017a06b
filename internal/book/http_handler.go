package book

import (
	"errors"
	"net/http"

	"bookreviews/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// List handles GET /books
// @Summary List all books
// @Description Return every book in the catalog with its reviews
// @Tags books
// @Produce json
// @Success 200 {array} Book
// @Failure 500 {object} httpx.MessageResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if books == nil {
		books = []Book{}
	}

	httpx.JSON(w, http.StatusOK, books)
}

// GetByISBN handles GET /books/isbn/{isbn}
// @Summary Get a book by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {object} Book
// @Failure 404 {object} httpx.MessageResponse
// @Failure 500 {object} httpx.MessageResponse
// @Router /books/isbn/{isbn} [get]
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	b, err := h.svc.GetByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Book not found")
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.JSON(w, http.StatusOK, b)
}

// GetByAuthor handles GET /books/author/{author}
// @Summary Find books by author
// @Description Case-insensitive substring match on the author name
// @Tags books
// @Produce json
// @Param author path string true "Author name fragment"
// @Success 200 {array} Book
// @Failure 404 {object} httpx.MessageResponse
// @Failure 500 {object} httpx.MessageResponse
// @Router /books/author/{author} [get]
func (h *HTTPHandler) GetByAuthor(w http.ResponseWriter, r *http.Request) {
	author := r.PathValue("author")

	books, err := h.svc.FindByAuthor(r.Context(), author)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(books) == 0 {
		httpx.JSONError(w, http.StatusNotFound, "No books found by this author")
		return
	}

	httpx.JSON(w, http.StatusOK, books)
}

// GetByTitle handles GET /books/title/{title}
// @Summary Find books by title
// @Description Case-insensitive substring match on the title
// @Tags books
// @Produce json
// @Param title path string true "Title fragment"
// @Success 200 {array} Book
// @Failure 404 {object} httpx.MessageResponse
// @Failure 500 {object} httpx.MessageResponse
// @Router /books/title/{title} [get]
func (h *HTTPHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.PathValue("title")

	books, err := h.svc.FindByTitle(r.Context(), title)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(books) == 0 {
		httpx.JSONError(w, http.StatusNotFound, "No books found with this title")
		return
	}

	httpx.JSON(w, http.StatusOK, books)
}

// ListReviews handles GET /books/reviews/{isbn}
// @Summary List reviews for a book
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {array} Review
// @Failure 404 {object} httpx.MessageResponse
// @Failure 500 {object} httpx.MessageResponse
// @Router /books/reviews/{isbn} [get]
func (h *HTTPHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	reviews, err := h.svc.ListReviewsByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Book not found")
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if reviews == nil {
		reviews = []Review{}
	}

	httpx.JSON(w, http.StatusOK, reviews)
}
