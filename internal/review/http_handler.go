package review

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bookreviews/internal/httpx"

	"github.com/google/uuid"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type upsertReviewReq struct {
	ISBN    string `json:"isbn" validate:"required"`
	Comment string `json:"comment" validate:"required"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
}

// UpsertReview handles POST /reviews
// @Summary Add or modify a book review
// @Description Create the caller's review for a book, or replace the comment and rating of the existing one
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body upsertReviewReq true "Review request"
// @Success 200 {object} Review
// @Failure 400 {object} httpx.MessageResponse
// @Failure 401 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Failure 500 {object} httpx.MessageResponse
// @Router /reviews [post]
func (h *HTTPHandler) UpsertReview(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	var req upsertReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, strings.Join(validationErrors, "; "))
		return
	}

	rv, err := h.service.Upsert(r.Context(), userID, req.ISBN, req.Comment, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookNotFound):
			httpx.JSONError(w, http.StatusNotFound, "Book not found")
		case errors.Is(err, ErrInvalidRating), errors.Is(err, ErrEmptyComment):
			httpx.JSONError(w, http.StatusBadRequest, err.Error())
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.JSON(w, http.StatusOK, rv)
}

// DeleteReview handles DELETE /reviews/{reviewId}
// @Summary Delete a book review
// @Description Delete the caller's own review; other users' reviews are reported as not found
// @Tags reviews
// @Produce json
// @Security Bearer
// @Param reviewId path string true "Review ID"
// @Success 200 {object} httpx.MessageResponse
// @Failure 401 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.MessageResponse
// @Failure 500 {object} httpx.MessageResponse
// @Router /reviews/{reviewId} [delete]
func (h *HTTPHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	reviewID := r.PathValue("reviewId")
	// A malformed id cannot match any review; report it exactly like a
	// missing one instead of letting the uuid cast fail in the database.
	if uuid.Validate(reviewID) != nil {
		httpx.JSONError(w, http.StatusNotFound, "Review not found or not authorized")
		return
	}

	if err := h.service.Delete(r.Context(), reviewID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "Review not found or not authorized")
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.JSONMessage(w, http.StatusOK, "Review deleted")
}
