package review

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookreviews/internal/httpx"
	"bookreviews/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

const (
	testISBN     = "9780261102217"
	testUserID   = "7f9c24e5-2f4b-4a2c-9c3a-1b7d6e5f4a3b"
	testReviewID = "3d1f9a88-6c2e-4e0b-b6a4-9f8e7d6c5b4a"
)

func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(httpx.ContextWithUser(r.Context(), userID))
}

func TestHTTPHandler_UpsertReview(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		authenticated  bool
		setupMock      func(mockRepo *MockRepository)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:          "success - new review",
			body:          map[string]interface{}{"isbn": testISBN, "comment": "Loved it", "rating": 4},
			authenticated: true,
			setupMock: func(mockRepo *MockRepository) {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), testUserID, testISBN, "Loved it", 4).
					Return(Review{ID: testReviewID, BookID: "book-1", UserID: testUserID, Comment: "Loved it", Rating: 4}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Loved it",
		},
		{
			name:          "success - re-review replaces comment and rating",
			body:          map[string]interface{}{"isbn": testISBN, "comment": "Changed my mind", "rating": 2},
			authenticated: true,
			setupMock: func(mockRepo *MockRepository) {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), testUserID, testISBN, "Changed my mind", 2).
					Return(Review{ID: testReviewID, BookID: "book-1", UserID: testUserID, Comment: "Changed my mind", Rating: 2}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Changed my mind",
		},
		{
			name:           "unauthorized - no user in context",
			body:           map[string]interface{}{"isbn": testISBN, "comment": "Loved it", "rating": 4},
			authenticated:  false,
			setupMock:      func(mockRepo *MockRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "bad request - rating 0",
			body:           map[string]interface{}{"isbn": testISBN, "comment": "meh", "rating": 0},
			authenticated:  true,
			setupMock:      func(mockRepo *MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - rating 6",
			body:           map[string]interface{}{"isbn": testISBN, "comment": "meh", "rating": 6},
			authenticated:  true,
			setupMock:      func(mockRepo *MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "accepted - rating 1 boundary",
			body:          map[string]interface{}{"isbn": testISBN, "comment": "meh", "rating": 1},
			authenticated: true,
			setupMock: func(mockRepo *MockRepository) {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), testUserID, testISBN, "meh", 1).
					Return(Review{Rating: 1}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "accepted - rating 5 boundary",
			body:          map[string]interface{}{"isbn": testISBN, "comment": "great", "rating": 5},
			authenticated: true,
			setupMock: func(mockRepo *MockRepository) {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), testUserID, testISBN, "great", 5).
					Return(Review{Rating: 5}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - missing comment",
			body:           map[string]interface{}{"isbn": testISBN, "rating": 3},
			authenticated:  true,
			setupMock:      func(mockRepo *MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "not found - unknown isbn",
			body:          map[string]interface{}{"isbn": "0000000000000", "comment": "ok", "rating": 3},
			authenticated: true,
			setupMock: func(mockRepo *MockRepository) {
				mockRepo.EXPECT().
					Upsert(gomock.Any(), testUserID, "0000000000000", "ok", 3).
					Return(Review{}, ErrBookNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Book not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := NewMockRepository(ctrl)
			tt.setupMock(mockRepo)
			handler := NewHTTPHandler(NewService(mockRepo))

			w := httptest.NewRecorder()
			r := testutil.NewRequest(http.MethodPost, "/reviews", tt.body)
			if tt.authenticated {
				r = withUser(r, testUserID)
			}

			handler.UpsertReview(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHTTPHandler_DeleteReview(t *testing.T) {
	t.Run("owner deletes own review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		mockRepo.EXPECT().Delete(gomock.Any(), testReviewID, testUserID).Return(nil)
		handler := NewHTTPHandler(NewService(mockRepo))

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodDelete, "/reviews/"+testReviewID, nil)
		r.SetPathValue("reviewId", testReviewID)
		r = withUser(r, testUserID)

		handler.DeleteReview(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Review deleted")
	})

	t.Run("unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handler := NewHTTPHandler(NewService(NewMockRepository(ctrl)))

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodDelete, "/reviews/"+testReviewID, nil)
		r.SetPathValue("reviewId", testReviewID)

		handler.DeleteReview(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("foreign review and missing review return identical responses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockRepo := NewMockRepository(ctrl)
		handler := NewHTTPHandler(NewService(mockRepo))

		// review exists but belongs to someone else
		mockRepo.EXPECT().Delete(gomock.Any(), testReviewID, testUserID).Return(ErrNotFound)
		w1 := httptest.NewRecorder()
		r1 := testutil.NewRequest(http.MethodDelete, "/reviews/"+testReviewID, nil)
		r1.SetPathValue("reviewId", testReviewID)
		handler.DeleteReview(w1, withUser(r1, testUserID))

		// review does not exist at all
		missingID := "11111111-2222-3333-4444-555555555555"
		mockRepo.EXPECT().Delete(gomock.Any(), missingID, testUserID).Return(ErrNotFound)
		w2 := httptest.NewRecorder()
		r2 := testutil.NewRequest(http.MethodDelete, "/reviews/"+missingID, nil)
		r2.SetPathValue("reviewId", missingID)
		handler.DeleteReview(w2, withUser(r2, testUserID))

		assert.Equal(t, http.StatusNotFound, w1.Code)
		assert.Equal(t, http.StatusNotFound, w2.Code)
		assert.Equal(t, w1.Body.String(), w2.Body.String())
	})

	t.Run("malformed id reported exactly like a missing one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handler := NewHTTPHandler(NewService(NewMockRepository(ctrl)))

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodDelete, "/reviews/not-a-uuid", nil)
		r.SetPathValue("reviewId", "not-a-uuid")
		handler.DeleteReview(w, withUser(r, testUserID))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Review not found or not authorized")
	})
}
