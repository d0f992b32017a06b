package review

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestService_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("valid review reaches the store", func(t *testing.T) {
		stored := Review{ID: "review-1", BookID: "book-1", UserID: "user-1", Comment: "Great", Rating: 5}
		mockRepo.EXPECT().
			Upsert(gomock.Any(), "user-1", "9780261102217", "Great", 5).
			Return(stored, nil)

		rv, err := service.Upsert(context.Background(), "user-1", "9780261102217", "Great", 5)
		assert.NoError(t, err)
		assert.Equal(t, stored, rv)
	})

	t.Run("boundary ratings are accepted", func(t *testing.T) {
		for _, rating := range []int{1, 5} {
			mockRepo.EXPECT().
				Upsert(gomock.Any(), "user-1", "9780261102217", "ok", rating).
				Return(Review{Rating: rating}, nil)

			_, err := service.Upsert(context.Background(), "user-1", "9780261102217", "ok", rating)
			assert.NoError(t, err)
		}
	})

	t.Run("out-of-range ratings never reach the store", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := service.Upsert(context.Background(), "user-1", "9780261102217", "ok", rating)
			assert.ErrorIs(t, err, ErrInvalidRating)
		}
	})

	t.Run("blank comment never reaches the store", func(t *testing.T) {
		for _, comment := range []string{"", "   "} {
			_, err := service.Upsert(context.Background(), "user-1", "9780261102217", comment, 3)
			assert.ErrorIs(t, err, ErrEmptyComment)
		}
	})

	t.Run("unknown book", func(t *testing.T) {
		mockRepo.EXPECT().
			Upsert(gomock.Any(), "user-1", "0000000000000", "ok", 3).
			Return(Review{}, ErrBookNotFound)

		_, err := service.Upsert(context.Background(), "user-1", "0000000000000", "ok", 3)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("owner deletes own review", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), "review-1", "user-1").Return(nil)

		err := service.Delete(context.Background(), "review-1", "user-1")
		assert.NoError(t, err)
	})

	t.Run("missing review and foreign review fail the same way", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), "missing", "user-1").Return(ErrNotFound)
		errMissing := service.Delete(context.Background(), "missing", "user-1")

		mockRepo.EXPECT().Delete(gomock.Any(), "review-2", "user-1").Return(ErrNotFound)
		errForeign := service.Delete(context.Background(), "review-2", "user-1")

		assert.ErrorIs(t, errMissing, ErrNotFound)
		assert.ErrorIs(t, errForeign, ErrNotFound)
		assert.Equal(t, errMissing.Error(), errForeign.Error())
	})
}
