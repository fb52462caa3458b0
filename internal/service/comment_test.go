package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
)

func TestCommentService_Create(t *testing.T) {
	comments := new(MockCommentRepository)
	svc := NewCommentService(comments)

	comments.On("Create", mock.Anything, mock.MatchedBy(func(c model.CardComment) bool {
		return c.CardID == "card-1" && c.Author == "alice" && c.Body == "looks good"
	})).Return(model.CardComment{ID: "com-1", CardID: "card-1"}, nil)

	_, err := svc.Create(context.Background(), "card-1", "alice", "looks good")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "card-1", "alice", "   ")
	assert.ErrorIs(t, err, ErrValidation)

	comments.AssertExpectations(t)
}

func TestCommentService_Update(t *testing.T) {
	t.Run("edits an owned comment", func(t *testing.T) {
		comments := new(MockCommentRepository)
		svc := NewCommentService(comments)

		comments.On("Get", mock.Anything, "com-1").Return(model.CardComment{ID: "com-1", CardID: "card-1"}, nil)
		comments.On("Update", mock.Anything, "com-1", "revised").Return(model.CardComment{ID: "com-1", Body: "revised"}, nil)

		got, err := svc.Update(context.Background(), "card-1", "com-1", "revised")
		require.NoError(t, err)
		assert.Equal(t, "revised", got.Body)
	})

	t.Run("comment under another card reads as missing", func(t *testing.T) {
		comments := new(MockCommentRepository)
		svc := NewCommentService(comments)

		comments.On("Get", mock.Anything, "com-1").Return(model.CardComment{ID: "com-1", CardID: "other-card"}, nil)

		_, err := svc.Update(context.Background(), "card-1", "com-1", "revised")
		assert.ErrorIs(t, err, repo.ErrorNotFound)
		comments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}
