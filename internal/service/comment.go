package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
)

// CommentService is plain CRUD; comments carry no ordering invariant.
type CommentService struct {
	comments repo.CommentRepository
}

func NewCommentService(comments repo.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

func (s *CommentService) Create(ctx context.Context, cardID, author, body string) (model.CardComment, error) {
	if cardID == "" {
		return model.CardComment{}, fmt.Errorf("%w: cardId is required", ErrValidation)
	}
	if strings.TrimSpace(body) == "" {
		return model.CardComment{}, fmt.Errorf("%w: body is required", ErrValidation)
	}
	if strings.TrimSpace(author) == "" {
		return model.CardComment{}, fmt.Errorf("%w: author is required", ErrValidation)
	}

	return s.comments.Create(ctx, model.CardComment{CardID: cardID, Author: author, Body: body})
}

func (s *CommentService) ListByCard(ctx context.Context, cardID string, desc bool) ([]model.CardComment, error) {
	return s.comments.ListByCard(ctx, cardID, desc)
}

// Update edits a comment body after checking the comment belongs to the
// card it was addressed under.
func (s *CommentService) Update(ctx context.Context, cardID, id, body string) (model.CardComment, error) {
	if id == "" {
		return model.CardComment{}, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if strings.TrimSpace(body) == "" {
		return model.CardComment{}, fmt.Errorf("%w: body is required", ErrValidation)
	}

	existing, err := s.comments.Get(ctx, id)
	if err != nil {
		return model.CardComment{}, err
	}
	if existing.CardID != cardID {
		return model.CardComment{}, repo.ErrorNotFound
	}

	return s.comments.Update(ctx, id, body)
}
