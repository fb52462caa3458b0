package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
)

// ColumnService is the mutation engine for columns. Column ordering is
// deliberately looser than card ordering: reorder trusts the caller's id
// list and delete leaves a gap among the survivors.
type ColumnService struct {
	columns repo.ColumnRepository
}

func NewColumnService(columns repo.ColumnRepository) *ColumnService {
	return &ColumnService{columns: columns}
}

type CreateColumnInput struct {
	BoardID  string `json:"boardId"`
	Name     string `json:"name"`
	WIPLimit *int   `json:"wipLimit"`
}

func (s *ColumnService) Create(ctx context.Context, in CreateColumnInput) (model.Column, error) {
	if in.BoardID == "" {
		return model.Column{}, fmt.Errorf("%w: boardId is required", ErrValidation)
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Column{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.WIPLimit != nil && *in.WIPLimit <= 0 {
		return model.Column{}, fmt.Errorf("%w: wipLimit must be positive", ErrValidation)
	}

	max, err := s.columns.MaxOrder(ctx, in.BoardID)
	if err != nil {
		return model.Column{}, err
	}

	return s.columns.Create(ctx, model.Column{
		BoardID:  in.BoardID,
		Name:     in.Name,
		Order:    max + 1,
		WIPLimit: in.WIPLimit,
	})
}

type UpdateColumnInput struct {
	ID          string
	Name        *string
	WIPLimit    *int // only applied when WIPLimitSet; nil then clears
	WIPLimitSet bool
}

func (s *ColumnService) Update(ctx context.Context, in UpdateColumnInput) (model.Column, error) {
	if in.ID == "" {
		return model.Column{}, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return model.Column{}, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if in.WIPLimitSet && in.WIPLimit != nil && *in.WIPLimit <= 0 {
		return model.Column{}, fmt.Errorf("%w: wipLimit must be positive", ErrValidation)
	}

	col, err := s.columns.Get(ctx, in.ID)
	if err != nil {
		return model.Column{}, err
	}

	if in.Name != nil {
		col.Name = *in.Name
	}
	if in.WIPLimitSet {
		col.WIPLimit = in.WIPLimit
	}

	return s.columns.Update(ctx, col)
}

// Delete removes the column and, by cascade, its cards and their activity.
// Sibling orders are not renumbered; the gap is tolerated for columns.
func (s *ColumnService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	return s.columns.Delete(ctx, id)
}

type ReorderColumnsInput struct {
	BoardID          string   `json:"boardId"`
	OrderedColumnIDs []string `json:"orderedColumnIds"`
}

// Reorder writes order = index straight from the caller's list. Unlike card
// moves there is no reconciliation against the live set here; the caller is
// trusted to send the complete id set for the board.
func (s *ColumnService) Reorder(ctx context.Context, in ReorderColumnsInput) error {
	if in.BoardID == "" {
		return fmt.Errorf("%w: boardId is required", ErrValidation)
	}
	if len(in.OrderedColumnIDs) == 0 {
		return fmt.Errorf("%w: orderedColumnIds is required", ErrValidation)
	}

	for i, id := range in.OrderedColumnIDs {
		if err := s.columns.SetOrder(ctx, id, i); err != nil {
			return err
		}
	}
	return nil
}
