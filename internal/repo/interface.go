package repo

import (
	"context"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
)

type BoardRepository interface {
	First(ctx context.Context) (model.Board, error)
	Create(ctx context.Context, name string) (model.Board, error)
}

type ColumnRepository interface {
	Create(ctx context.Context, c model.Column) (model.Column, error)
	Get(ctx context.Context, id string) (model.Column, error)
	Update(ctx context.Context, c model.Column) (model.Column, error)
	Delete(ctx context.Context, id string) error
	SetOrder(ctx context.Context, id string, ord int) error
	ListByBoard(ctx context.Context, boardID string) ([]model.Column, error)
	MaxOrder(ctx context.Context, boardID string) (int, error)
}

type CardRepository interface {
	Create(ctx context.Context, c model.Card) (model.Card, error)
	Get(ctx context.Context, id string) (model.Card, error)
	Update(ctx context.Context, c model.Card) (model.Card, error)
	SetColumn(ctx context.Context, id, columnID string) error
	SetOrder(ctx context.Context, id string, ord int) error
	Archive(ctx context.Context, id string) (model.Card, error)
	Unarchive(ctx context.Context, id string, ord int) (model.Card, error)
	ListActive(ctx context.Context, columnID string) ([]model.Card, error)
	ListByColumn(ctx context.Context, columnID string) ([]model.Card, error)
	MaxOrder(ctx context.Context, columnID string) (int, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, p model.Project) (model.Project, error)
	Get(ctx context.Context, id string) (model.Project, error)
	Update(ctx context.Context, p model.Project) (model.Project, error)
	UpsertByKeyPrefix(ctx context.Context, p model.Project) (model.Project, error)
	ListByBoard(ctx context.Context, boardID string) ([]model.Project, error)
	IncrementSeq(ctx context.Context, id string) (int, error)
}

type SpecRepository interface {
	Upsert(ctx context.Context, projectID, markdown string, status model.SpecStatus) (model.ProjectSpec, error)
	GetByProject(ctx context.Context, projectID string) (model.ProjectSpec, error)
}

type ActivityRepository interface {
	Append(ctx context.Context, a model.CardActivity) (model.CardActivity, error)
	ListByCard(ctx context.Context, cardID string, desc bool) ([]model.CardActivity, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c model.CardComment) (model.CardComment, error)
	Get(ctx context.Context, id string) (model.CardComment, error)
	Update(ctx context.Context, id, body string) (model.CardComment, error)
	ListByCard(ctx context.Context, cardID string, desc bool) ([]model.CardComment, error)
}
