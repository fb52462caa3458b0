package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
)

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, c model.Card) (model.Card, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.Card), args.Error(1)
}

func (m *MockCardRepository) Get(ctx context.Context, id string) (model.Card, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Card), args.Error(1)
}

func (m *MockCardRepository) Update(ctx context.Context, c model.Card) (model.Card, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.Card), args.Error(1)
}

func (m *MockCardRepository) SetColumn(ctx context.Context, id, columnID string) error {
	args := m.Called(ctx, id, columnID)
	return args.Error(0)
}

func (m *MockCardRepository) SetOrder(ctx context.Context, id string, ord int) error {
	args := m.Called(ctx, id, ord)
	return args.Error(0)
}

func (m *MockCardRepository) Archive(ctx context.Context, id string) (model.Card, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Card), args.Error(1)
}

func (m *MockCardRepository) Unarchive(ctx context.Context, id string, ord int) (model.Card, error) {
	args := m.Called(ctx, id, ord)
	return args.Get(0).(model.Card), args.Error(1)
}

func (m *MockCardRepository) ListActive(ctx context.Context, columnID string) ([]model.Card, error) {
	args := m.Called(ctx, columnID)
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *MockCardRepository) ListByColumn(ctx context.Context, columnID string) ([]model.Card, error) {
	args := m.Called(ctx, columnID)
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *MockCardRepository) MaxOrder(ctx context.Context, columnID string) (int, error) {
	args := m.Called(ctx, columnID)
	return args.Int(0), args.Error(1)
}

type MockColumnRepository struct {
	mock.Mock
}

func (m *MockColumnRepository) Create(ctx context.Context, c model.Column) (model.Column, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.Column), args.Error(1)
}

func (m *MockColumnRepository) Get(ctx context.Context, id string) (model.Column, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Column), args.Error(1)
}

func (m *MockColumnRepository) Update(ctx context.Context, c model.Column) (model.Column, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.Column), args.Error(1)
}

func (m *MockColumnRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockColumnRepository) SetOrder(ctx context.Context, id string, ord int) error {
	args := m.Called(ctx, id, ord)
	return args.Error(0)
}

func (m *MockColumnRepository) ListByBoard(ctx context.Context, boardID string) ([]model.Column, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).([]model.Column), args.Error(1)
}

func (m *MockColumnRepository) MaxOrder(ctx context.Context, boardID string) (int, error) {
	args := m.Called(ctx, boardID)
	return args.Int(0), args.Error(1)
}

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) First(ctx context.Context) (model.Board, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Board), args.Error(1)
}

func (m *MockBoardRepository) Create(ctx context.Context, name string) (model.Board, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Board), args.Error(1)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, p model.Project) (model.Project, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *MockProjectRepository) Get(ctx context.Context, id string) (model.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, p model.Project) (model.Project, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *MockProjectRepository) UpsertByKeyPrefix(ctx context.Context, p model.Project) (model.Project, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *MockProjectRepository) ListByBoard(ctx context.Context, boardID string) ([]model.Project, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) IncrementSeq(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockSpecRepository struct {
	mock.Mock
}

func (m *MockSpecRepository) Upsert(ctx context.Context, projectID, markdown string, status model.SpecStatus) (model.ProjectSpec, error) {
	args := m.Called(ctx, projectID, markdown, status)
	return args.Get(0).(model.ProjectSpec), args.Error(1)
}

func (m *MockSpecRepository) GetByProject(ctx context.Context, projectID string) (model.ProjectSpec, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(model.ProjectSpec), args.Error(1)
}

type MockActivityRepository struct {
	mock.Mock

	Recorded []model.CardActivity
}

func (m *MockActivityRepository) Append(ctx context.Context, a model.CardActivity) (model.CardActivity, error) {
	m.Recorded = append(m.Recorded, a)
	args := m.Called(ctx, a)
	return args.Get(0).(model.CardActivity), args.Error(1)
}

func (m *MockActivityRepository) ListByCard(ctx context.Context, cardID string, desc bool) ([]model.CardActivity, error) {
	args := m.Called(ctx, cardID, desc)
	return args.Get(0).([]model.CardActivity), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, c model.CardComment) (model.CardComment, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.CardComment), args.Error(1)
}

func (m *MockCommentRepository) Get(ctx context.Context, id string) (model.CardComment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.CardComment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, id, body string) (model.CardComment, error) {
	args := m.Called(ctx, id, body)
	return args.Get(0).(model.CardComment), args.Error(1)
}

func (m *MockCommentRepository) ListByCard(ctx context.Context, cardID string, desc bool) ([]model.CardComment, error) {
	args := m.Called(ctx, cardID, desc)
	return args.Get(0).([]model.CardComment), args.Error(1)
}

type MockKeyAllocator struct {
	mock.Mock
}

func (m *MockKeyAllocator) AllocateKey(ctx context.Context, projectID string) (string, error) {
	args := m.Called(ctx, projectID)
	return args.String(0), args.Error(1)
}
