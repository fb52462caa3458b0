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

func newBoardService() (*BoardService, *MockBoardRepository, *MockColumnRepository, *MockCardRepository, *MockProjectRepository) {
	boards := new(MockBoardRepository)
	columns := new(MockColumnRepository)
	cards := new(MockCardRepository)
	projects := new(MockProjectRepository)
	return NewBoardService(boards, columns, cards, projects), boards, columns, cards, projects
}

func TestBoardService_GetDefault(t *testing.T) {
	t.Run("assembles columns, cards and projects", func(t *testing.T) {
		svc, boards, columns, cards, projects := newBoardService()

		boards.On("First", mock.Anything).Return(model.Board{ID: "board-1", Name: "Taskboard"}, nil)
		columns.On("ListByBoard", mock.Anything, "board-1").Return([]model.Column{
			{ID: "col-1", Name: "Backlog", Order: 0},
			{ID: "col-2", Name: "Done", Order: 1},
		}, nil)
		cards.On("ListByColumn", mock.Anything, "col-1").Return([]model.Card{
			{ID: "card-1", Order: 0},
			{ID: "card-2", Order: 1, Archived: true},
		}, nil)
		cards.On("ListByColumn", mock.Anything, "col-2").Return([]model.Card{}, nil)
		projects.On("ListByBoard", mock.Anything, "board-1").Return([]model.Project{
			{ID: "proj-1", KeyPrefix: "TASK"},
		}, nil)

		view, err := svc.GetDefault(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "board-1", view.ID)
		require.Len(t, view.Columns, 2)
		assert.Equal(t, "Backlog", view.Columns[0].Name)
		// Archived cards stay in the payload.
		assert.Len(t, view.Columns[0].Cards, 2)
		assert.Empty(t, view.Columns[1].Cards)
		require.Len(t, view.Projects, 1)

		boards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("seeds a default board on first read", func(t *testing.T) {
		svc, boards, columns, cards, projects := newBoardService()

		boards.On("First", mock.Anything).Return(model.Board{}, repo.ErrorNotFound)
		boards.On("Create", mock.Anything, "Taskboard").Return(model.Board{ID: "board-1", Name: "Taskboard"}, nil)

		want := []struct {
			name string
			ord  int
		}{{"Backlog", 0}, {"In Progress", 1}, {"Done", 2}}
		for _, w := range want {
			w := w
			columns.On("Create", mock.Anything, mock.MatchedBy(func(c model.Column) bool {
				return c.BoardID == "board-1" && c.Name == w.name && c.Order == w.ord
			})).Return(model.Column{ID: "col-" + w.name, BoardID: "board-1", Name: w.name, Order: w.ord}, nil).Once()
		}

		columns.On("ListByBoard", mock.Anything, "board-1").Return([]model.Column{}, nil)
		projects.On("ListByBoard", mock.Anything, "board-1").Return([]model.Project{}, nil)

		view, err := svc.GetDefault(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Taskboard", view.Name)

		boards.AssertExpectations(t)
		columns.AssertExpectations(t)
		cards.AssertNotCalled(t, "ListByColumn", mock.Anything, mock.Anything)
	})
}
