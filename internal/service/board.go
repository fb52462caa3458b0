package service

import (
	"context"
	"errors"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
)

var seedColumns = []string{"Backlog", "In Progress", "Done"}

// BoardService assembles the read view. It never mutates existing state; the
// only write it performs is the lazy creation of the default board.
type BoardService struct {
	boards   repo.BoardRepository
	columns  repo.ColumnRepository
	cards    repo.CardRepository
	projects repo.ProjectRepository
}

func NewBoardService(boards repo.BoardRepository, columns repo.ColumnRepository, cards repo.CardRepository, projects repo.ProjectRepository) *BoardService {
	return &BoardService{boards: boards, columns: columns, cards: cards, projects: projects}
}

// GetDefault returns the first board with columns and cards in display order
// (cards include archived ones), creating a seeded default board when none
// exists yet.
func (s *BoardService) GetDefault(ctx context.Context) (model.BoardView, error) {
	board, err := s.boards.First(ctx)
	if errors.Is(err, repo.ErrorNotFound) {
		board, err = s.createDefault(ctx)
	}
	if err != nil {
		return model.BoardView{}, err
	}

	columns, err := s.columns.ListByBoard(ctx, board.ID)
	if err != nil {
		return model.BoardView{}, err
	}

	view := model.BoardView{
		ID:      board.ID,
		Name:    board.Name,
		Columns: make([]model.ColumnView, 0, len(columns)),
	}

	for _, col := range columns {
		cards, err := s.cards.ListByColumn(ctx, col.ID)
		if err != nil {
			return model.BoardView{}, err
		}
		view.Columns = append(view.Columns, model.ColumnView{Column: col, Cards: cards})
	}

	projects, err := s.projects.ListByBoard(ctx, board.ID)
	if err != nil {
		return model.BoardView{}, err
	}
	view.Projects = projects

	return view, nil
}

func (s *BoardService) createDefault(ctx context.Context) (model.Board, error) {
	board, err := s.boards.Create(ctx, "Taskboard")
	if err != nil {
		return board, err
	}

	for i, name := range seedColumns {
		if _, err := s.columns.Create(ctx, model.Column{BoardID: board.ID, Name: name, Order: i}); err != nil {
			return board, err
		}
	}
	return board, nil
}
