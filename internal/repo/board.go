package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
)

type BoardRepo struct {
	pool *pgxpool.Pool
}

func NewBoardRepo(pool *pgxpool.Pool) *BoardRepo {
	return &BoardRepo{pool: pool}
}

func (r *BoardRepo) First(ctx context.Context) (model.Board, error) {
	var b model.Board
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM boards
		ORDER BY created_at
		LIMIT 1
	`).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)

	if err == pgx.ErrNoRows {
		return b, ErrorNotFound
	}
	return b, err
}

func (r *BoardRepo) Create(ctx context.Context, name string) (model.Board, error) {
	var b model.Board
	err := r.pool.QueryRow(ctx, `
		INSERT INTO boards (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at, updated_at
	`, uuid.NewString(), name).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	return b, mapError(err)
}
