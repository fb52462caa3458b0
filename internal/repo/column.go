package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
)

type ColumnRepo struct {
	pool *pgxpool.Pool
}

func NewColumnRepo(pool *pgxpool.Pool) *ColumnRepo {
	return &ColumnRepo{pool: pool}
}

const columnCols = `id, board_id, name, ord, wip_limit, created_at, updated_at`

func scanColumn(row pgx.Row) (model.Column, error) {
	var c model.Column
	err := row.Scan(&c.ID, &c.BoardID, &c.Name, &c.Order, &c.WIPLimit, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *ColumnRepo) Create(ctx context.Context, c model.Column) (model.Column, error) {
	created, err := scanColumn(r.pool.QueryRow(ctx, `
		INSERT INTO columns (id, board_id, name, ord, wip_limit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+columnCols+`
	`, uuid.NewString(), c.BoardID, c.Name, c.Order, c.WIPLimit))
	return created, mapError(err)
}

func (r *ColumnRepo) Get(ctx context.Context, id string) (model.Column, error) {
	c, err := scanColumn(r.pool.QueryRow(ctx, `
		SELECT `+columnCols+` FROM columns WHERE id = $1
	`, id))

	if err == pgx.ErrNoRows {
		return c, ErrorNotFound
	}
	return c, err
}

func (r *ColumnRepo) Update(ctx context.Context, c model.Column) (model.Column, error) {
	updated, err := scanColumn(r.pool.QueryRow(ctx, `
		UPDATE columns
		SET name = $2, wip_limit = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+columnCols+`
	`, c.ID, c.Name, c.WIPLimit))

	if err == pgx.ErrNoRows {
		return updated, ErrorNotFound
	}
	return updated, err
}

// Delete removes the column; cards and their activity go with it via cascade.
func (r *ColumnRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM columns WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *ColumnRepo) SetOrder(ctx context.Context, id string, ord int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE columns SET ord = $2, updated_at = now() WHERE id = $1
	`, id, ord)
	return err
}

func (r *ColumnRepo) ListByBoard(ctx context.Context, boardID string) ([]model.Column, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+columnCols+` FROM columns WHERE board_id = $1 ORDER BY ord, created_at
	`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make([]model.Column, 0)
	for rows.Next() {
		c, err := scanColumn(rows)
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, rows.Err()
}

func (r *ColumnRepo) MaxOrder(ctx context.Context, boardID string) (int, error) {
	var max int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(MAX(ord), -1) FROM columns WHERE board_id = $1
	`, boardID).Scan(&max)
	return max, err
}
