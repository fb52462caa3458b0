package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
)

type SpecRepo struct {
	pool *pgxpool.Pool
}

func NewSpecRepo(pool *pgxpool.Pool) *SpecRepo {
	return &SpecRepo{pool: pool}
}

const specCols = `id, project_id, markdown, status, created_at, updated_at`

func scanSpec(row pgx.Row) (model.ProjectSpec, error) {
	var s model.ProjectSpec
	err := row.Scan(&s.ID, &s.ProjectID, &s.Markdown, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *SpecRepo) Upsert(ctx context.Context, projectID, markdown string, status model.SpecStatus) (model.ProjectSpec, error) {
	s, err := scanSpec(r.pool.QueryRow(ctx, `
		INSERT INTO project_specs (id, project_id, markdown, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (project_id)
		DO UPDATE SET markdown = EXCLUDED.markdown, status = EXCLUDED.status, updated_at = now()
		RETURNING `+specCols+`
	`, uuid.NewString(), projectID, markdown, status))
	return s, mapError(err)
}

func (r *SpecRepo) GetByProject(ctx context.Context, projectID string) (model.ProjectSpec, error) {
	s, err := scanSpec(r.pool.QueryRow(ctx, `
		SELECT `+specCols+` FROM project_specs WHERE project_id = $1
	`, projectID))

	if err == pgx.ErrNoRows {
		return s, ErrorNotFound
	}
	return s, err
}
