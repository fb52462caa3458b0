package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
)

type ProjectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepo(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

const projectCols = `id, board_id, name, key_prefix, description, next_seq, created_at, updated_at`

func scanProject(row pgx.Row) (model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.BoardID, &p.Name, &p.KeyPrefix, &p.Description, &p.NextSeq, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *ProjectRepo) Create(ctx context.Context, p model.Project) (model.Project, error) {
	created, err := scanProject(r.pool.QueryRow(ctx, `
		INSERT INTO projects (id, board_id, name, key_prefix, description, next_seq)
		VALUES ($1, $2, $3, $4, $5, 1)
		RETURNING `+projectCols+`
	`, uuid.NewString(), p.BoardID, p.Name, p.KeyPrefix, p.Description))
	return created, mapError(err)
}

func (r *ProjectRepo) Get(ctx context.Context, id string) (model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx, `
		SELECT `+projectCols+` FROM projects WHERE id = $1
	`, id))

	if err == pgx.ErrNoRows {
		return p, ErrorNotFound
	}
	return p, err
}

func (r *ProjectRepo) Update(ctx context.Context, p model.Project) (model.Project, error) {
	updated, err := scanProject(r.pool.QueryRow(ctx, `
		UPDATE projects
		SET name = $2, key_prefix = $3, description = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+projectCols+`
	`, p.ID, p.Name, p.KeyPrefix, p.Description))

	if err == pgx.ErrNoRows {
		return updated, ErrorNotFound
	}
	return updated, mapError(err)
}

func (r *ProjectRepo) UpsertByKeyPrefix(ctx context.Context, p model.Project) (model.Project, error) {
	upserted, err := scanProject(r.pool.QueryRow(ctx, `
		INSERT INTO projects (id, board_id, name, key_prefix, description, next_seq)
		VALUES ($1, $2, $3, $4, $5, 1)
		ON CONFLICT (board_id, key_prefix)
		DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description, updated_at = now()
		RETURNING `+projectCols+`
	`, uuid.NewString(), p.BoardID, p.Name, p.KeyPrefix, p.Description))
	return upserted, mapError(err)
}

func (r *ProjectRepo) ListByBoard(ctx context.Context, boardID string) ([]model.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+projectCols+` FROM projects WHERE board_id = $1 ORDER BY created_at
	`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// IncrementSeq bumps next_seq in a single statement and returns the new
// value; the counter only ever moves forward.
func (r *ProjectRepo) IncrementSeq(ctx context.Context, id string) (int, error) {
	var next int
	err := r.pool.QueryRow(ctx, `
		UPDATE projects SET next_seq = next_seq + 1, updated_at = now()
		WHERE id = $1
		RETURNING next_seq
	`, id).Scan(&next)

	if err == pgx.ErrNoRows {
		return 0, ErrorNotFound
	}
	return next, err
}
