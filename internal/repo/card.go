package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
)

type CardRepo struct {
	pool *pgxpool.Pool
}

func NewCardRepo(pool *pgxpool.Pool) *CardRepo {
	return &CardRepo{pool: pool}
}

const cardCols = `id, column_id, project_id, key_code, title, description, tags, priority, due_date, archived, ord, created_at, updated_at`

func scanCard(row pgx.Row) (model.Card, error) {
	var c model.Card
	err := row.Scan(
		&c.ID, &c.ColumnID, &c.ProjectID, &c.KeyCode, &c.Title, &c.Description,
		&c.Tags, &c.Priority, &c.DueDate, &c.Archived, &c.Order, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *CardRepo) Create(ctx context.Context, c model.Card) (model.Card, error) {
	created, err := scanCard(r.pool.QueryRow(ctx, `
		INSERT INTO cards (id, column_id, project_id, key_code, title, description, tags, priority, due_date, archived, ord)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+cardCols+`
	`, uuid.NewString(), c.ColumnID, c.ProjectID, c.KeyCode, c.Title, c.Description,
		c.Tags, c.Priority, c.DueDate, c.Archived, c.Order))
	return created, mapError(err)
}

func (r *CardRepo) Get(ctx context.Context, id string) (model.Card, error) {
	c, err := scanCard(r.pool.QueryRow(ctx, `
		SELECT `+cardCols+` FROM cards WHERE id = $1
	`, id))

	if err == pgx.ErrNoRows {
		return c, ErrorNotFound
	}
	return c, err
}

// Update writes the editable fields only; placement (column_id, ord,
// archived) and the immutable project link go through the dedicated methods.
func (r *CardRepo) Update(ctx context.Context, c model.Card) (model.Card, error) {
	updated, err := scanCard(r.pool.QueryRow(ctx, `
		UPDATE cards
		SET title = $2, description = $3, tags = $4, priority = $5, due_date = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+cardCols+`
	`, c.ID, c.Title, c.Description, c.Tags, c.Priority, c.DueDate))

	if err == pgx.ErrNoRows {
		return updated, ErrorNotFound
	}
	return updated, err
}

func (r *CardRepo) SetColumn(ctx context.Context, id, columnID string) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE cards SET column_id = $2, updated_at = now() WHERE id = $1
	`, id, columnID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *CardRepo) SetOrder(ctx context.Context, id string, ord int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE cards SET ord = $2, updated_at = now() WHERE id = $1
	`, id, ord)
	return err
}

func (r *CardRepo) Archive(ctx context.Context, id string) (model.Card, error) {
	c, err := scanCard(r.pool.QueryRow(ctx, `
		UPDATE cards SET archived = true, updated_at = now() WHERE id = $1
		RETURNING `+cardCols+`
	`, id))

	if err == pgx.ErrNoRows {
		return c, ErrorNotFound
	}
	return c, err
}

func (r *CardRepo) Unarchive(ctx context.Context, id string, ord int) (model.Card, error) {
	c, err := scanCard(r.pool.QueryRow(ctx, `
		UPDATE cards SET archived = false, ord = $2, updated_at = now() WHERE id = $1
		RETURNING `+cardCols+`
	`, id, ord))

	if err == pgx.ErrNoRows {
		return c, ErrorNotFound
	}
	return c, err
}

func (r *CardRepo) ListActive(ctx context.Context, columnID string) ([]model.Card, error) {
	return r.list(ctx, `
		SELECT `+cardCols+` FROM cards
		WHERE column_id = $1 AND NOT archived
		ORDER BY ord, created_at
	`, columnID)
}

func (r *CardRepo) ListByColumn(ctx context.Context, columnID string) ([]model.Card, error) {
	return r.list(ctx, `
		SELECT `+cardCols+` FROM cards
		WHERE column_id = $1
		ORDER BY ord, created_at
	`, columnID)
}

func (r *CardRepo) MaxOrder(ctx context.Context, columnID string) (int, error) {
	var max int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(MAX(ord), -1) FROM cards WHERE column_id = $1 AND NOT archived
	`, columnID).Scan(&max)
	return max, err
}

func (r *CardRepo) list(ctx context.Context, query string, args ...any) ([]model.Card, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]model.Card, 0)
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}
