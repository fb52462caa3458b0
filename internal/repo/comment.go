package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

const commentCols = `id, card_id, author, body, created_at, updated_at`

func scanComment(row pgx.Row) (model.CardComment, error) {
	var c model.CardComment
	err := row.Scan(&c.ID, &c.CardID, &c.Author, &c.Body, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *CommentRepo) Create(ctx context.Context, c model.CardComment) (model.CardComment, error) {
	created, err := scanComment(r.pool.QueryRow(ctx, `
		INSERT INTO card_comments (id, card_id, author, body)
		VALUES ($1, $2, $3, $4)
		RETURNING `+commentCols+`
	`, uuid.NewString(), c.CardID, c.Author, c.Body))
	return created, mapError(err)
}

func (r *CommentRepo) Get(ctx context.Context, id string) (model.CardComment, error) {
	c, err := scanComment(r.pool.QueryRow(ctx, `
		SELECT `+commentCols+` FROM card_comments WHERE id = $1
	`, id))

	if err == pgx.ErrNoRows {
		return c, ErrorNotFound
	}
	return c, err
}

func (r *CommentRepo) Update(ctx context.Context, id, body string) (model.CardComment, error) {
	c, err := scanComment(r.pool.QueryRow(ctx, `
		UPDATE card_comments SET body = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+commentCols+`
	`, id, body))

	if err == pgx.ErrNoRows {
		return c, ErrorNotFound
	}
	return c, err
}

func (r *CommentRepo) ListByCard(ctx context.Context, cardID string, desc bool) ([]model.CardComment, error) {
	dir := "ASC"
	if desc {
		dir = "DESC"
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+commentCols+` FROM card_comments
		WHERE card_id = $1
		ORDER BY created_at `+dir+`
	`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]model.CardComment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
