package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/taskboard-api/internal/model"
)

type ActivityRepo struct {
	pool *pgxpool.Pool
}

func NewActivityRepo(pool *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{pool: pool}
}

// Append writes one immutable record, timestamped by the store at append
// time. Records are never updated or deleted here; they only go away when
// their card cascades.
func (r *ActivityRepo) Append(ctx context.Context, a model.CardActivity) (model.CardActivity, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO card_activity (id, card_id, type, actor, before, after)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, card_id, type, actor, ts, before, after
	`, uuid.NewString(), a.CardID, a.Type, a.Actor, a.Before, a.After).Scan(
		&a.ID, &a.CardID, &a.Type, &a.Actor, &a.Timestamp, &a.Before, &a.After,
	)
	return a, mapError(err)
}

func (r *ActivityRepo) ListByCard(ctx context.Context, cardID string, desc bool) ([]model.CardActivity, error) {
	dir := "ASC"
	if desc {
		dir = "DESC"
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, card_id, type, actor, ts, before, after
		FROM card_activity
		WHERE card_id = $1
		ORDER BY ts `+dir+`
	`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	acts := make([]model.CardActivity, 0)
	for rows.Next() {
		var a model.CardActivity
		if err := rows.Scan(&a.ID, &a.CardID, &a.Type, &a.Actor, &a.Timestamp, &a.Before, &a.After); err != nil {
			return nil, err
		}
		acts = append(acts, a)
	}
	return acts, rows.Err()
}
