package worker

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Sweeper is an opt-in maintenance loop. Mutation operations commit their
// steps one statement at a time, so a crash mid-operation can leave a
// column's active ordering with gaps or duplicates; the sweep renumbers each
// column's active cards back to 0..N-1. Renumbering is idempotent, so
// overlapping with live requests is harmless. It never runs unless an
// interval is configured.
type Sweeper struct {
	pool     *pgxpool.Pool
	logger   *zap.Logger
	interval time.Duration
	wg       sync.WaitGroup
	stop     chan struct{}
}

func NewSweeper(pool *pgxpool.Pool, logger *zap.Logger, interval time.Duration) *Sweeper {
	return &Sweeper{
		pool:     pool,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	s.logger.Info("Starting order sweeper", zap.Duration("interval", s.interval))

	s.wg.Add(1)
	go s.run(ctx)
}

func (s *Sweeper) Stop() {
	close(s.stop)
	s.wg.Wait()
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			repaired, err := s.Sweep(ctx)
			if err != nil {
				s.logger.Error("sweep failed", zap.Error(err))
				continue
			}
			if repaired > 0 {
				s.logger.Info("sweep repaired card orders", zap.Int64("cards", repaired))
			}
		}
	}
}

// Sweep renumbers every column's active cards in one statement and returns
// how many rows actually moved.
func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	cmd, err := s.pool.Exec(ctx, `
		WITH ranked AS (
			SELECT id, row_number() OVER (PARTITION BY column_id ORDER BY ord, created_at) - 1 AS rn
			FROM cards
			WHERE NOT archived
		)
		UPDATE cards
		SET ord = ranked.rn, updated_at = now()
		FROM ranked
		WHERE cards.id = ranked.id AND cards.ord <> ranked.rn
	`)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
