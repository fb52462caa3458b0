package tests

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupTestDB starts a throwaway PostgreSQL container with the schema applied.
func SetupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()
	ctx := context.Background()

	_, filename, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filename))
	migrationsPath := filepath.Join(projectRoot, "migrations")

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.WithInitScripts(filepath.Join(migrationsPath, "001_create_board.up.sql")),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	cleanup := func() {
		pool.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Errorf("Failed to terminate container: %v", err)
		}
	}

	return pool, cleanup
}

// TruncateTables empties every table.
func TruncateTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx, "TRUNCATE boards, columns, projects, project_specs, cards, card_activity, card_comments CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// SeedBoard inserts a board and returns its id.
func SeedBoard(t *testing.T, pool *pgxpool.Pool, name string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := pool.Exec(context.Background(), "INSERT INTO boards (id, name) VALUES ($1, $2)", id, name)
	if err != nil {
		t.Fatalf("Failed to seed board: %v", err)
	}
	return id
}

// SeedColumn inserts a column at the given position and returns its id.
func SeedColumn(t *testing.T, pool *pgxpool.Pool, boardID, name string, ord int) string {
	t.Helper()

	id := uuid.NewString()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO columns (id, board_id, name, ord) VALUES ($1, $2, $3, $4)
	`, id, boardID, name, ord)
	if err != nil {
		t.Fatalf("Failed to seed column: %v", err)
	}
	return id
}

// SeedCards inserts count active cards with dense orders and returns their ids.
func SeedCards(t *testing.T, pool *pgxpool.Pool, columnID string, count int) []string {
	t.Helper()
	ctx := context.Background()

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id := uuid.NewString()
		_, err := pool.Exec(ctx, `
			INSERT INTO cards (id, column_id, title, tags, priority, ord)
			VALUES ($1, $2, $3, '[]', 'MEDIUM', $4)
		`, id, columnID, fmt.Sprintf("Card %d", i+1), i)
		if err != nil {
			t.Fatalf("Failed to seed card: %v", err)
		}
		ids = append(ids, id)
	}

	return ids
}

// SetCardOrder overwrites one card's position, bypassing the service layer.
func SetCardOrder(t *testing.T, pool *pgxpool.Pool, cardID string, ord int) {
	t.Helper()

	_, err := pool.Exec(context.Background(), "UPDATE cards SET ord = $2 WHERE id = $1", cardID, ord)
	if err != nil {
		t.Fatalf("Failed to set card order: %v", err)
	}
}
