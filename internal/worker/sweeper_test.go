package worker

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskboard-api/tests"
)

func TestSweeper_Sweep(t *testing.T) {
	pool, cleanup := tests.SetupTestDB(t)
	defer cleanup()

	boardID := tests.SeedBoard(t, pool, "Taskboard")
	columnID := tests.SeedColumn(t, pool, boardID, "Backlog", 0)
	ids := tests.SeedCards(t, pool, columnID, 4)

	// Punch holes in the ordering: 0,1,2,3 becomes 0,5,5,9.
	tests.SetCardOrder(t, pool, ids[1], 5)
	tests.SetCardOrder(t, pool, ids[2], 5)
	tests.SetCardOrder(t, pool, ids[3], 9)

	sweeper := NewSweeper(pool, zap.NewNop(), 0)

	repaired, err := sweeper.Sweep(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if repaired != 3 {
		t.Errorf("expected 3 repaired rows, got %d", repaired)
	}

	rows, err := pool.Query(context.Background(), `
		SELECT ord FROM cards WHERE column_id = $1 AND NOT archived ORDER BY ord
	`, columnID)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	want := 0
	for rows.Next() {
		var ord int
		if err := rows.Scan(&ord); err != nil {
			t.Fatal(err)
		}
		if ord != want {
			t.Errorf("expected ord %d, got %d", want, ord)
		}
		want++
	}
	if want != 4 {
		t.Errorf("expected 4 active cards, got %d", want)
	}

	// A second pass finds nothing to fix.
	repaired, err = sweeper.Sweep(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if repaired != 0 {
		t.Errorf("expected idempotent sweep, repaired %d rows", repaired)
	}
}

func TestSweeper_DisabledByDefault(t *testing.T) {
	sweeper := NewSweeper(nil, zap.NewNop(), 0)

	// Start must not spawn anything with no interval configured; Stop would
	// hang on a goroutine that never registered.
	sweeper.Start(context.Background())
	sweeper.Stop()
}
