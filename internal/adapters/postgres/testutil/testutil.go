// Package testutil opens a migrated database pool for the postgres adapter
// contract tests. The tests are skipped unless TEST_DATABASE_URL points at a
// disposable database.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danphoto/portfolio-api/internal/adapters/postgres"
)

// tables in child-before-parent order so TRUNCATE never trips a foreign key.
var tables = []string{
	"session_pose",
	"favorites",
	"hashtag_post",
	"hashtag_pose",
	"portfolio_image",
	"sessions",
	"portfolio_category",
	"places",
	"posts",
	"poses",
	"hashtags",
	"theme_of_the_day",
	"events",
	"users",
}

// OpenMigratedPool connects to TEST_DATABASE_URL, applies the migrations, and
// returns a pool whose cleanup empties every table.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(ctx, url); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{URL: url})
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}

	t.Cleanup(func() {
		truncateAll(t, pool)
		pool.Close()
	})
	truncateAll(t, pool)
	return pool
}

func truncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, table := range tables {
		if _, err := pool.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}
}
