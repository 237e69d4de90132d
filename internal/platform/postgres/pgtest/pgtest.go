// Copyright (c) 2026 Fyyur. All rights reserved.

/*
Package pgtest prepares a real PostgreSQL database for repository integration tests.

Tests call [Open], which skips unless FYYUR_TEST_DATABASE_URL is set. The
database is migrated to the latest schema and emptied before each test. A
session advisory lock serializes tests across packages, since `go test ./...`
runs packages in parallel against the same database.
*/
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/KonIngel/Fyyur/internal/platform/migration"
	"github.com/KonIngel/Fyyur/internal/platform/postgres"
)

// EnvDatabaseURL names the variable holding the test database DSN.
const EnvDatabaseURL = "FYYUR_TEST_DATABASE_URL"

// lockKey is an arbitrary constant shared by every test process.
const lockKey = 0x66797975

/*
Open returns a pool on a migrated, empty database or skips the test.

The pool and the serialization lock are released by t.Cleanup.
*/
func Open(t testing.TB) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skipf("%s not set; skipping PostgreSQL integration test", EnvDatabaseURL)
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, migration.RunUp(dsn, MigrationsDir(), logger))

	pool, err := postgres.NewPool(ctx, dsn, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	lockConn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	_, err = lockConn.Exec(ctx, "SELECT pg_advisory_lock($1)", lockKey)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = lockConn.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", lockKey)
		lockConn.Release()
	})

	Truncate(t, pool)
	return pool
}

// Truncate empties every table and resets the id sequences.
func Truncate(t testing.TB, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `TRUNCATE "Show", "Artist", "Venue" RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

// MigrationsDir locates data/migrations relative to this source file.
func MigrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "data", "migrations")
}
