//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike lets fixtures write through the suite pool or through a transaction
// a test still holds open.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ DBLike = (*pgxpool.Pool)(nil)
	_ DBLike = (pgx.Tx)(nil)
)

// Count runs a single-value count query, e.g. reserved seats of a flight.
func Count(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(t.Context(), query, args...).Scan(&n), query)
	return n
}
