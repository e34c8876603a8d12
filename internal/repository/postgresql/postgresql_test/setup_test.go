package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/gymrepublic/gym-console/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// newTestTx opens a read-write transaction on TEST_DATABASE_URL that is rolled
// back when the test ends. The gym tables are created as temporary tables so
// the test never touches real data.
func newTestTx(t *testing.T) (context.Context, *database.DB, pgx.Tx) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 2})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	tx, err := db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadWrite})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

	_, err = tx.Exec(ctx, `
		CREATE TEMP TABLE staffs (
			id bigint PRIMARY KEY,
			fullname varchar(255) NOT NULL
		) ON COMMIT DROP;
		CREATE TEMP TABLE attendances (
			id bigint PRIMARY KEY,
			staff_id bigint NOT NULL,
			date date NOT NULL,
			clock_in_time time,
			clock_out_time time,
			attendance varchar(32)
		) ON COMMIT DROP;
	`)
	require.NoError(t, err)

	return ctx, db, tx
}
