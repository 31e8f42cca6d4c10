package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gmolchanov/quadrant/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countTasks(t *testing.T, uow db.UnitOfWork) int {
	t.Helper()
	var n int
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n)
	})
	require.NoError(t, err)
	return n
}

func insertTask(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO tasks (id, title, created_at, updated_at) VALUES (?, 'x', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`, id)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	uow := db.NewSQLiteUnitOfWork(database)

	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertTask(ctx, tx, "t1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countTasks(t, uow))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	uow := db.NewSQLiteUnitOfWork(database)

	boom := errors.New("boom")
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertTask(ctx, tx, "t1"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countTasks(t, uow), "insert should have been rolled back")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	uow := db.NewSQLiteUnitOfWork(database)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			if err := insertTask(ctx, tx, "t1"); err != nil {
				return err
			}
			panic("boom")
		})
	})
	assert.Equal(t, 0, countTasks(t, uow))
}
