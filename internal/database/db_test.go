package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	ctx := context.Background()

	t.Run("未設定時 panic", func(t *testing.T) {
		fake := &FakeDB{}
		require.Panics(t, func() { fake.Exec(ctx, "SELECT 1") })
		require.Panics(t, func() { fake.Query(ctx, "SELECT 1") })
		require.Panics(t, func() { fake.QueryRow(ctx, "SELECT 1") })
		require.Panics(t, func() { fake.Ping(ctx) })
		require.NotPanics(t, fake.Close)
	})

	t.Run("轉呼叫對應的 Fn", func(t *testing.T) {
		closed := false
		fake := &FakeDB{
			ExecFn: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
			QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				return nil, errors.New("query failed")
			},
			PingFn:  func(ctx context.Context) error { return errors.New("ping failed") },
			CloseFn: func() { closed = true },
		}

		tag, err := fake.Exec(ctx, "UPDATE tickets SET status = $1", "Resolved")
		require.NoError(t, err)
		require.EqualValues(t, 1, tag.RowsAffected())

		_, err = fake.Query(ctx, "SELECT 1")
		require.ErrorContains(t, err, "query failed")

		require.ErrorContains(t, fake.Ping(ctx), "ping failed")

		fake.Close()
		require.True(t, closed)
	})
}
