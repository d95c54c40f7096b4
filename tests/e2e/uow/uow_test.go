//go:build e2e

package uow_test

import (
	"context"
	"testing"

	"travel-booking/internal/infra/pgsql"
	"travel-booking/internal/infra/uow"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/common/dbtest"
	"travel-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UnitOfWorkSuite struct {
	e2e.SharedSuite
}

func TestUnitOfWorkSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(UnitOfWorkSuite))
}

func (s *UnitOfWorkSuite) deactivate(ctx context.Context, db pgsql.DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, "UPDATE users SET is_active = FALSE WHERE id = $1", id)
	return err
}

func (s *UnitOfWorkSuite) isActive(t *testing.T, id uuid.UUID) bool {
	t.Helper()
	var active bool
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT is_active FROM users WHERE id = $1", id).Scan(&active))
	return active
}

// updateWithoutWaiting fails fast if another transaction still holds the row.
func (s *UnitOfWorkSuite) updateWithoutWaiting(t *testing.T, id uuid.UUID) {
	t.Helper()
	tx, err := s.DB.Begin(t.Context())
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(context.Background()) }()

	_, err = tx.Exec(t.Context(), "SET LOCAL lock_timeout = '2s'")
	require.NoError(t, err)
	_, err = tx.Exec(t.Context(), "UPDATE users SET updated_at = NOW() WHERE id = $1", id)
	require.NoError(t, err, "row is still locked by an abandoned transaction")
}

func (s *UnitOfWorkSuite) TestWithinOnce() {
	s.Run("Normal case: a returned error rolls the write back", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "rollback@example.com", "customer")
		u := uow.NewPostgresUoW(s.DB, pgsql.New())

		failure := errs.New("charge failed")
		err := u.WithinOnce(t.Context(), func(ctx context.Context, tx shared.Tx) error {
			if err := s.deactivate(ctx, tx.DB(), id); err != nil {
				return err
			}
			return failure
		})

		require.ErrorIs(t, err, failure)
		require.True(t, s.isActive(t, id))
		s.updateWithoutWaiting(t, id)
	})

	s.Run("Normal case: a panic inside the transaction releases its locks", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "panic@example.com", "customer")
		u := uow.NewPostgresUoW(s.DB, pgsql.New())

		require.PanicsWithValue(t, "integer overflow", func() {
			_ = u.WithinOnce(t.Context(), func(ctx context.Context, tx shared.Tx) error {
				require.NoError(t, s.deactivate(ctx, tx.DB(), id))
				panic("integer overflow")
			})
		})

		require.True(t, s.isActive(t, id))
		s.updateWithoutWaiting(t, id)
	})

	s.Run("Normal case: a cancelled request context still rolls back", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "cancel@example.com", "customer")
		u := uow.NewPostgresUoW(s.DB, pgsql.New())

		ctx, cancel := context.WithCancel(t.Context())
		err := u.WithinOnce(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := s.deactivate(ctx, tx.DB(), id); err != nil {
				return err
			}
			cancel()
			return ctx.Err()
		})

		require.ErrorIs(t, err, context.Canceled)
		require.True(t, s.isActive(t, id))
		s.updateWithoutWaiting(t, id)
	})

	s.Run("Normal case: a nil return commits", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "commit@example.com", "customer")
		u := uow.NewPostgresUoW(s.DB, pgsql.New())

		err := u.WithinOnce(t.Context(), func(ctx context.Context, tx shared.Tx) error {
			return s.deactivate(ctx, tx.DB(), id)
		})

		require.NoError(t, err)
		require.False(t, s.isActive(t, id))
	})
}
