//go:build unit

package repository

import (
	"context"
	"testing"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/pgsql"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpsertUser(ctx context.Context, db pgsql.DBTX, arg pgsql.UpsertUserParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

// mockDB satisfies pgsql.DBTX; repository tests never reach it.
type mockDB struct {
	mock.Mock
}

func (m *mockDB) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *mockDB) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *mockDB) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func (m *mockDB) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	mockArgs := m.Called(ctx, tableName, columnNames, rowSrc)
	return mockArgs.Get(0).(int64), mockArgs.Error(1)
}

func TestUpsertUser(t *testing.T) {
	recipient := user.Recipient{
		ID:       uuid.New(),
		Email:    "traveller@example.com",
		Role:     user.RoleCustomer,
		IsActive: true,
	}

	tests := []struct {
		name      string
		mockError error
		wantError bool
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:      "success",
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
			wantKind:  infra.KindDBFailure,
		},
		{
			name:      "unique violation",
			mockError: &pgconn.PgError{Code: "23505"},
			wantError: true,
			wantKind:  infra.KindDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			db := new(mockDB)
			mockQueries.On("UpsertUser", mock.Anything, db, pgsql.UpsertUserParams{
				ID:    recipient.ID,
				Email: "traveller@example.com",
				Role:  "customer",
			}).Return(tt.mockError)

			repo := NewUserRepository(mockQueries)

			err := repo.Upsert(context.Background(), db, recipient)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
