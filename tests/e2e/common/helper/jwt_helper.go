//go:build e2e

package helper

import (
	"testing"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/config"
	"travel-booking/tests/common/authtest"
	"travel-booking/tests/common/dbtest"

	"github.com/jackc/pgx/v5/pgxpool"
)

// JWTTestHelper registers a user row and hands back a bearer token for it.
type JWTTestHelper struct {
	pool   *pgxpool.Pool
	tokens *authtest.JWTHelper
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, tokens: authtest.NewJWTHelper(cfg)}
}

func (h *JWTTestHelper) CreateAndLogin(t *testing.T, email string, role user.Role) string {
	t.Helper()
	return h.CreateAndLoginWithDB(t, h.pool, email, role)
}

func (h *JWTTestHelper) CreateAndLoginWithDB(t *testing.T, db dbtest.DBLike, email string, role user.Role) string {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email, role.String())
	return h.tokens.GenerateToken(t, userID, email, role)
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, email string, role user.Role) string {
	t.Helper()
	userID := dbtest.CreateTestUser(t, h.pool, email, role.String())
	return h.tokens.CreateExpiredToken(t, userID, email, role)
}
