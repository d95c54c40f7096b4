package repository

import (
	"context"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/pgsql"
)

type UserWriteQueries interface {
	UpsertUser(ctx context.Context, db pgsql.DBTX, arg pgsql.UpsertUserParams) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

// Upsert mirrors the token's user into the local table so bookings can reference it.
func (r *UserRepository) Upsert(ctx context.Context, db pgsql.DBTX, u user.Recipient) error {
	err := r.queries.UpsertUser(ctx, db, pgsql.UpsertUserParams{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert user", err)
	}
	return nil
}
