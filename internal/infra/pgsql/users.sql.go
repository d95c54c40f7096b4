package pgsql

import (
	"context"

	"github.com/google/uuid"
)

const upsertUser = `-- name: UpsertUser :exec
INSERT INTO users (id, email, role)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE
SET email = EXCLUDED.email,
    role = EXCLUDED.role,
    updated_at = NOW()
WHERE users.email IS DISTINCT FROM EXCLUDED.email
   OR users.role IS DISTINCT FROM EXCLUDED.role
`

type UpsertUserParams struct {
	ID    uuid.UUID
	Email string
	Role  string
}

func (q *Queries) UpsertUser(ctx context.Context, db DBTX, arg UpsertUserParams) error {
	_, err := db.Exec(ctx, upsertUser, arg.ID, arg.Email, arg.Role)
	return err
}

const listStaffUsers = `-- name: ListStaffUsers :many
SELECT id, email, role, is_active, created_at, updated_at
FROM users
WHERE role IN ('staff', 'admin') AND is_active = TRUE
ORDER BY email
`

func (q *Queries) ListStaffUsers(ctx context.Context, db DBTX) ([]User, error) {
	rows, err := db.Query(ctx, listStaffUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []User{}
	for rows.Next() {
		var i User
		if err := rows.Scan(&i.ID, &i.Email, &i.Role, &i.IsActive, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
