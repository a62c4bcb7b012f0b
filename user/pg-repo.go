package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct {
	pool *pgxpool.Pool
}

func NewPgRepo(pool *pgxpool.Pool) Repo {
	return &pgRepo{pool: pool}
}

// Store implements Repo
func (r *pgRepo) Store(ctx context.Context, row Row) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (uuid, username, email, bcrypt_pwd, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		row.UUID,
		row.Username,
		row.Email,
		row.BcryptPwd,
		row.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// List implements Repo
func (r *pgRepo) List(ctx context.Context) ([]Row, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT uuid, username, email, bcrypt_pwd, created_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []Row
	for rows.Next() {
		var user Row
		err := rows.Scan(
			&user.UUID,
			&user.Username,
			&user.Email,
			&user.BcryptPwd,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
