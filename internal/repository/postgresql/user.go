package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/retailops/turnos-backend/internal/domain/auth"
	"github.com/retailops/turnos-backend/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) auth.UserRepository {
	return &userRepository{db: db}
}

// GetByUsername implements auth.UserRepository.
func (u *userRepository) GetByUsername(ctx context.Context, username string) (auth.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, password_hash, role, created_at
		FROM users
		WHERE username = $1
	`

	var usr auth.User
	err := q.QueryRow(ctx, query, username).Scan(
		&usr.ID, &usr.Username, &usr.PasswordHash, &usr.Role, &usr.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return usr, nil
}

// GetByID implements auth.UserRepository.
func (u *userRepository) GetByID(ctx context.Context, id string) (auth.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`

	var usr auth.User
	err := q.QueryRow(ctx, query, id).Scan(
		&usr.ID, &usr.Username, &usr.PasswordHash, &usr.Role, &usr.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return usr, nil
}
