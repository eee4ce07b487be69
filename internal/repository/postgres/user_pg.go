// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expense-ledger/internal/domain"
	"expense-ledger/internal/repository"
	"expense-ledger/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// pqUniqueViolation is the PostgreSQL error code for a unique constraint hit.
const pqUniqueViolation = "23505"

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	// No state: methods receive their DBExecutor directly.
}

// NewUserRepository creates a new UserRepository.
// The db parameter is not stored in the struct, but passed to methods.
// This constructor is mainly for type assertion and consistency.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{}
}

// CreateUser inserts a new user into the database using the provided DBExecutor.
// The unique index on email maps a duplicate registration to util.ErrConflict.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (created_at, user_name, email, password, group_name, role)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		user.CreatedAt,
		user.UserName,
		user.Email,
		user.Password,
		user.GroupName,
		user.Role,
	).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return fmt.Errorf("email '%s' already registered: %w", user.Email, util.ErrConflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ListUsers retrieves all users using the provided DBExecutor.
// The left join against expenses is the documented literal behavior of this
// listing: it multiplies rows, so a user with N expenses appears N times.
func (r *UserRepository) ListUsers(ctx context.Context, q repository.DBExecutor) ([]domain.User, error) {
	users := []domain.User{}
	query := `
		SELECT u.id, u.created_at, u.user_name, u.email, u.password, u.group_name, u.role
		FROM users u
		LEFT JOIN expenses e ON (e.user_id[1])::bigint = u.id`
	if err := q.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUserByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, created_at, user_name, email, password, group_name, role
              FROM users WHERE id = $1`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by exact email using the provided DBExecutor.
func (r *UserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, created_at, user_name, email, password, group_name, role
              FROM users WHERE email = $1`
	err := q.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email '%s': %w", email, err)
	}
	return &user, nil
}

// GetUsersByName retrieves users matching the name case-insensitively.
// Names are not unique, so this is a set lookup.
func (r *UserRepository) GetUsersByName(ctx context.Context, q repository.DBExecutor, name string) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT id, created_at, user_name, email, password, group_name, role
              FROM users WHERE LOWER(user_name) = LOWER($1)`
	if err := q.SelectContext(ctx, &users, query, name); err != nil {
		return nil, fmt.Errorf("failed to get users by name '%s': %w", name, err)
	}
	return users, nil
}

// GetUsersByGroup retrieves users in a group, matched case-insensitively.
func (r *UserRepository) GetUsersByGroup(ctx context.Context, q repository.DBExecutor, group string) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT id, created_at, user_name, email, password, group_name, role
              FROM users WHERE LOWER(group_name) = LOWER($1)`
	if err := q.SelectContext(ctx, &users, query, group); err != nil {
		return nil, fmt.Errorf("failed to get users by group '%s': %w", group, err)
	}
	return users, nil
}
