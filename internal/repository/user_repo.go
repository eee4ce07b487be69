// internal/repository/user_repo.go
package repository

import (
	"context"

	"expense-ledger/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user and sets its generated id. A duplicate email
	// surfaces as util.ErrConflict.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// ListUsers retrieves all users through the expense left join. The join
	// multiplies rows: a user with N expenses appears N times.
	ListUsers(ctx context.Context, q DBExecutor) ([]domain.User, error)
	// GetUserByID retrieves a single user by id.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByEmail retrieves a single user by exact email, hash included.
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
	// GetUsersByName retrieves the set of users matching a name case-insensitively.
	GetUsersByName(ctx context.Context, q DBExecutor, name string) ([]domain.User, error)
	// GetUsersByGroup retrieves the set of users in a group, case-insensitively.
	GetUsersByGroup(ctx context.Context, q DBExecutor, group string) ([]domain.User, error)
}
