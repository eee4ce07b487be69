// internal/service/user_service.go
package service

import (
	"context"
	"fmt"

	"expense-ledger/internal/domain"
	"expense-ledger/internal/repository"
	"expense-ledger/internal/util"
)

// RegisterInput is the validated input for user registration.
type RegisterInput struct {
	UserName  string
	Email     string
	Password  string
	GroupName *string
	Role      *string
}

// UserService defines the interface for user-related business logic.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUsersByName(ctx context.Context, name string) ([]domain.User, error)
	GetUsersByGroup(ctx context.Context, group string) ([]domain.User, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	dbExecutor repository.DBExecutor // Shared pool for single-statement reads/writes
	userRepo   repository.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository) UserService {
	return &userService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
	}
}

// ListUsers returns all users. The underlying query left-joins expenses, so
// the result carries one row per user-expense pair; that multiplication is
// the operation's documented behavior and is not deduplicated here.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUserByID returns a single user. The id must be positive; validation
// happens before any store access. The hashed password is not redacted on
// this lookup.
func (s *userService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("user id must be positive: %w", util.ErrInvalidInput)
	}
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// GetUsersByName returns the set of users whose name matches case-insensitively.
// Names are not unique. An empty set is ErrUserNotFound.
func (s *userService) GetUsersByName(ctx context.Context, name string) ([]domain.User, error) {
	if name == "" {
		return nil, fmt.Errorf("user name is required: %w", util.ErrInvalidInput)
	}
	users, err := s.userRepo.GetUsersByName(ctx, s.dbExecutor, name)
	if err != nil {
		return nil, fmt.Errorf("get users by name '%s': %w", name, err)
	}
	if len(users) == 0 {
		return nil, util.ErrUserNotFound
	}
	return users, nil
}

// GetUsersByGroup returns the set of users in a group, matched case-insensitively.
// An empty set is ErrUserNotFound.
func (s *userService) GetUsersByGroup(ctx context.Context, group string) ([]domain.User, error) {
	if group == "" {
		return nil, fmt.Errorf("group name is required: %w", util.ErrInvalidInput)
	}
	users, err := s.userRepo.GetUsersByGroup(ctx, s.dbExecutor, group)
	if err != nil {
		return nil, fmt.Errorf("get users by group '%s': %w", group, err)
	}
	if len(users) == 0 {
		return nil, util.ErrUserNotFound
	}
	return users, nil
}

// Register creates a new user with a bcrypt-hashed password. A duplicate
// email surfaces as ErrConflict from the repository. The returned record has
// the password stripped.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.UserName == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("user_name, email and password are required: %w", util.ErrInvalidInput)
	}

	hash, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := domain.NewUser(input.UserName, input.Email, hash, input.GroupName, input.Role)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	return user.Sanitize(), nil
}

// Login verifies credentials against the stored bcrypt hash. Both an unknown
// email and a failed verify surface as the same ErrUnauthorized so the
// response never reveals which part was wrong. On success the user is
// returned with the password stripped. No token is issued.
func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", util.ErrInvalidInput)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUnauthorized
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := util.CheckPassword(user.Password, password); err != nil {
		return nil, util.ErrUnauthorized
	}

	return user.Sanitize(), nil
}
