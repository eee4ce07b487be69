// cmd/seed/main.go
//
// Transactional seeding: clears users, categories and expenses and inserts a
// small development fixture. The whole batch runs inside one all-or-nothing
// transaction; any failure rolls back every prior statement.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"expense-ledger/internal/config"
	"expense-ledger/internal/domain"
	"expense-ledger/internal/repository"
	"expense-ledger/internal/repository/postgres"
	"expense-ledger/internal/util"
	"expense-ledger/pkg/db"
)

func main() {
	util.InitLogger()
	logger := util.GetLogger()

	if err := run(context.Background()); err != nil {
		logger.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Seeding completed.")
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	pool, err := db.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	txController, err := db.BeginTx(ctx, pool)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer db.RollbackTx(txController)

	tx, ok := txController.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("transaction controller does not implement DBExecutor")
	}

	// Clear existing data in FK-safe order.
	for _, table := range []string{"expenses", "categories", "users"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)

	users, err := seedUsers(ctx, tx, userRepo)
	if err != nil {
		return err
	}
	categories, err := seedCategories(ctx, tx, categoryRepo)
	if err != nil {
		return err
	}
	if err := seedExpenses(ctx, tx, expenseRepo, users, categories); err != nil {
		return err
	}

	if err := db.CommitTx(txController); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func strPtr(s string) *string { return &s }

func seedUsers(ctx context.Context, tx repository.DBExecutor, repo repository.UserRepository) ([]*domain.User, error) {
	fixtures := []struct {
		name, email, password string
		group, role           *string
	}{
		{"Fabian", "fabian@email.com", "password13", strPtr("devgroup12e"), nil},
		{"Alice", "alice@email.com", "password42", strPtr("devgroup12e"), strPtr("adult")},
		{"Matisse", "matisse@email.com", "password13", strPtr("9888112e"), strPtr("adult")},
	}

	users := make([]*domain.User, 0, len(fixtures))
	for _, f := range fixtures {
		hash, err := util.HashPassword(f.password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", f.name, err)
		}
		user := domain.NewUser(f.name, f.email, hash, f.group, f.role)
		if err := repo.CreateUser(ctx, tx, user); err != nil {
			return nil, fmt.Errorf("seed user %s: %w", f.name, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func seedCategories(ctx context.Context, tx repository.DBExecutor, repo repository.CategoryRepository) ([]*domain.Category, error) {
	fixtures := []struct {
		name string
		desc *string
	}{
		{"Car", strPtr("All car expenses")},
		{"Groceries", strPtr("All food and beverage bought from shops")},
		{"Entertainment", strPtr("Going out, not including restaurants")},
		{"Alcohol", nil},
	}

	categories := make([]*domain.Category, 0, len(fixtures))
	for _, f := range fixtures {
		category := domain.NewCategory(f.name, f.desc)
		if err := repo.CreateCategory(ctx, tx, category); err != nil {
			return nil, fmt.Errorf("seed category %s: %w", f.name, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func seedExpenses(ctx context.Context, tx repository.DBExecutor, repo repository.ExpenseRepository, users []*domain.User, categories []*domain.Category) error {
	now := time.Now().UTC()
	fixtures := []struct {
		cat    *domain.Category
		name   string
		desc   *string
		amount int64
		date   time.Time
		user   *domain.User
	}{
		{categories[0], "Tyre rotation", strPtr("Front pair"), 45, now.AddDate(0, 0, -12), users[0]},
		{categories[1], "Weekly shop", nil, 100, now.AddDate(0, 0, -7), users[1]},
		{categories[2], "Concert tickets", strPtr("Two seats"), 150, now.AddDate(0, 0, -3), users[2]},
		{categories[0], "Brake service", nil, 400, now.AddDate(0, 0, -1), users[0]},
	}

	for _, f := range fixtures {
		expense := domain.NewExpense(f.cat.CatID, f.name, f.desc, decimal.NewFromInt(f.amount), f.date, f.user.ID)
		if err := repo.CreateExpense(ctx, tx, expense); err != nil {
			return fmt.Errorf("seed expense %s: %w", f.name, err)
		}
	}
	return nil
}
