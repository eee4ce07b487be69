// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "expense-ledger/internal/api"
	"expense-ledger/internal/api/handler"
	"expense-ledger/internal/config"
	"expense-ledger/internal/repository"
	"expense-ledger/internal/repository/postgres"
	"expense-ledger/internal/service"
	"expense-ledger/internal/util"
	"expense-ledger/pkg/db"
)

// Application holds all the initialized components of the application.
// The DB pool is process-wide state: initialized once at startup,
// health-checked before serving traffic, released on shutdown, never
// recreated per request.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository     repository.UserRepository
	ExpenseRepository  repository.ExpenseRepository
	CategoryRepository repository.CategoryRepository

	// Services
	UserService    service.UserService
	ExpenseService service.ExpenseService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Apply schema migrations
	if err := db.RunMigrations(app.Config.DatabaseURL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Schema migrations applied.")

	// 5. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.ExpenseRepository = postgres.NewExpenseRepository(app.DB)
	app.CategoryRepository = postgres.NewCategoryRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 6. Initialize Services
	app.UserService = service.NewUserService(app.DB, app.UserRepository)
	app.ExpenseService = service.NewExpenseService(app.DB, app.ExpenseRepository)
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	expenseHandler := handler.NewExpenseHandler(app.ExpenseService, app.Logger)
	userHandler := handler.NewUserHandler(app.UserService, app.Logger)
	app.HTTPHandler = router.NewRouter(expenseHandler, userHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
