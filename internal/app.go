// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "banktransfer/internal/api"
	"banktransfer/internal/api/handler"
	"banktransfer/internal/auth"
	"banktransfer/internal/config"
	"banktransfer/internal/repository"
	"banktransfer/internal/repository/postgres"
	"banktransfer/internal/service"
	"banktransfer/internal/util"
	"banktransfer/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository        repository.UserRepository
	AccountRepository     repository.AccountRepository
	TransferRepository    repository.TransferRepository
	IdempotencyRepository repository.IdempotencyRepository

	// Services
	AuthService     service.AuthService
	AccountService  service.AccountService
	TransferService service.TransferService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if err := postgres.Migrate(ctx, app.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database schema up to date.")

	app.UserRepository = postgres.NewUserRepository()
	app.AccountRepository = postgres.NewAccountRepository()
	app.TransferRepository = postgres.NewTransferRepository()
	app.IdempotencyRepository = postgres.NewIdempotencyRepository()
	app.Logger.Info("Repositories initialized.")

	tokens, err := auth.NewTokenService(app.Config.JWT.SigningKey, app.Config.JWT.Issuer, app.Config.JWT.Expiry)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	hasher := auth.NewPasswordHasher()

	app.AuthService = service.NewAuthService(app.DB, app.UserRepository, hasher, tokens)
	app.AccountService = service.NewAccountService(app.DB, app.AccountRepository, app.TransferRepository)
	app.TransferService = service.NewTransferService(
		app.DB, // DBTxBeginner
		app.DB, // DBExecutor for non-transactional reads
		app.AccountRepository,
		app.TransferRepository,
		app.IdempotencyRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.Logger.Info("Services initialized.")

	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	accountHandler := handler.NewAccountHandler(app.AccountService, app.Logger)
	transferHandler := handler.NewTransferHandler(app.TransferService, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, accountHandler, transferHandler, tokens)
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
