package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procedure_control_app/internal/core/ports/repositories"
	"github.com/SscSPs/procedure_control_app/internal/core/services"
	"github.com/SscSPs/procedure_control_app/internal/handlers"
	"github.com/SscSPs/procedure_control_app/internal/middleware"
	"github.com/SscSPs/procedure_control_app/internal/platform/config"
	"github.com/SscSPs/procedure_control_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/procedure_control_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/procedure_control_app/internal/utils"
	"github.com/SscSPs/procedure_control_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Procedure Control Backend API
// @version 1.0
// @description Record management and reporting backend for the procedure dashboard.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, cleanup, err := setupRepositories(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	if err := bootstrapAdminUser(context.Background(), cfg, repos.UserRepo, logger); err != nil {
		logger.Error("Failed to bootstrap admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories selects the storage backend: PostgreSQL by default, or
// the embedded SQLite snapshot store when USE_LOCAL_STORE is set.
func setupRepositories(cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.UseLocalStore {
		repos, store, err := sqlite.NewRepositoryProvider(cfg.LocalStorePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Using local SQLite snapshot store", slog.String("path", store.Path()))
		return repos, func() {
			if cerr := store.Close(); cerr != nil {
				logger.Error("Error closing local store", slog.String("error", cerr.Error()))
			}
		}, nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), dbPool.Close, nil
}

// runMigrations applies all pending up migrations over a temporary
// database/sql connection compatible with the main pgx pool.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// bootstrapAdminUser seeds the configured admin account, but only when the
// store holds no accounts at all.
func bootstrapAdminUser(ctx context.Context, cfg *config.Config, userRepo portsrepo.UserRepository, logger *slog.Logger) error {
	users, err := userRepo.FindUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}
	if cfg.BootstrapAdminPassword == "" {
		logger.Warn("Store has no accounts and BOOTSTRAP_ADMIN_PASSWORD is unset; nobody can log in")
		return nil
	}

	hash, err := utils.HashPassword(cfg.BootstrapAdminPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := domain.User{
		UserID:       uuid.NewString(),
		Username:     cfg.BootstrapAdminUsername,
		PasswordHash: hash,
		Name:         cfg.BootstrapAdminName,
		Role:         domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt:      now,
			CreatedBy:      "system",
			LastModifiedAt: now,
			LastModifiedBy: "system",
		},
	}
	if err := userRepo.SaveUser(ctx, admin); err != nil {
		return err
	}
	logger.Info("Bootstrapped admin account", slog.String("username", admin.Username))
	return nil
}
