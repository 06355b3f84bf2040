package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ciic/internhub/internal/app/controllers"
	appMigrations "github.com/ciic/internhub/internal/app/migrations"
	appRepos "github.com/ciic/internhub/internal/app/repositories"
	appRoutes "github.com/ciic/internhub/internal/app/routes"
	appServices "github.com/ciic/internhub/internal/app/services"
	"github.com/ciic/internhub/internal/config"
	"github.com/ciic/internhub/internal/db"
	appMiddleware "github.com/ciic/internhub/internal/middleware"
	pkgAuth "github.com/ciic/internhub/internal/pkg/auth"
	"github.com/ciic/internhub/internal/pkg/email"
	"github.com/ciic/internhub/internal/pkg/helpers"
	"github.com/ciic/internhub/internal/pkg/logger"
	"github.com/ciic/internhub/internal/pkg/metrics"
	"github.com/ciic/internhub/internal/scheduler"
	"github.com/ciic/internhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	InternshipService     *appServices.InternshipService
	ApplicationService    *appServices.ApplicationService
	StudentService        *appServices.StudentService
	StartupService        *appServices.StartupService
	ReportService         *appServices.ReportService
	DashboardService      *appServices.DashboardService
	DomainService         *appServices.DomainService
	AlertService          *appServices.AlertService
	AuthController        *appControllers.AuthController
	InternshipController  *appControllers.InternshipController
	ApplicationController *appControllers.ApplicationController
	StudentController     *appControllers.StudentController
	StartupController     *appControllers.StartupController
	ReportController      *appControllers.ReportController
	MetaController        *appControllers.MetaController
	AlertController       *appControllers.AlertController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	EmailService          email.EmailService
	Sweeper               *scheduler.Sweeper
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	_ = godotenv.Load() // allow .env for local runs

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.StartupRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)

	deps.InternshipService = appServices.NewInternshipService(
		deps.Repos.InternshipRepository,
		deps.Repos.StartupRepository,
		deps.Repos.DomainRepository,
		lgr,
	)

	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.InternshipRepository,
		deps.Repos.StudentRepository,
		deps.Repos.StartupRepository,
		deps.Repos.UserRepository,
		deps.EmailService,
		lgr,
	)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.UserRepository, lgr)
	deps.StartupService = appServices.NewStartupService(deps.Repos.StartupRepository, deps.Repos.UserRepository, lgr)
	deps.ReportService = appServices.NewReportService(deps.Repos.ApplicationRepository, lgr)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StartupRepository,
		deps.Repos.InternshipRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	deps.DomainService = appServices.NewDomainService(deps.Repos.DomainRepository, lgr)
	deps.AlertService = appServices.NewAlertService(deps.Repos.AlertRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.InternshipController = appControllers.NewInternshipController(deps.InternshipService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.StartupController = appControllers.NewStartupController(deps.StartupService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService, deps.DashboardService)
	deps.MetaController = appControllers.NewMetaController(deps.DomainService)
	deps.AlertController = appControllers.NewAlertController(deps.AlertService)

	deps.Sweeper = scheduler.NewSweeper(deps.Repos.InternshipRepository, deps.Repos.TokenRepository, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(metrics.GinMiddleware())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.InternshipController,
		deps.ApplicationController,
		deps.StudentController,
		deps.StartupController,
		deps.ReportController,
		deps.MetaController,
		deps.AlertController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
