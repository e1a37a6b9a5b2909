// Package bootstrap assembles the application dependency graph
package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	appControllers "github.com/santanu2402/Alumni-Management-System/internal/app/controllers"
	appRepos "github.com/santanu2402/Alumni-Management-System/internal/app/repositories"
	appRoutes "github.com/santanu2402/Alumni-Management-System/internal/app/routes"
	appServices "github.com/santanu2402/Alumni-Management-System/internal/app/services"
	"github.com/santanu2402/Alumni-Management-System/internal/config"
	"github.com/santanu2402/Alumni-Management-System/internal/db"
	appMiddleware "github.com/santanu2402/Alumni-Management-System/internal/middleware"
	pkgAuth "github.com/santanu2402/Alumni-Management-System/internal/pkg/auth"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/filestorage"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                  *appRepos.Repositories
	Services               *appServices.Services
	AdminController        *appControllers.AdminController
	StudentController      *appControllers.StudentController
	AlumniController       *appControllers.AlumniController
	VerificationController *appControllers.VerificationController
	PostController         *appControllers.PostController
	TrainingController     *appControllers.TrainingController
	HealthController       *appControllers.HealthController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	JWTService             *pkgAuth.JWTService
	FileStorage            *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase connects to MongoDB and reconciles indexes
func SetupDatabase(ctx context.Context, cfg *config.Config) (*db.MongoDB, error) {
	database, err := db.NewMongoDB(ctx, &cfg.Database)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	if err := db.EnsureIndexes(ctx, database.Database); err != nil {
		logger.Error().Err(err).Msg("Failed to ensure indexes")
		_ = database.Close(ctx)
		return nil, err
	}

	return database, nil
}

// BuildDependencies wires repositories, services, controllers and middleware
func BuildDependencies(cfg *config.Config, database *db.MongoDB) (*Dependencies, error) {
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	storage, err := filestorage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.BaseURL)
	if err != nil {
		return nil, err
	}

	repos := appRepos.NewRepositories(database.Database)
	services := appServices.NewServices(repos, jwtService, storage)

	return &Dependencies{
		Repos:                  repos,
		Services:               services,
		AdminController:        appControllers.NewAdminController(services.AdminService),
		StudentController:      appControllers.NewStudentController(services.StudentService),
		AlumniController:       appControllers.NewAlumniController(services.AlumniService),
		VerificationController: appControllers.NewVerificationController(services.VerificationService),
		PostController:         appControllers.NewPostController(services.PostService),
		TrainingController:     appControllers.NewTrainingController(services.TrainingService),
		HealthController:       appControllers.NewHealthController(database),
		AuthMiddleware:         appMiddleware.NewAuthMiddleware(jwtService),
		JWTService:             jwtService,
		FileStorage:            storage,
	}, nil
}

// SetupRouter builds the gin engine with middleware and all routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// Uploaded media is served directly from disk
	router.Static(cfg.Storage.BaseURL, cfg.Storage.UploadDir)

	appRoutes.SetupRouter(
		router,
		deps.AdminController,
		deps.StudentController,
		deps.AlumniController,
		deps.VerificationController,
		deps.PostController,
		deps.TrainingController,
		deps.HealthController,
		deps.AuthMiddleware,
	)

	return router
}
