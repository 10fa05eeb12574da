package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/careerguide/internal/app/controllers"
	appMigrations "github.com/yigit/careerguide/internal/app/migrations"
	appRepos "github.com/yigit/careerguide/internal/app/repositories"
	appRoutes "github.com/yigit/careerguide/internal/app/routes"
	appServices "github.com/yigit/careerguide/internal/app/services"
	"github.com/yigit/careerguide/internal/config"
	"github.com/yigit/careerguide/internal/db"
	appMiddleware "github.com/yigit/careerguide/internal/middleware"
	"github.com/yigit/careerguide/internal/pkg/cache"
	"github.com/yigit/careerguide/internal/pkg/filestorage"
	"github.com/yigit/careerguide/internal/pkg/helpers"
	"github.com/yigit/careerguide/internal/pkg/logger"
	"github.com/yigit/careerguide/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos        *appRepos.Repositories
	FileStorage  filestorage.FileStorage
	LocalStorage *filestorage.LocalStorage // set only for the local driver
	Cache        *cache.Client             // nil when redis is disabled
	Controllers  *appRoutes.Controllers
	Logger       zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
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
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// setupFileStorage picks the upload backend named by the configuration
func setupFileStorage(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	switch strings.ToLower(cfg.Storage.Driver) {
	case config.StorageDriverMinio:
		ms, err := filestorage.NewMinioStorage(ctx, filestorage.MinioOptions{
			Endpoint:  cfg.Storage.MinioEndpoint,
			AccessKey: cfg.Storage.MinioAccessKey,
			SecretKey: cfg.Storage.MinioSecretKey,
			Bucket:    cfg.Storage.MinioBucket,
		})
		if err != nil {
			return err
		}
		deps.FileStorage = ms
	default:
		ls, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.BaseURL)
		if err != nil {
			return err
		}
		deps.FileStorage = ls
		deps.LocalStorage = ls
	}
	return nil
}

// setupCache connects to redis when enabled. An unreachable redis only
// disables caching.
func setupCache(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) *cache.Client {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Catalog cache disabled")
		return nil
	}

	client := cache.New(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, catalog reads go to the database")
	} else {
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Catalog cache connected")
	}
	return client
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	if err := setupFileStorage(ctx, cfg, deps); err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Cache = setupCache(ctx, cfg, lgr)
	var store cache.Store
	if deps.Cache != nil {
		store = deps.Cache
	}
	cacheTTL := helpers.ParseDuration(cfg.Redis.TTL, 5*time.Minute)
	maxUpload := cfg.Server.MaxUploadBytes

	authService := appServices.NewAuthService(deps.Repos.UserRepository, deps.FileStorage, maxUpload)
	userService := appServices.NewUserService(deps.Repos.UserRepository, deps.FileStorage, maxUpload)
	institutionService := appServices.NewInstitutionService(deps.Repos.InstitutionRepository, deps.FileStorage, store, cacheTTL, maxUpload)
	facultyService := appServices.NewFacultyService(deps.Repos.FacultyRepository, store, cacheTTL)
	courseService := appServices.NewCourseService(deps.Repos.CourseRepository, store, cacheTTL)
	applicationService := appServices.NewApplicationService(deps.Repos.ApplicationRepository)
	admissionService := appServices.NewAdmissionService(database, deps.Repos.ApplicationRepository, deps.Repos.AdmissionRepository)

	deps.Controllers = &appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(authService),
		User:        appControllers.NewUserController(userService),
		Institution: appControllers.NewInstitutionController(institutionService),
		Faculty:     appControllers.NewFacultyController(facultyService),
		Course:      appControllers.NewCourseController(courseService),
		Application: appControllers.NewApplicationController(applicationService),
		Admission:   appControllers.NewAdmissionController(admissionService),
		Health:      appControllers.NewHealthController(database),
	}

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, deps.Repos, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Server.MaxUploadBytes
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	if deps.LocalStorage != nil {
		router.Static("/"+filestorage.PublicPrefix, deps.LocalStorage.BasePath())
		lgr.Info().Str("path", deps.LocalStorage.BasePath()).Msg("Static file serving configured for uploads directory")
	}

	return router
}
