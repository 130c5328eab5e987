package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"runwear/internal/clothing"
	"runwear/internal/lookups"
	"runwear/internal/pages"
	"runwear/internal/queue"
	"runwear/internal/services/health"
	"runwear/internal/shared/config"
	"runwear/internal/shared/server"
	"runwear/internal/shared/server/middleware"
	"runwear/internal/shared/storage/db"
	"runwear/internal/shared/storage/object"
	localstore "runwear/internal/shared/storage/object/local"
	s3store "runwear/internal/shared/storage/object/s3"
	"runwear/internal/shared/telemetry"
	"runwear/internal/weather"
	"runwear/web"
)

// App holds shared dependencies and the assembled router.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Assets          object.AssetStore
	Queue           queue.Client
	LookupsRepo     lookups.Repo
	LookupsService  *lookups.Service
	ClothingService *clothing.Service
	WeatherService  *weather.Service
	HealthService   *health.Service
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	assets, err := buildAssets(ctx, cfg)
	if err != nil {
		closeDB(sqlDB)
		return nil, err
	}

	queueClient, err := buildQueue(ctx, cfg)
	if err != nil {
		closeDB(sqlDB)
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Assets: assets,
		Queue:  queueClient,
	}
	if err := buildRouter(app); err != nil {
		closeDB(sqlDB)
		return nil, err
	}

	clothing.CheckCatalog()
	return app, nil
}

// Close releases the database pool.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		telemetry.Info("bootstrap.memory_history", map[string]any{"reason": "DATABASE_URL empty"})
		return nil, nil
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if config.IsDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_history", map[string]any{
				"reason": "database connect failed",
				"error":  err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}
	return sqlDB, nil
}

func buildAssets(ctx context.Context, cfg config.Config) (object.AssetStore, error) {
	switch {
	case cfg.Assets.S3Bucket != "":
		return s3store.New(ctx, cfg.AWSRegion, cfg.Assets.S3Bucket, cfg.Assets.S3Prefix)
	case cfg.Assets.Dir != "":
		return localstore.NewDir(cfg.Assets.Dir), nil
	default:
		return localstore.New(web.Static()), nil
	}
}

func buildQueue(ctx context.Context, cfg config.Config) (queue.Client, error) {
	if strings.TrimSpace(cfg.QueueURL) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx, cfg.AWSRegion, cfg.QueueURL)
}

func buildRouter(app *App) error {
	var repo lookups.Repo
	if app.DB != nil {
		repo = &lookups.PGRepo{DB: app.DB}
	} else {
		repo = lookups.NewMemoryRepo()
	}
	lookupsSvc := lookups.NewService(repo, app.Queue)
	clothingSvc := clothing.NewService(lookupsSvc)

	weatherClient := weather.NewClient(weather.ClientOptions{
		ZipBaseURL:       app.Config.Weather.ZipBaseURL,
		PointsBaseURL:    app.Config.Weather.PointsBaseURL,
		UserAgent:        app.Config.Weather.UserAgent,
		Timeout:          app.Config.Weather.Timeout,
		FailureThreshold: app.Config.Weather.FailureThreshold,
		OpenTimeout:      app.Config.Weather.OpenTimeout,
	})
	weatherSvc := weather.NewService(weatherClient, clothingSvc)

	// A nil *sql.DB must not reach the Pinger interface.
	var pinger health.Pinger
	if app.DB != nil {
		pinger = app.DB
	}
	healthSvc := health.NewService(pinger, strings.TrimSpace(app.Config.DatabaseURL) != "")

	tmpl, err := pages.LoadTemplates(web.Templates())
	if err != nil {
		return err
	}

	var fallback object.AssetStore
	if app.Config.Assets.Dir != "" || app.Config.Assets.S3Bucket != "" {
		fallback = localstore.New(web.Static())
	}

	app.LookupsRepo = repo
	app.LookupsService = lookupsSvc
	app.ClothingService = clothingSvc
	app.WeatherService = weatherSvc
	app.HealthService = healthSvc
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		Templates:       tmpl,
		ClothingHandler: clothing.NewHandler(clothingSvc),
		WeatherHandler:  weather.NewHandler(weatherSvc),
		LookupsHandler:  lookups.NewHandler(lookupsSvc),
		HealthHandler:   health.NewHandler(healthSvc),
		PagesHandler:    pages.NewHandler(),
		AssetHandler:    pages.NewAssetHandler(app.Assets, fallback),
		RateLimiter:     middleware.NewRateLimiter(nil),
	})
	return nil
}

func closeDB(sqlDB *sql.DB) {
	if sqlDB != nil {
		sqlDB.Close()
	}
}
