package routes

import (
	"context"
	"fmt"
	"log"
	"strings"

	request "parlamento/internal/adapter/http/dto/request"
	"parlamento/internal/adapter/http/handlers"
	"parlamento/internal/adapter/http/middleware"
	"parlamento/internal/adapter/persistence/repository"
	"parlamento/internal/config"
	"parlamento/internal/infrastructure/database"
	"parlamento/internal/usecase"
	"parlamento/internal/usecase/interfaces"
	"parlamento/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the use cases and ambient services the router serves.
// Nil Validator, Log and Metrics fall back to permissive, no-op and a fresh
// registry.
type Dependencies struct {
	Entries   usecase.IParliamentEntryUseCase
	Regions   usecase.IAutonomousRegionUseCase
	Sources   usecase.IDataSourceUseCase
	Validator *request.Validator
	Log       *logger.Logger
	Metrics   *middleware.Metrics
}

// Run will start the server
func Run() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logg.Sync()

	if strings.EqualFold(cfg.Env, "prod") || strings.EqualFold(cfg.Env, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	repos, err := newRepositories(ctx, cfg, logg)
	if err != nil {
		logg.Fatal("[app][startup] store unavailable", "backend", cfg.Store.Backend, "err", err)
	}
	if err := seed(ctx, cfg, repos, logg); err != nil {
		logg.Fatal("[app][startup] seeding failed", "err", err)
	}

	router := NewRouter(Dependencies{
		Entries:   usecase.NewParliamentEntryUseCase(repos.entries),
		Regions:   usecase.NewAutonomousRegionUseCase(repos.regions),
		Sources:   usecase.NewDataSourceUseCase(repos.sources),
		Validator: request.NewValidator(cfg.Validation.Strict),
		Log:       logg,
	})

	logg.Info("[app][startup] backend API server running", "addr", cfg.HTTP.Addr(), "store", cfg.Store.Backend)
	if err := router.Run(cfg.HTTP.Addr()); err != nil {
		logg.Fatal("Failed to startup the application", "err", err)
	}
}

// NewRouter wires middlewares, docs, metrics and the resource routes. Routes
// are mounted at the root, without a version prefix.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Log == nil {
		deps.Log = logger.NewNop()
	}
	if deps.Validator == nil {
		deps.Validator = request.NewValidator(false)
	}
	if deps.Metrics == nil {
		deps.Metrics = middleware.NewMetrics()
	}

	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	root := router.Group("")
	addPingRoutes(root)
	addEntryRoutes(root, handlers.NewParliamentEntryHandler(deps.Entries, deps.Validator, deps.Log))
	addAutonomousRegionRoutes(root, handlers.NewAutonomousRegionHandler(deps.Regions, deps.Validator, deps.Log))
	addDataSourceRoutes(root, handlers.NewDataSourceHandler(deps.Sources, deps.Validator, deps.Log))

	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(handlers.Recovery(deps.Log)))
	router.Use(middleware.CORS())
	router.Use(deps.Metrics.Middleware())
}

type repositories struct {
	entries interfaces.IParliamentEntryRepository
	regions interfaces.IAutonomousRegionRepository
	sources interfaces.IDataSourceRepository
}

// newRepositories connects the configured backend and creates its tables
// when absent.
func newRepositories(ctx context.Context, cfg *config.Config, logg *logger.Logger) (repositories, error) {
	switch cfg.Store.Backend {
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return repositories{}, err
		}
		tables := cfg.DynamoDB
		if err := database.EnsureDynamoTables(ctx, ddb, tables.EntriesTable, tables.RegionsTable, tables.DataSourcesTable); err != nil {
			return repositories{}, err
		}
		logg.Info("[app][startup] dynamodb ready", "region", tables.Region, "endpoint", tables.Endpoint)
		return repositories{
			entries: repository.NewParliamentEntryDynamoRepository(ddb, tables.EntriesTable),
			regions: repository.NewAutonomousRegionDynamoRepository(ddb, tables.RegionsTable),
			sources: repository.NewDataSourceDynamoRepository(ddb, tables.DataSourcesTable),
		}, nil
	case config.BackendSQL:
		db, err := database.ConnectSQL(cfg.Store)
		if err != nil {
			return repositories{}, err
		}
		if err := repository.AutoMigrateSQL(db); err != nil {
			return repositories{}, fmt.Errorf("create tables: %w", err)
		}
		logg.Info("[app][startup] sql store ready", "driver", cfg.Store.Driver)
		return repositories{
			entries: repository.NewParliamentEntryGormRepository(db),
			regions: repository.NewAutonomousRegionGormRepository(db),
			sources: repository.NewDataSourceGormRepository(db),
		}, nil
	default:
		return repositories{}, fmt.Errorf("%w: %q", config.ErrUnsupportedBackend, cfg.Store.Backend)
	}
}

func seed(ctx context.Context, cfg *config.Config, repos repositories, logg *logger.Logger) error {
	seeder := usecase.NewSeeder(repos.entries, repos.regions, repos.sources, logg)
	if cfg.Seed.Defaults {
		if err := seeder.SeedDefaults(ctx); err != nil {
			return err
		}
	}
	if cfg.Seed.EntriesFile == "" {
		return nil
	}

	items, err := database.LoadEntriesFile(cfg.Seed.EntriesFile)
	if err != nil {
		return err
	}
	n, err := seeder.ImportEntries(ctx, items)
	if err != nil {
		return err
	}
	logg.Info("[app][startup] entries imported", "file", cfg.Seed.EntriesFile, "imported", n, "total", len(items))
	return nil
}
