// cmd/arxiv-daily-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "arxiv_daily_service/internal/api/rest/v1"
	"arxiv_daily_service/internal/app"
	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/infrastructure/connector"
	"arxiv_daily_service/internal/infrastructure/persistence"
	"arxiv_daily_service/internal/infrastructure/persistence/models"
	"arxiv_daily_service/internal/infrastructure/report"
	"arxiv_daily_service/internal/pkg/config"
	"arxiv_daily_service/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	appConfig, err := config.InitializeAppConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&appConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(appConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Start the in-process scheduler when enabled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if appConfig.Scheduler.Enabled {
		if err := deps.services.schedule.Start(ctx); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer deps.services.schedule.Stop()
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(appConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services *appServices
}

type appServices struct {
	paperMetadata papers.PaperMetadataService
	crawl         papers.CrawlService
	schedule      papers.ScheduleService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.AppConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.PaperModel{}, &models.CrawlRunModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	paperRepo, err := persistence.NewGormPaperRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create paper repository: %w", err)
	}

	runRepo, err := persistence.NewGormCrawlRunRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crawl run repository: %w", err)
	}

	// Initialize connectors
	feedConnector, err := connector.NewArxivFeedConnector(&cfg.Crawler, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed connector: %w", err)
	}

	codeConnector, err := connector.NewPapersWithCodeConnector(&cfg.Crawler, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create code connector: %w", err)
	}

	// Initialize report artifacts
	archiveStore, err := report.NewJSONArchiveStore(&cfg.Report, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive store: %w", err)
	}

	renderer, err := report.NewHTMLRenderer(&cfg.Report, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// Initialize services
	crawlService, err := app.NewCrawlService(feedConnector, codeConnector, paperRepo, runRepo, archiveStore, renderer, &cfg.Crawler, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crawl service: %w", err)
	}

	paperMetadataService, err := app.NewPaperMetadataService(paperRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create paper metadata service: %w", err)
	}

	scheduleService, err := app.NewScheduleService(crawlService, &cfg.Scheduler, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		services: &appServices{
			paperMetadata: paperMetadataService,
			crawl:         crawlService,
			schedule:      scheduleService,
		},
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.AppConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.paperMetadata,
		deps.services.crawl,
		&cfg.Report,
	)

	// Serve the report artifacts at the root as well, matching the paths the
	// static page was published under
	reportHandler := v1.NewReportHandler(&cfg.Report)
	r.GET("/index.html", reportHandler.GetHTMLReport)
	r.GET("/arxiv-daily.json", reportHandler.GetJSONArchive)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
