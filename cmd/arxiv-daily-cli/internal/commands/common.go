package commands

import (
	"fmt"
	"os"

	"arxiv_daily_service/internal/app"
	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/domain/reports"
	"arxiv_daily_service/internal/infrastructure/connector"
	"arxiv_daily_service/internal/infrastructure/persistence"
	"arxiv_daily_service/internal/infrastructure/persistence/models"
	"arxiv_daily_service/internal/infrastructure/report"
	"arxiv_daily_service/internal/pkg/config"
	"arxiv_daily_service/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the application config from the --config flag, falling
// back to the CONFIG_PATH environment variable.
func loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	_ = godotenv.Load()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = "configs/app.yaml"
	}

	appConfig, err := config.InitializeAppConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	return appConfig, nil
}

// cliDependencies bundles the services used by the CLI commands.
type cliDependencies struct {
	crawlService  papers.CrawlService
	paperService  papers.PaperMetadataService
	reportService reports.ReportService
	appConfig     *config.AppConfig
}

// buildDependencies wires the storage, connectors and services for one
// command invocation.
func buildDependencies(appConfig *config.AppConfig, loggerInstance logger.Logger) (*cliDependencies, error) {
	db, err := persistence.NewDBConnection(appConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.PaperModel{}, &models.CrawlRunModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	paperRepo, err := persistence.NewGormPaperRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create paper repository: %w", err)
	}

	runRepo, err := persistence.NewGormCrawlRunRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create crawl run repository: %w", err)
	}

	feedConnector, err := connector.NewArxivFeedConnector(&appConfig.Crawler, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed connector: %w", err)
	}

	codeConnector, err := connector.NewPapersWithCodeConnector(&appConfig.Crawler, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create code connector: %w", err)
	}

	archiveStore, err := report.NewJSONArchiveStore(&appConfig.Report, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive store: %w", err)
	}

	renderer, err := report.NewHTMLRenderer(&appConfig.Report, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	crawlService, err := app.NewCrawlService(feedConnector, codeConnector, paperRepo, runRepo, archiveStore, renderer, &appConfig.Crawler, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create crawl service: %w", err)
	}

	paperService, err := app.NewPaperMetadataService(paperRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create paper metadata service: %w", err)
	}

	reportService, err := app.NewReportService(archiveStore, renderer, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}

	return &cliDependencies{
		crawlService:  crawlService,
		paperService:  paperService,
		reportService: reportService,
		appConfig:     appConfig,
	}, nil
}
