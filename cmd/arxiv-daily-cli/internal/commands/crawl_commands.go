package commands

import (
	"fmt"

	"arxiv_daily_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// CrawlCommandHandler encapsulates logic for running crawls via CLI.
type CrawlCommandHandler struct {
	logger logger.Logger
}

// NewCrawlCommandHandler initializes and returns a CrawlCommandHandler instance
// with a configured logger.
func NewCrawlCommandHandler() (*CrawlCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &CrawlCommandHandler{
		logger: loggerInstance,
	}, nil
}

// CrawlCmd runs one crawl over the configured keywords and regenerates the
// report artifacts
func (commandHandler *CrawlCommandHandler) CrawlCmd(cmd *cobra.Command, _ []string) {
	keywords, err := cmd.Flags().GetStringSlice("keyword")
	if err != nil {
		commandHandler.logger.Error("invalid keyword flag ", err)
		return
	}

	appConfig, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	deps, err := buildDependencies(appConfig, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	run, err := deps.crawlService.Crawl(cmd.Context(), keywords)
	if err != nil {
		commandHandler.logger.Error("Crawl failed: ", err)
		return
	}

	commandHandler.logger.Info("Crawl ", run.ID, " stored ", run.PaperCount, " papers (", run.NewCount, " new)")
}

// ListRunsCmd prints the most recent crawl runs
func (commandHandler *CrawlCommandHandler) ListRunsCmd(cmd *cobra.Command, _ []string) {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		commandHandler.logger.Error("invalid limit flag ", err)
		return
	}

	appConfig, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	deps, err := buildDependencies(appConfig, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	runs, err := deps.crawlService.ListRuns(cmd.Context(), limit)
	if err != nil {
		commandHandler.logger.Error("Listing crawl runs failed: ", err)
		return
	}

	for _, run := range runs {
		finished := "-"
		if run.FinishedAt != nil {
			finished = run.FinishedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("%s  %s  %-9s  papers=%d new=%d  %s\n",
			run.ID, run.StartedAt.Format("2006-01-02 15:04:05"), run.Status, run.PaperCount, run.NewCount, finished)
		if run.ErrorMessage != "" {
			fmt.Printf("    error: %s\n", run.ErrorMessage)
		}
	}
}

// InitCrawlCommands registers crawl-related commands
func InitCrawlCommands(rootCmd *cobra.Command) error {
	handler, err := NewCrawlCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create crawl command handler %w", err)
	}

	var crawlCmd = &cobra.Command{
		Use:   "crawl",
		Short: "Fetch papers from arXiv and regenerate the report",
		Run:   handler.CrawlCmd,
	}
	crawlCmd.Flags().StringSliceP("keyword", "", nil, "Configured keyword to crawl (repeatable, default all)")
	crawlCmd.Flags().StringP("config", "", "", "Path to the config file")
	rootCmd.AddCommand(crawlCmd)

	var listRunsCmd = &cobra.Command{
		Use:   "list-runs",
		Short: "List recent crawl runs",
		Run:   handler.ListRunsCmd,
	}
	listRunsCmd.Flags().IntP("limit", "", 20, "Maximum number of runs to list")
	listRunsCmd.Flags().StringP("config", "", "", "Path to the config file")
	rootCmd.AddCommand(listRunsCmd)

	return nil
}
