package commands

import (
	"fmt"
	"time"

	"arxiv_daily_service/internal/domain/papers"
	"arxiv_daily_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// PapersCommandHandler encapsulates logic for querying stored papers via CLI.
type PapersCommandHandler struct {
	logger logger.Logger
}

// NewPapersCommandHandler initializes and returns a PapersCommandHandler instance
// with a configured logger.
func NewPapersCommandHandler() (*PapersCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &PapersCommandHandler{
		logger: loggerInstance,
	}, nil
}

// ListPapersCmd prints stored papers matching the given filters
func (commandHandler *PapersCommandHandler) ListPapersCmd(cmd *cobra.Command, _ []string) {
	query := papers.NewPaperQuery()

	if keyword, err := cmd.Flags().GetString("keyword"); err == nil && keyword != "" {
		query.Keyword = keyword
	}
	if category, err := cmd.Flags().GetString("category"); err == nil && category != "" {
		query.Category = category
	}
	if title, err := cmd.Flags().GetString("title"); err == nil && title != "" {
		query.Title = title
	}
	if since, err := cmd.Flags().GetString("published-since"); err == nil && since != "" {
		parsedTime, err := time.Parse("2006-01-02", since)
		if err != nil {
			commandHandler.logger.Error("invalid published-since flag ", err)
			return
		}
		query.PublishedSince = parsedTime
	}
	if limit, err := cmd.Flags().GetInt("limit"); err == nil && limit > 0 {
		query.Limit = limit
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

	paperList, err := deps.paperService.List(cmd.Context(), query)
	if err != nil {
		commandHandler.logger.Error("Listing papers failed: ", err)
		return
	}

	for _, paper := range paperList {
		fmt.Printf("%s  %s  [%s]  %s\n", paper.Key, paper.PublishedAt.Format("2006-01-02"), paper.Keyword, paper.Title)
	}
	commandHandler.logger.Info("Listed ", len(paperList), " papers")
}

// DeletePaperCmd removes all stored rows for a versionless paper key
func (commandHandler *PapersCommandHandler) DeletePaperCmd(cmd *cobra.Command, _ []string) {
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
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

	if err := deps.paperService.DeleteByKey(cmd.Context(), key); err != nil {
		commandHandler.logger.Error("Deleting paper failed: ", err)
		return
	}

	commandHandler.logger.Info("Deleted paper ", key)
}

// InitPapersCommands registers paper-related commands
func InitPapersCommands(rootCmd *cobra.Command) error {
	handler, err := NewPapersCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create papers command handler %w", err)
	}

	var listPapersCmd = &cobra.Command{
		Use:   "list-papers",
		Short: "List stored papers",
		Run:   handler.ListPapersCmd,
	}
	listPapersCmd.Flags().StringP("keyword", "", "", "Filter by configured keyword")
	listPapersCmd.Flags().StringP("category", "", "", "Filter by primary arXiv category")
	listPapersCmd.Flags().StringP("title", "", "", "Filter by title substring")
	listPapersCmd.Flags().StringP("published-since", "", "", "Publish date lower bound (YYYY-MM-DD)")
	listPapersCmd.Flags().IntP("limit", "", 100, "Maximum number of papers to list")
	listPapersCmd.Flags().StringP("config", "", "", "Path to the config file")
	rootCmd.AddCommand(listPapersCmd)

	var deletePaperCmd = &cobra.Command{
		Use:   "delete-paper",
		Short: "Delete a stored paper by its versionless arXiv key",
		Run:   handler.DeletePaperCmd,
	}
	deletePaperCmd.Flags().StringP("key", "", "", "Versionless arXiv key, e.g. 2108.09112")
	deletePaperCmd.Flags().StringP("config", "", "", "Path to the config file")
	rootCmd.AddCommand(deletePaperCmd)

	return nil
}
