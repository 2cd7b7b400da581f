package commands

import (
	"fmt"

	"arxiv_daily_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RenderCommandHandler encapsulates logic for rebuilding the report page via CLI.
type RenderCommandHandler struct {
	logger logger.Logger
}

// NewRenderCommandHandler initializes and returns a RenderCommandHandler instance
// with a configured logger.
func NewRenderCommandHandler() (*RenderCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &RenderCommandHandler{
		logger: loggerInstance,
	}, nil
}

// RenderCmd regenerates the HTML page from the JSON archive on disk without
// touching the network
func (commandHandler *RenderCommandHandler) RenderCmd(cmd *cobra.Command, _ []string) {
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

	if err := deps.reportService.Rebuild(cmd.Context()); err != nil {
		commandHandler.logger.Error("Rebuild failed: ", err)
		return
	}

	commandHandler.logger.Info("Report rebuilt at ", appConfig.Report.HTMLPath)
}

// InitRenderCommands registers report-related commands
func InitRenderCommands(rootCmd *cobra.Command) error {
	handler, err := NewRenderCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create render command handler %w", err)
	}

	var renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Rebuild the HTML report from the JSON archive",
		Run:   handler.RenderCmd,
	}
	renderCmd.Flags().StringP("config", "", "", "Path to the config file")
	rootCmd.AddCommand(renderCmd)

	return nil
}
