package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"arxiv_daily_service/internal/app"
	"arxiv_daily_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ScheduleCommandHandler encapsulates logic for running the crawl scheduler via CLI.
type ScheduleCommandHandler struct {
	logger logger.Logger
}

// NewScheduleCommandHandler initializes and returns a ScheduleCommandHandler
// instance with a configured logger.
func NewScheduleCommandHandler() (*ScheduleCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &ScheduleCommandHandler{
		logger: loggerInstance,
	}, nil
}

// ScheduleCmd runs crawls on the configured cron spec until interrupted
func (commandHandler *ScheduleCommandHandler) ScheduleCmd(cmd *cobra.Command, _ []string) {
	appConfig, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if cronSpec, err := cmd.Flags().GetString("cron"); err == nil && cronSpec != "" {
		appConfig.Scheduler.CronSpec = cronSpec
	}

	deps, err := buildDependencies(appConfig, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	scheduleService, err := app.NewScheduleService(deps.crawlService, &appConfig.Scheduler, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := scheduleService.Start(cmd.Context()); err != nil {
		commandHandler.logger.Error("Starting scheduler failed: ", err)
		return
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	commandHandler.logger.Info("Received signal ", sig, ", stopping scheduler")
	scheduleService.Stop()
}

// InitScheduleCommands registers scheduler-related commands
func InitScheduleCommands(rootCmd *cobra.Command) error {
	handler, err := NewScheduleCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create schedule command handler %w", err)
	}

	var scheduleCmd = &cobra.Command{
		Use:   "schedule",
		Short: "Run crawls periodically on a cron spec",
		Run:   handler.ScheduleCmd,
	}
	scheduleCmd.Flags().StringP("cron", "", "", "Cron spec override, e.g. '0 22 * * *'")
	scheduleCmd.Flags().StringP("config", "", "", "Path to the config file")
	rootCmd.AddCommand(scheduleCmd)

	return nil
}
