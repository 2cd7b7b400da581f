// Package main is the entry point for the arxiv-daily-cli application.
// It initializes the root command and registers the sub-commands (crawl,
// render, papers, schedule) for the CLI, then executes the command-line
// interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "arxiv_daily_service/cmd/arxiv-daily-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "arxiv-daily-cli",
		Short: "Daily arXiv paper crawler CLI tool",
		Long: `arxiv-daily-cli is a command-line tool for crawling arXiv papers.
It fetches recent submissions for configured topic keywords, resolves official
code repositories, stores the results and generates the arxiv-daily.json
archive and the index.html report page.

The config file is looked up via the --config flag, the CONFIG_PATH
environment variable or configs/app.yaml as a fallback.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register crawl commands
	if err := commands.InitCrawlCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize crawl commands: %w", err)
	}

	// Register render commands
	if err := commands.InitRenderCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize render commands: %w", err)
	}

	// Register paper commands
	if err := commands.InitPapersCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize papers commands: %w", err)
	}

	// Register scheduler commands
	if err := commands.InitScheduleCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize schedule commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
