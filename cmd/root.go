package cmd

import (
	"fmt"
	"os"

	"github.com/axellelanca/portfolio/internal/config"
	"github.com/axellelanca/portfolio/internal/database"
	"github.com/axellelanca/portfolio/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Cfg is the global variable that will contain the loaded configuration
// It will be accessible to all Cobra commands throughout the application
var Cfg *config.Config

// RootCmd is the base command for the CLI application
// All other commands (run-server, migrate, stats, ...) are added as subcommands
var RootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "A personal portfolio site",
	Long: `A personal portfolio site that renders its content from the database,
records visitor clicks on outbound links and stores contact form messages.`,
}

// Execute is the main entry point for the Cobra application
// It is called from 'main.go' and handles command execution and error handling
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Load configuration before any command executes.
	// Subcommands register themselves via their own init() functions.
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	var err error
	Cfg, err = config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
}

// NewLogger builds the application logger from the log section of cfg.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
}

// OpenDatabase connects to the configured database and migrates the schema.
// The caller closes it with database.Close.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(*cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}
