package cli

import (
	"fmt"
	"log"

	"github.com/axellelanca/portfolio/cmd"
	"github.com/axellelanca/portfolio/internal/database"
	"github.com/spf13/cobra"
)

// MigrateCmd represents the 'migrate' command
// This command handles database schema creation and updates
var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Executes database migrations to create or update tables.",
	Long: `This command connects to the configured database (SQLite or PostgreSQL)
and executes GORM automatic migrations for the content, project, click event
and contact submission tables.`,
	Run: func(_ *cobra.Command, _ []string) {
		db, err := database.Open(*cmd.Cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer func() { _ = database.Close(db) }()

		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		fmt.Println("Database migrations executed successfully.")
	},
}

func init() {
	cmd.RootCmd.AddCommand(MigrateCmd)
}
