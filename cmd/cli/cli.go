// Package cli holds the maintenance commands run against the site database.
package cli

import (
	"log"

	"github.com/axellelanca/portfolio/cmd"
	"github.com/axellelanca/portfolio/internal/database"
	"github.com/axellelanca/portfolio/internal/repository"
	"github.com/axellelanca/portfolio/internal/services"
	"go.uber.org/zap"
)

// store bundles the services used by the maintenance commands.
type store struct {
	clicks   *services.ClickService
	contacts *services.ContactService
	content  *services.ContentService
	projects *services.ProjectService
	close    func()
}

// openStore connects to the configured database or exits.
func openStore() *store {
	db, err := cmd.OpenDatabase(cmd.Cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Command output goes to stdout; service logs are not needed here
	logger := zap.NewNop()
	projectRepo := repository.NewProjectRepository(db)
	return &store{
		clicks:   services.NewClickService(repository.NewClickRepository(db), projectRepo, logger),
		contacts: services.NewContactService(repository.NewContactRepository(db), logger),
		content:  services.NewContentService(repository.NewContentRepository(db), projectRepo),
		projects: services.NewProjectService(projectRepo, logger),
		close:    func() { _ = database.Close(db) },
	}
}
