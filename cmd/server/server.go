package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/axellelanca/portfolio/cmd"
	"github.com/axellelanca/portfolio/internal/api"
	"github.com/axellelanca/portfolio/internal/database"
	"github.com/axellelanca/portfolio/internal/monitor"
	"github.com/axellelanca/portfolio/internal/repository"
	"github.com/axellelanca/portfolio/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// RunServerCmd represents the 'run-server' command.
// It is the entry point for serving the portfolio site.
var RunServerCmd = &cobra.Command{
	Use:   "run-server",
	Short: "Starts the portfolio web server and background processes.",
	Long: `This command initializes the database, configures the routes,
starts the project link monitor when enabled and then runs the HTTP server
until SIGINT or SIGTERM is received.`,
	Run: func(_ *cobra.Command, _ []string) {
		cfg := cmd.Cfg

		logger, err := cmd.NewLogger(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer func() { _ = logger.Sync() }()

		db, err := cmd.OpenDatabase(cfg)
		if err != nil {
			logger.Fatal("Failed to open database", zap.Error(err))
		}
		defer func() { _ = database.Close(db) }()

		// Repositories
		clickRepo := repository.NewClickRepository(db)
		projectRepo := repository.NewProjectRepository(db)
		contentRepo := repository.NewContentRepository(db)
		contactRepo := repository.NewContactRepository(db)
		logger.Info("Repositories initialized", zap.String("driver", cfg.Database.Driver))

		svc := api.Services{
			Content: services.NewContentService(contentRepo, projectRepo),
			Contact: services.NewContactService(contactRepo, logger),
			Clicks:  services.NewClickService(clickRepo, projectRepo, logger),
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if cfg.Monitor.Enabled {
			interval := time.Duration(cfg.Monitor.IntervalMinutes) * time.Minute
			timeout := time.Duration(cfg.Monitor.TimeoutSeconds) * time.Second
			go monitor.NewLinkMonitor(projectRepo, interval, timeout, logger).Start(ctx)
		}

		gin.SetMode(cfg.Server.Mode)
		router, err := api.NewRouter(svc, logger, cfg.Server.TrustedProxies)
		if err != nil {
			logger.Fatal("Failed to configure router", zap.Error(err))
		}

		serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
		srv := &http.Server{
			Addr:              serverAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			logger.Info("Starting server", zap.String("addr", serverAddr), zap.String("base_url", cfg.Server.BaseURL))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Server failed", zap.Error(err))
				stop()
			}
		}()

		<-ctx.Done()
		logger.Info("Shutdown signal received, stopping server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", zap.Error(err))
			return
		}
		logger.Info("Server stopped")
	},
}

func init() {
	cmd.RootCmd.AddCommand(RunServerCmd)
}
