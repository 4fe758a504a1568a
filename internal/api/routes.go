package api

import (
	"fmt"

	"github.com/axellelanca/portfolio/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services groups the business services the routes depend on.
type Services struct {
	Content *services.ContentService
	Contact *services.ContactService
	Clicks  *services.ClickService
}

// NewRouter builds the gin engine with middleware, templates and routes.
func NewRouter(svc Services, log *zap.Logger, trustedProxies []string) (*gin.Engine, error) {
	router := gin.New()
	router.Use(LoggerMiddleware(log))
	router.Use(gin.Recovery())

	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	SetupRoutes(router, svc, log)
	return router, nil
}

// SetupRoutes configures all routes and injects the services.
func SetupRoutes(router *gin.Engine, svc Services, log *zap.Logger) {
	router.GET("/health", HealthCheckHandler)

	router.GET("/", PortfolioHandler(svc.Content, log))
	router.POST("/", ContactHandler(svc.Content, svc.Contact, log.With(zap.String("component", "contact"))))

	// sendBeacon issues POST requests, so the tracker accepts both methods
	track := TrackClickHandler(svc.Clicks, log.With(zap.String("component", "click_tracker")))
	router.GET(TrackPath, track)
	router.POST(TrackPath, track)
	router.GET("/track_click", track)
	router.POST("/track_click", track)

	api := router.Group("/api/v1")
	{
		api.GET("/clicks/stats", ClickStatsHandler(svc.Clicks, log))
	}
}
