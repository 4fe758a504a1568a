package api

import (
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/axellelanca/portfolio/internal/errors"
	"github.com/axellelanca/portfolio/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// pageData is the template context of index.html.
type pageData struct {
	*services.Snapshot
	Form        services.ContactForm
	Errors      map[string]string
	ContactSent bool
}

// HealthCheckHandler handles the /health route to verify service status
func HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PortfolioHandler renders the page with the full content snapshot.
// The "contact=sent" query flag shows the contact acknowledgment after a
// successful submission.
func PortfolioHandler(contentService *services.ContentService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderPage(c, contentService, log, http.StatusOK, pageData{
			ContactSent: c.Query("contact") == "sent",
		})
	}
}

// ContactHandler processes the contact form posted to the page. A valid
// submission redirects back to the page (post/redirect/get); an invalid one
// re-renders the page with the inputs and per-field errors.
func ContactHandler(contentService *services.ContentService, contactService *services.ContactService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form services.ContactForm
		if err := c.ShouldBind(&form); err != nil {
			// Unparseable bodies are reported through the field validation below
			log.Debug("Contact form binding failed", zap.Error(err))
		}

		_, err := contactService.Submit(c.Request.Context(), form)
		if err == nil {
			c.Redirect(http.StatusSeeOther, "/?contact=sent#contact")
			return
		}

		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			renderPage(c, contentService, log, http.StatusUnprocessableEntity, pageData{
				Form:   form,
				Errors: verr.Fields,
			})
			return
		}

		log.Error("Failed to store contact submission", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
	}
}

func renderPage(c *gin.Context, contentService *services.ContentService, log *zap.Logger, status int, data pageData) {
	snapshot, err := contentService.Snapshot(c.Request.Context())
	if err != nil {
		log.Error("Failed to load page content", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	data.Snapshot = snapshot
	c.HTML(status, "index.html", data)
}

// TrackClickHandler records a click signal and sends the visitor on.
//
// Recording is best effort: a missing action, an unresolvable project or a
// storage failure never changes the response.
// With redirect_url the response is a 302 to it, otherwise an empty 204.
func TrackClickHandler(clickService *services.ClickService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := services.TrackRequest{
			Action:    c.Query("action"),
			Details:   c.Query("details"),
			IPAddress: clientIP(c),
			UserAgent: c.GetHeader("User-Agent"),
		}

		if _, err := clickService.Track(c.Request.Context(), req); err != nil {
			if !errors.Is(err, apperrors.ErrMissingAction) {
				log.Error("Click recording failed", zap.Error(err))
			}
		}

		if redirectURL := c.Query("redirect_url"); redirectURL != "" {
			c.Redirect(http.StatusFound, redirectURL)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ClickStatsHandler returns click totals by action kind and by project.
func ClickStatsHandler(clickService *services.ClickService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := clickService.Stats(c.Request.Context())
		if err != nil {
			log.Error("Error retrieving click stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// clientIP returns the first X-Forwarded-For entry when the header is present,
// otherwise the direct peer address.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	return c.RemoteIP()
}
