package api

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/axellelanca/portfolio/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// TrackPath is the click tracking endpoint used by the rendered page.
const TrackPath = "/track_click/"

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		// Admin-authored content (SVG icons, hero markup) is trusted HTML
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"join":     strings.Join,
		"trackURL": trackURL,
		"actionLabel": func(k models.ActionKind) string {
			return k.Label()
		},
	}
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// trackURL builds a tracking link that records action and then redirects to
// target. An empty target yields a beacon URL without redirect.
func trackURL(action models.ActionKind, target string, details any) string {
	q := url.Values{}
	q.Set("action", string(action))
	if target != "" {
		q.Set("redirect_url", target)
	}
	if d := fmt.Sprint(details); details != nil && d != "" {
		q.Set("details", d)
	}
	return TrackPath + "?" + q.Encode()
}
