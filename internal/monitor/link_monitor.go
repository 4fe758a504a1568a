// Package monitor periodically checks that the external project links shown
// on the page are still reachable.
package monitor

import (
	"context"
	"net/http"
	"sync"
	"time"

	apperrors "github.com/axellelanca/portfolio/internal/errors"
	"github.com/axellelanca/portfolio/internal/repository"
	"go.uber.org/zap"
)

// LinkMonitor HEAD-checks project GitHub and live demo links and logs every
// change of reachability.
type LinkMonitor struct {
	projectRepo repository.ProjectRepository
	interval    time.Duration
	timeout     time.Duration
	knownStates map[string]bool // link URL -> reachable
	mu          sync.Mutex
	httpClient  *http.Client
	logger      *zap.Logger
}

// LinkState is the result of checking one link.
type LinkState struct {
	ProjectID uint
	URL       string
	Reachable bool
	Changed   bool
}

// NewLinkMonitor creates a LinkMonitor checking every interval, with timeout
// applied to each request.
func NewLinkMonitor(projectRepo repository.ProjectRepository, interval, timeout time.Duration, logger *zap.Logger) *LinkMonitor {
	return &LinkMonitor{
		projectRepo: projectRepo,
		interval:    interval,
		timeout:     timeout,
		knownStates: make(map[string]bool),
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger.With(zap.String("component", "link_monitor")),
	}
}

// Start runs a check immediately and then every interval until ctx is done.
func (m *LinkMonitor) Start(ctx context.Context) {
	m.logger.Info("Starting link monitor", zap.Duration("interval", m.interval))
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.CheckLinks(ctx)
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Link monitor stopped")
			return
		case <-ticker.C:
			m.CheckLinks(ctx)
		}
	}
}

// CheckLinks checks every project link once and returns the observed states.
func (m *LinkMonitor) CheckLinks(ctx context.Context) []LinkState {
	projects, err := m.projectRepo.ListProjects(ctx)
	if err != nil {
		m.logger.Error("Failed to list projects for link monitoring", zap.Error(err))
		return nil
	}

	var states []LinkState
	for _, p := range projects {
		for _, link := range []string{p.GitHubLink, p.LiveDemoLink} {
			if link == "" {
				continue
			}
			if ctx.Err() != nil {
				return states
			}
			states = append(states, m.record(p.ID, link, m.isReachable(ctx, link)))
		}
	}
	return states
}

func (m *LinkMonitor) record(projectID uint, link string, reachable bool) LinkState {
	m.mu.Lock()
	previous, seen := m.knownStates[link]
	m.knownStates[link] = reachable
	m.mu.Unlock()

	state := LinkState{ProjectID: projectID, URL: link, Reachable: reachable, Changed: seen && previous != reachable}
	switch {
	case !seen:
		m.logger.Info("Initial link state",
			zap.Uint("project_id", projectID), zap.String("url", link), zap.String("state", formatState(reachable)))
	case state.Changed:
		m.logger.Warn("Link state changed",
			zap.Uint("project_id", projectID),
			zap.String("url", link),
			zap.String("from", formatState(previous)),
			zap.String("to", formatState(reachable)),
		)
	}
	return state
}

// isReachable treats 2xx and 3xx answers to a HEAD request as reachable.
func (m *LinkMonitor) isReachable(ctx context.Context, link string) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, link, nil)
	if err != nil {
		m.logger.Debug("Invalid link", zap.Error(apperrors.ErrLinkCheckFailed{URL: link, Reason: err.Error()}))
		return false
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.logger.Debug("Link unreachable", zap.Error(apperrors.ErrLinkCheckFailed{URL: link, Reason: err.Error()}))
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 400
}

func formatState(reachable bool) string {
	if reachable {
		return "REACHABLE"
	}
	return "UNREACHABLE"
}
