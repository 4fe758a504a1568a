// Package services contains the business logic layer of the portfolio site.
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	apperrors "github.com/axellelanca/portfolio/internal/errors"
	"github.com/axellelanca/portfolio/internal/models"
	"github.com/axellelanca/portfolio/internal/repository"
	"go.uber.org/zap"
)

// TrackRequest is the input of a click tracking call: the query parameters
// plus the caller metadata taken from the HTTP request.
type TrackRequest struct {
	Action    string
	Details   string
	IPAddress string
	UserAgent string
}

// ClickStats is the read-side aggregation of recorded clicks.
type ClickStats struct {
	Total     int64                      `json:"total"`
	ByAction  []models.ActionCount       `json:"by_action"`
	ByProject []models.ProjectClickCount `json:"by_project"`
}

// ClickService records click events and aggregates them for reporting.
type ClickService struct {
	clickRepo   repository.ClickRepository
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewClickService creates a ClickService.
func NewClickService(clickRepo repository.ClickRepository, projectRepo repository.ProjectRepository, logger *zap.Logger) *ClickService {
	return &ClickService{
		clickRepo:   clickRepo,
		projectRepo: projectRepo,
		logger:      logger.With(zap.String("component", "click_service")),
		now:         time.Now,
	}
}

// Track records one click event for req.
//
// It returns ErrMissingAction without writing anything when the action kind
// is empty. Kinds outside the known set are stored verbatim. Unresolvable project
// identifiers never fail the call: the event is stored without a project and
// the raw identifier is kept in Details. A storage failure is returned as
// ErrClickRecordingFailed.
func (s *ClickService) Track(ctx context.Context, req TrackRequest) (*models.ClickEvent, error) {
	action, err := models.ParseAction(req.Action, req.Details)
	if err != nil {
		return nil, err
	}

	event := &models.ClickEvent{
		ActionType: action.Kind(),
		Timestamp:  s.now(),
		IPAddress:  optional(req.IPAddress),
		UserAgent:  optional(req.UserAgent),
	}

	switch a := action.(type) {
	case models.ProjectAction:
		event.ProjectID, event.Details = s.resolveProject(ctx, a)
	case models.PlainAction:
		event.Details = optional(a.Details)
	case models.OtherAction:
		s.logger.Warn("Recording click with unrecognized action", zap.String("action", string(a.Type)))
		event.Details = optional(a.Details)
	}

	s.logger.Info("Tracking click event",
		zap.String("action", string(event.ActionType)),
		zap.String("details", req.Details),
		zap.String("ip", req.IPAddress),
	)

	if err := s.clickRepo.CreateClick(ctx, event); err != nil {
		return nil, apperrors.ErrClickRecordingFailed{Action: string(event.ActionType), Err: err}
	}
	return event, nil
}

// resolveProject looks up the project targeted by a project click. On success
// the details become "Project ID: <target>"; otherwise no project is attached
// and the raw target is kept.
func (s *ClickService) resolveProject(ctx context.Context, a models.ProjectAction) (*uint, *string) {
	if a.Target == "" {
		return nil, nil
	}

	id, err := parseProjectID(a.Target)
	if err != nil {
		s.logger.Warn("Could not parse project ID for click tracking", zap.String("details", a.Target))
		return nil, optional(a.Target)
	}

	project, err := s.projectRepo.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			s.logger.Warn("Could not find project for click tracking", zap.String("details", a.Target))
		} else {
			s.logger.Error("Project lookup failed during click tracking", zap.String("details", a.Target), zap.Error(err))
		}
		return nil, optional(a.Target)
	}

	projectID := project.ID
	return &projectID, optional(fmt.Sprintf("Project ID: %s", a.Target))
}

// Stats returns click totals by action kind and by project. Every known kind
// is present; recorded kinds outside the known set follow them.
func (s *ClickService) Stats(ctx context.Context) (*ClickStats, error) {
	counts, err := s.clickRepo.CountByAction(ctx)
	if err != nil {
		return nil, err
	}
	byProject, err := s.clickRepo.CountByProject(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[models.ActionKind]int64, len(counts))
	stats := &ClickStats{ByProject: byProject}
	for _, c := range counts {
		totals[c.ActionType] = c.Total
		stats.Total += c.Total
	}
	for _, kind := range models.ActionKinds() {
		stats.ByAction = append(stats.ByAction, models.ActionCount{ActionType: kind, Total: totals[kind]})
	}
	for _, c := range counts {
		if !c.ActionType.Valid() {
			stats.ByAction = append(stats.ByAction, c)
		}
	}
	if stats.ByProject == nil {
		stats.ByProject = []models.ProjectClickCount{}
	}
	return stats, nil
}

// RecentClicks returns the latest recorded events, newest first.
func (s *ClickService) RecentClicks(ctx context.Context, limit int) ([]models.ClickEvent, error) {
	return s.clickRepo.ListRecent(ctx, limit)
}

// parseProjectID accepts only positive base-10 integers.
func parseProjectID(raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, apperrors.ErrInvalidProjectID
	}
	return uint(n), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
