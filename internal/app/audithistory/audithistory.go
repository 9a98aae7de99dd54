// Package audithistory lists past audits of a website so score and issue
// trends are visible over time.
package audithistory

import (
	"context"
	"fmt"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/storage"
)

// ServiceConfig is the configuration for the audit history service.
type ServiceConfig struct {
	APIClient  apiclient.Client
	Repository storage.Repository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.APIClient == nil {
		return fmt.Errorf("api client is required")
	}
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.AuditHistory"})
	return nil
}

// Service lists audit history.
type Service struct {
	api    apiclient.Client
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new audit history service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		api:    cfg.APIClient,
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the audit history request parameters.
type Request struct {
	WebsiteID string
	Limit     int
}

// Run returns past audit summaries, preferring the backend and falling back
// to locally cached reports when the API is unreachable.
func (s *Service) Run(ctx context.Context, req Request) ([]model.AuditSummary, error) {
	if req.WebsiteID == "" {
		return nil, fmt.Errorf("website id is required: %w", model.ErrNotValid)
	}

	summaries, err := s.api.AuditHistory(ctx, req.WebsiteID, req.Limit)
	if err == nil {
		return summaries, nil
	}
	s.logger.Warningf("Could not get audit history from API, trying local cache: %s", err)

	cached, cacheErr := s.repo.ListAuditReports(ctx, req.WebsiteID, req.Limit)
	if cacheErr != nil {
		return nil, fmt.Errorf("could not get audit history: %w", err)
	}
	if len(cached) == 0 {
		return nil, fmt.Errorf("could not get audit history and nothing cached: %w", err)
	}

	s.logger.Infof("Serving %d audit summaries from local cache", len(cached))
	return cached, nil
}
