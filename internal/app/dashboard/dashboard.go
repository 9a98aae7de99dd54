// Package dashboard fetches the aggregated overview of a website.
package dashboard

import (
	"context"
	"fmt"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
)

// ServiceConfig is the configuration for the dashboard service.
type ServiceConfig struct {
	APIClient apiclient.Client
	Logger    log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.APIClient == nil {
		return fmt.Errorf("api client is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Dashboard"})
	return nil
}

// Service fetches website dashboards.
type Service struct {
	api    apiclient.Client
	logger log.Logger
}

// NewService creates a new dashboard service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{api: cfg.APIClient, logger: cfg.Logger}, nil
}

// Request represents the dashboard request parameters.
type Request struct {
	WebsiteID string
}

// Run fetches the dashboard of a website.
func (s *Service) Run(ctx context.Context, req Request) (*model.Dashboard, error) {
	if req.WebsiteID == "" {
		return nil, fmt.Errorf("website id is required: %w", model.ErrNotValid)
	}

	dashboard, err := s.api.Dashboard(ctx, req.WebsiteID)
	if err != nil {
		return nil, fmt.Errorf("could not get dashboard: %w", err)
	}

	return dashboard, nil
}
