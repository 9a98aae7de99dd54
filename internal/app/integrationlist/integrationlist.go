// Package integrationlist lists the external services connected to the
// account.
package integrationlist

import (
	"context"
	"fmt"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
)

// ServiceConfig is the configuration for the integration list service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.IntegrationList"})
	return nil
}

// Service lists integrations.
type Service struct {
	api    apiclient.Client
	logger log.Logger
}

// NewService creates a new integration list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{api: cfg.APIClient, logger: cfg.Logger}, nil
}

// Run lists the connected integrations.
func (s *Service) Run(ctx context.Context) ([]model.Integration, error) {
	integrations, err := s.api.ListIntegrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list integrations: %w", err)
	}

	return integrations, nil
}
