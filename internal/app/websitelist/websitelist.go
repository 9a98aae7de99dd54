// Package websitelist lists the registered websites, keeping the local
// mirror in sync and serving from it when the API is unreachable.
package websitelist

import (
	"context"
	"fmt"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/storage"
)

// ServiceConfig is the configuration for the website list service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.WebsiteList"})
	return nil
}

// Service lists websites.
type Service struct {
	api    apiclient.Client
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new website list service.
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

// Run lists all registered websites.
func (s *Service) Run(ctx context.Context) ([]model.Website, error) {
	websites, err := s.api.ListWebsites(ctx)
	if err != nil {
		s.logger.Warningf("Could not list websites from API, trying local cache: %s", err)

		cached, cacheErr := s.repo.ListWebsites(ctx)
		if cacheErr != nil || len(cached) == 0 {
			return nil, fmt.Errorf("could not list websites: %w", err)
		}

		s.logger.Infof("Serving %d websites from local cache", len(cached))
		return cached, nil
	}

	for _, website := range websites {
		if err := s.repo.SaveWebsite(ctx, website); err != nil {
			s.logger.Warningf("Could not cache website %s: %s", website.Domain, err)
		}
	}

	return websites, nil
}
