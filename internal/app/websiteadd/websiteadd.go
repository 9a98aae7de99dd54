// Package websiteadd registers a website with the platform and mirrors it
// into the local cache.
package websiteadd

import (
	"context"
	"fmt"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/storage"
)

// ServiceConfig is the configuration for the website add service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.WebsiteAdd"})
	return nil
}

// Service registers websites.
type Service struct {
	api    apiclient.Client
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new website add service.
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

// Request represents the website registration parameters.
type Request struct {
	Website model.NewWebsite
}

// Run registers the website with the backend and caches it locally.
func (s *Service) Run(ctx context.Context, req Request) (*model.Website, error) {
	if err := req.Website.Validate(); err != nil {
		return nil, fmt.Errorf("invalid website: %w", err)
	}

	website, err := s.api.RegisterWebsite(ctx, req.Website)
	if err != nil {
		return nil, fmt.Errorf("could not register website: %w", err)
	}

	if err := s.repo.SaveWebsite(ctx, *website); err != nil {
		s.logger.Warningf("Could not cache website: %s", err)
	}

	s.logger.Infof("Registered website: %s (%s)", website.Domain, website.ID)
	return website, nil
}
