// Package rankinglist lists the tracked SERP positions of a website.
package rankinglist

import (
	"context"
	"fmt"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
)

// ServiceConfig is the configuration for the ranking list service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.RankingList"})
	return nil
}

// Service lists rankings.
type Service struct {
	api    apiclient.Client
	logger log.Logger
}

// NewService creates a new ranking list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{api: cfg.APIClient, logger: cfg.Logger}, nil
}

// Request represents the ranking list request parameters.
type Request struct {
	WebsiteID string
	// Top keeps only rankings at or above the given position when positive.
	Top int
}

// Run lists the rankings of a website.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Ranking, error) {
	if req.WebsiteID == "" {
		return nil, fmt.Errorf("website id is required: %w", model.ErrNotValid)
	}

	rankings, err := s.api.ListRankings(ctx, req.WebsiteID)
	if err != nil {
		return nil, fmt.Errorf("could not list rankings: %w", err)
	}

	if req.Top > 0 {
		filtered := rankings[:0]
		for _, r := range rankings {
			if r.Position > 0 && r.Position <= req.Top {
				filtered = append(filtered, r)
			}
		}
		rankings = filtered
	}

	return rankings, nil
}
