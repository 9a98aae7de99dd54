// Package strategylist lists the generated strategies of a website.
package strategylist

import (
	"context"
	"fmt"
	"sort"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
)

// ServiceConfig is the configuration for the strategy list service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.StrategyList"})
	return nil
}

// Service lists strategies.
type Service struct {
	api    apiclient.Client
	logger log.Logger
}

// NewService creates a new strategy list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{api: cfg.APIClient, logger: cfg.Logger}, nil
}

// Request represents the strategy list request parameters.
type Request struct {
	WebsiteID string
	// Status filters strategies by execution state when set.
	Status model.StrategyStatus
}

// Run lists strategies ordered by priority.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Strategy, error) {
	if req.WebsiteID == "" {
		return nil, fmt.Errorf("website id is required: %w", model.ErrNotValid)
	}

	strategies, err := s.api.ListStrategies(ctx, req.WebsiteID)
	if err != nil {
		return nil, fmt.Errorf("could not list strategies: %w", err)
	}

	if req.Status != "" {
		filtered := strategies[:0]
		for _, strategy := range strategies {
			if strategy.Status == req.Status {
				filtered = append(filtered, strategy)
			}
		}
		strategies = filtered
	}

	sort.SliceStable(strategies, func(i, j int) bool { return strategies[i].Priority < strategies[j].Priority })

	return strategies, nil
}
