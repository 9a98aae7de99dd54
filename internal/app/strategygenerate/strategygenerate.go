// Package strategygenerate triggers AI strategy generation for a website
// and tracks it until new strategies appear.
package strategygenerate

import (
	"context"
	"fmt"
	"time"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/jobtracker"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
)

const resultKeyStrategies = "strategies"

// ServiceConfig is the configuration for the strategy generation service.
type ServiceConfig struct {
	APIClient apiclient.Client
	Policy    model.PollPolicy
	Logger    log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.APIClient == nil {
		return fmt.Errorf("api client is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.StrategyGenerate"})
	return nil
}

// Service runs strategy generation.
type Service struct {
	api    apiclient.Client
	policy model.PollPolicy
	logger log.Logger
}

// NewService creates a new strategy generation service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		api:    cfg.APIClient,
		policy: cfg.Policy,
		logger: cfg.Logger,
	}, nil
}

// Request represents the strategy generation request parameters.
type Request struct {
	WebsiteID string
}

// Run triggers generation and blocks until the backend publishes strategies
// created after the trigger. Returns the full current strategy list.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Strategy, error) {
	if req.WebsiteID == "" {
		return nil, fmt.Errorf("website id is required: %w", model.ErrNotValid)
	}

	tracker, err := jobtracker.NewTracker(jobtracker.TrackerConfig{
		Policy: s.policy,
		Logger: s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create tracker: %w", err)
	}

	startedAt := time.Now().UTC()

	trigger := func(ctx context.Context) (*model.JobHandle, error) {
		return s.api.GenerateStrategies(ctx, req.WebsiteID)
	}
	fetch := func(ctx context.Context) (model.JobProbe, error) {
		strategies, err := s.api.ListStrategies(ctx, req.WebsiteID)
		if err != nil {
			return model.JobProbe{}, err
		}
		for _, strategy := range strategies {
			if strategy.CreatedAt.After(startedAt) {
				return model.JobProbe{Done: true, Result: map[string]any{resultKeyStrategies: strategies}}, nil
			}
		}
		return model.JobProbe{}, nil
	}

	if err := tracker.Start(ctx, trigger, fetch); err != nil {
		return nil, fmt.Errorf("could not start strategy generation: %w", err)
	}
	defer tracker.Cancel()

	s.logger.Infof("Strategy generation triggered for website %s", req.WebsiteID)

	select {
	case <-tracker.Done():
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	job := tracker.State()
	if job.Status != model.JobStatusSucceeded {
		return nil, fmt.Errorf("strategy generation did not complete after %d polls: %s", job.PollAttempts, job.Error)
	}

	return job.Result[resultKeyStrategies].([]model.Strategy), nil
}
