// Package competitoranalyze triggers a competitor analysis job and tracks
// it until the backend publishes a fresh gap report.
package competitoranalyze

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/jobtracker"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
)

const resultKeyReport = "report"

// ServiceConfig is the configuration for the competitor analysis service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.CompetitorAnalyze"})
	return nil
}

// Service runs competitor analyses.
type Service struct {
	api    apiclient.Client
	policy model.PollPolicy
	logger log.Logger
}

// NewService creates a new competitor analysis service.
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

// Request represents the competitor analysis request parameters.
type Request struct {
	WebsiteID string
	// Domains are the competitor domains to analyze. Empty means the
	// competitors registered with the website.
	Domains []string
}

// Run triggers the analysis and blocks until the report is ready.
func (s *Service) Run(ctx context.Context, req Request) (*model.CompetitorReport, error) {
	if req.WebsiteID == "" {
		return nil, fmt.Errorf("website id is required: %w", model.ErrNotValid)
	}
	for _, domain := range req.Domains {
		if domain == "" {
			return nil, fmt.Errorf("competitor domain cannot be empty: %w", model.ErrNotValid)
		}
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
		return s.api.AnalyzeCompetitors(ctx, req.WebsiteID, req.Domains)
	}
	fetch := func(ctx context.Context) (model.JobProbe, error) {
		report, err := s.api.CompetitorReport(ctx, req.WebsiteID)
		if errors.Is(err, model.ErrNotFound) {
			return model.JobProbe{}, nil
		}
		if err != nil {
			return model.JobProbe{}, err
		}
		if !report.AnalyzedAt.After(startedAt) {
			return model.JobProbe{}, nil
		}
		return model.JobProbe{Done: true, Result: map[string]any{resultKeyReport: report}}, nil
	}

	if err := tracker.Start(ctx, trigger, fetch); err != nil {
		return nil, fmt.Errorf("could not start competitor analysis: %w", err)
	}
	defer tracker.Cancel()

	s.logger.Infof("Competitor analysis triggered for website %s", req.WebsiteID)

	select {
	case <-tracker.Done():
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	job := tracker.State()
	if job.Status != model.JobStatusSucceeded {
		return nil, fmt.Errorf("competitor analysis did not complete after %d polls: %s", job.PollAttempts, job.Error)
	}

	return job.Result[resultKeyReport].(*model.CompetitorReport), nil
}
