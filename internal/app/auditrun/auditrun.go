// Package auditrun triggers a site audit on the backend and tracks it to
// completion. The audit endpoint is fire-and-forget, so completion is
// inferred by polling the latest report until one newer than the trigger
// time shows up.
package auditrun

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/jobtracker"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/storage"
)

const resultKeyReport = "report"

// ServiceConfig is the configuration for the audit run service.
type ServiceConfig struct {
	APIClient  apiclient.Client
	Repository storage.Repository
	Policy     model.PollPolicy
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.AuditRun"})
	return nil
}

// Service runs site audits.
type Service struct {
	api    apiclient.Client
	repo   storage.Repository
	policy model.PollPolicy
	logger log.Logger
}

// NewService creates a new audit run service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		api:    cfg.APIClient,
		repo:   cfg.Repository,
		policy: cfg.Policy,
		logger: cfg.Logger,
	}, nil
}

// Request represents the audit run request parameters.
type Request struct {
	WebsiteID string
}

// Run triggers an audit and blocks until the backend publishes the finished
// report, the poll policy gives up, or the context is cancelled. The report
// is cached locally before returning.
func (s *Service) Run(ctx context.Context, req Request) (*model.AuditReport, error) {
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
		return s.api.RunAudit(ctx, req.WebsiteID)
	}
	fetch := func(ctx context.Context) (model.JobProbe, error) {
		report, err := s.api.LatestAudit(ctx, req.WebsiteID)
		if errors.Is(err, model.ErrNotFound) {
			// Never audited before, keep waiting for the first report.
			return model.JobProbe{}, nil
		}
		if err != nil {
			return model.JobProbe{}, err
		}
		if !report.CompletedAt.After(startedAt) {
			// Still the pre-trigger report.
			return model.JobProbe{}, nil
		}
		return model.JobProbe{Done: true, Result: map[string]any{resultKeyReport: report}}, nil
	}

	if err := tracker.Start(ctx, trigger, fetch); err != nil {
		return nil, fmt.Errorf("could not start audit: %w", err)
	}
	defer tracker.Cancel()

	s.logger.Infof("Audit triggered for website %s, waiting for report", req.WebsiteID)

	select {
	case <-tracker.Done():
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	job := tracker.State()
	if job.Status != model.JobStatusSucceeded {
		return nil, fmt.Errorf("audit did not complete after %d polls: %s", job.PollAttempts, job.Error)
	}

	report := job.Result[resultKeyReport].(*model.AuditReport)

	// Best-effort cache, the report is already in hand.
	if err := s.repo.SaveAuditReport(ctx, *report); err != nil {
		s.logger.Warningf("Could not cache audit report: %s", err)
	}

	s.logger.Infof("Audit %s completed with health score %.1f", report.ID, report.HealthScore)
	return report, nil
}
