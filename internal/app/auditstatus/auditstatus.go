// Package auditstatus reports the latest audit of a website: health score,
// filtered issues and the implementation tracking summary.
package auditstatus

import (
	"context"
	"errors"
	"fmt"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/storage"
)

// ServiceConfig is the configuration for the audit status service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.AuditStatus"})
	return nil
}

// Service retrieves the latest audit report of a website.
type Service struct {
	api    apiclient.Client
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new audit status service.
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

// Request represents the audit status request parameters.
type Request struct {
	WebsiteID string
	// Refresh skips the local cache and always asks the API.
	Refresh bool
	Filter  model.IssueFilter
}

// Response is the latest audit with the requested issue subset and the
// implementation tracking aggregation.
type Response struct {
	Report         model.AuditReport
	Issues         []model.AuditIssue
	Implementation model.ImplementationSummary
}

// Run returns the latest audit report, serving from the local cache when
// possible and falling back to the API.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	if req.WebsiteID == "" {
		return nil, fmt.Errorf("website id is required: %w", model.ErrNotValid)
	}

	report, err := s.getReport(ctx, req)
	if err != nil {
		return nil, err
	}

	impl := report.ImplementationSummary()
	if req.Refresh {
		// Fresh reads also ask the backend for its implementation tally, it
		// tracks fixes applied after the report was generated.
		apiImpl, err := s.api.ImplementationStatus(ctx, req.WebsiteID)
		if err != nil {
			s.logger.Warningf("Could not get implementation status: %s", err)
		} else {
			impl = *apiImpl
		}
	}

	return &Response{
		Report:         *report,
		Issues:         report.FilterIssues(req.Filter),
		Implementation: impl,
	}, nil
}

func (s *Service) getReport(ctx context.Context, req Request) (*model.AuditReport, error) {
	if !req.Refresh {
		report, err := s.repo.LatestAuditReport(ctx, req.WebsiteID)
		if err == nil {
			s.logger.Debugf("Serving audit report from local cache: %s", report.ID)
			return report, nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("could not read local cache: %w", err)
		}
	}

	report, err := s.api.LatestAudit(ctx, req.WebsiteID)
	if err != nil {
		return nil, fmt.Errorf("could not get latest audit: %w", err)
	}

	if err := s.repo.SaveAuditReport(ctx, *report); err != nil {
		s.logger.Warningf("Could not cache audit report: %s", err)
	}

	return report, nil
}
