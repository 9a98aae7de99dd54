// Package calendarlist lists the planned content of a website.
package calendarlist

import (
	"context"
	"fmt"
	"sort"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
)

// ServiceConfig is the configuration for the calendar list service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.CalendarList"})
	return nil
}

// Service lists content calendars.
type Service struct {
	api    apiclient.Client
	logger log.Logger
}

// NewService creates a new calendar list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{api: cfg.APIClient, logger: cfg.Logger}, nil
}

// Request represents the calendar list request parameters.
type Request struct {
	WebsiteID string
}

// Run lists planned content sorted by publish date.
func (s *Service) Run(ctx context.Context, req Request) ([]model.ContentPlanItem, error) {
	if req.WebsiteID == "" {
		return nil, fmt.Errorf("website id is required: %w", model.ErrNotValid)
	}

	items, err := s.api.ContentCalendar(ctx, req.WebsiteID)
	if err != nil {
		return nil, fmt.Errorf("could not get content calendar: %w", err)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].PublishDate.Before(items[j].PublishDate) })

	return items, nil
}
