// Package keywordlist lists the researched keywords of a website.
package keywordlist

import (
	"context"
	"fmt"
	"sort"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
)

// ServiceConfig is the configuration for the keyword list service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.KeywordList"})
	return nil
}

// Service lists keywords.
type Service struct {
	api    apiclient.Client
	logger log.Logger
}

// NewService creates a new keyword list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{api: cfg.APIClient, logger: cfg.Logger}, nil
}

// Request represents the keyword list request parameters.
type Request struct {
	WebsiteID string
	// Intent filters keywords by search intent when set.
	Intent model.KeywordIntent
}

// Run lists the keywords of a website, highest search volume first.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Keyword, error) {
	if req.WebsiteID == "" {
		return nil, fmt.Errorf("website id is required: %w", model.ErrNotValid)
	}

	keywords, err := s.api.ListKeywords(ctx, req.WebsiteID)
	if err != nil {
		return nil, fmt.Errorf("could not list keywords: %w", err)
	}

	if req.Intent != "" {
		filtered := keywords[:0]
		for _, k := range keywords {
			if k.Intent == req.Intent {
				filtered = append(filtered, k)
			}
		}
		keywords = filtered
	}

	sort.SliceStable(keywords, func(i, j int) bool { return keywords[i].SearchVolume > keywords[j].SearchVolume })

	return keywords, nil
}
