// Package keywordresearch queues bulk keyword research on the backend and
// tracks it until every requested keyword has research data. The bulk
// endpoint is fire-and-forget, completion is inferred from the keyword list
// converging.
package keywordresearch

import (
	"context"
	"fmt"
	"strings"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/jobtracker"
	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
)

const resultKeyKeywords = "keywords"

// ServiceConfig is the configuration for the keyword research service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.KeywordResearch"})
	return nil
}

// Service runs bulk keyword research.
type Service struct {
	api    apiclient.Client
	policy model.PollPolicy
	logger log.Logger
}

// NewService creates a new keyword research service.
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

// Request represents the keyword research request parameters.
type Request struct {
	WebsiteID string
	Keywords  []string
}

// Run queues the keywords and blocks until all of them show up researched.
// Returns the researched keywords matching the request.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Keyword, error) {
	if req.WebsiteID == "" {
		return nil, fmt.Errorf("website id is required: %w", model.ErrNotValid)
	}

	wanted := normalize(req.Keywords)
	if len(wanted) == 0 {
		return nil, fmt.Errorf("at least one keyword is required: %w", model.ErrNotValid)
	}

	tracker, err := jobtracker.NewTracker(jobtracker.TrackerConfig{
		Policy: s.policy,
		Logger: s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create tracker: %w", err)
	}

	trigger := func(ctx context.Context) (*model.JobHandle, error) {
		return s.api.ResearchKeywords(ctx, req.WebsiteID, wanted)
	}
	fetch := func(ctx context.Context) (model.JobProbe, error) {
		keywords, err := s.api.ListKeywords(ctx, req.WebsiteID)
		if err != nil {
			return model.JobProbe{}, err
		}

		matched := matchKeywords(keywords, wanted)
		if len(matched) < len(wanted) {
			s.logger.Debugf("%d/%d keywords researched", len(matched), len(wanted))
			return model.JobProbe{}, nil
		}
		return model.JobProbe{Done: true, Result: map[string]any{resultKeyKeywords: matched}}, nil
	}

	if err := tracker.Start(ctx, trigger, fetch); err != nil {
		return nil, fmt.Errorf("could not start keyword research: %w", err)
	}
	defer tracker.Cancel()

	s.logger.Infof("Queued %d keywords for research on website %s", len(wanted), req.WebsiteID)

	select {
	case <-tracker.Done():
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	job := tracker.State()
	if job.Status != model.JobStatusSucceeded {
		return nil, fmt.Errorf("keyword research did not complete after %d polls: %s", job.PollAttempts, job.Error)
	}

	return job.Result[resultKeyKeywords].([]model.Keyword), nil
}

// normalize trims, lowercases and dedupes the requested keywords, keeping
// the original order.
func normalize(keywords []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// matchKeywords returns the researched keywords whose text matches one of
// the wanted keywords. A keyword without search volume data is still being
// researched and does not count.
func matchKeywords(keywords []model.Keyword, wanted []string) []model.Keyword {
	byText := make(map[string]model.Keyword, len(keywords))
	for _, k := range keywords {
		if k.SearchVolume == 0 && k.Difficulty == 0 {
			continue
		}
		byText[strings.ToLower(k.Keyword)] = k
	}

	matched := make([]model.Keyword, 0, len(wanted))
	for _, w := range wanted {
		if k, ok := byText[w]; ok {
			matched = append(matched, k)
		}
	}
	return matched
}

