package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.Repository.
type Repository struct {
	websites map[string]model.Website
	reports  map[string][]model.AuditReport
	mu       sync.RWMutex
	logger   log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		websites: make(map[string]model.Website),
		reports:  make(map[string][]model.AuditReport),
		logger:   cfg.Logger,
	}, nil
}

// SaveWebsite stores a website, replacing any previous entry with the same ID.
func (r *Repository) SaveWebsite(ctx context.Context, website model.Website) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.websites[website.ID] = website
	r.logger.Debugf("Saved website in repository: %s", website.ID)

	return nil
}

// GetWebsite retrieves a website by ID.
func (r *Repository) GetWebsite(ctx context.Context, id string) (*model.Website, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	website, ok := r.websites[id]
	if !ok {
		return nil, fmt.Errorf("website %s: %w", id, model.ErrNotFound)
	}

	// Return a copy
	websiteCopy := website
	return &websiteCopy, nil
}

// GetWebsiteByDomain retrieves a website by domain.
func (r *Repository) GetWebsiteByDomain(ctx context.Context, domain string) (*model.Website, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, website := range r.websites {
		if website.Domain == domain {
			// Return a copy
			websiteCopy := website
			return &websiteCopy, nil
		}
	}

	return nil, fmt.Errorf("website with domain %s: %w", domain, model.ErrNotFound)
}

// ListWebsites returns all stored websites.
func (r *Repository) ListWebsites(ctx context.Context) ([]model.Website, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	websites := make([]model.Website, 0, len(r.websites))
	for _, website := range r.websites {
		websites = append(websites, website)
	}
	sort.Slice(websites, func(i, j int) bool { return websites[i].CreatedAt.After(websites[j].CreatedAt) })

	return websites, nil
}

// DeleteWebsite deletes a website and its cached audit reports.
func (r *Repository) DeleteWebsite(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.websites[id]; !ok {
		return fmt.Errorf("website %s: %w", id, model.ErrNotFound)
	}

	delete(r.websites, id)
	delete(r.reports, id)
	r.logger.Debugf("Deleted website from repository: %s", id)

	return nil
}

// SaveAuditReport stores an audit report, replacing any previous report with
// the same ID.
func (r *Repository) SaveAuditReport(ctx context.Context, report model.AuditReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reports := r.reports[report.WebsiteID]
	for i, existing := range reports {
		if existing.ID == report.ID {
			reports[i] = report
			r.logger.Debugf("Replaced audit report in repository: %s", report.ID)
			return nil
		}
	}

	r.reports[report.WebsiteID] = append(reports, report)
	r.logger.Debugf("Saved audit report in repository: %s", report.ID)

	return nil
}

// LatestAuditReport returns the most recent audit report of a website.
func (r *Repository) LatestAuditReport(ctx context.Context, websiteID string) (*model.AuditReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := r.reports[websiteID]
	if len(reports) == 0 {
		return nil, fmt.Errorf("audit reports for website %s: %w", websiteID, model.ErrNotFound)
	}

	latest := reports[0]
	for _, report := range reports[1:] {
		if report.CompletedAt.After(latest.CompletedAt) {
			latest = report
		}
	}

	return &latest, nil
}

// ListAuditReports returns audit summaries of a website, newest first.
func (r *Repository) ListAuditReports(ctx context.Context, websiteID string, limit int) ([]model.AuditSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := r.reports[websiteID]
	summaries := make([]model.AuditSummary, 0, len(reports))
	for _, report := range reports {
		summaries = append(summaries, report.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].CompletedAt.After(summaries[j].CompletedAt) })

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}

	return summaries, nil
}
