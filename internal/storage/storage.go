package storage

import (
	"context"

	"github.com/aragroup1/seoctl/internal/model"
)

// Repository is the interface for the local cache of websites and audit
// reports. It lets read commands answer from disk when the API is slow or
// unreachable, and keeps audit history available offline.
type Repository interface {
	SaveWebsite(ctx context.Context, website model.Website) error
	GetWebsite(ctx context.Context, id string) (*model.Website, error)
	GetWebsiteByDomain(ctx context.Context, domain string) (*model.Website, error)
	ListWebsites(ctx context.Context) ([]model.Website, error)
	DeleteWebsite(ctx context.Context, id string) error

	SaveAuditReport(ctx context.Context, report model.AuditReport) error
	LatestAuditReport(ctx context.Context, websiteID string) (*model.AuditReport, error)
	ListAuditReports(ctx context.Context, websiteID string, limit int) ([]model.AuditSummary, error)
}
