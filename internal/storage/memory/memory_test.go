package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/storage/memory"
)

func websiteFixture(id, domain string) model.Website {
	return model.Website{
		ID:          id,
		Domain:      domain,
		SiteType:    model.SiteTypeShopify,
		Industry:    "ecommerce",
		Competitors: []string{"rival.com"},
		CreatedAt:   time.Now().UTC(),
	}
}

func reportFixture(id, websiteID string, completedAt time.Time) model.AuditReport {
	return model.AuditReport{
		ID:          id,
		WebsiteID:   websiteID,
		HealthScore: 80,
		Issues: []model.AuditIssue{
			{ID: "i1", Category: model.IssueCategoryTechnical, Severity: model.IssueSeverityHigh, Title: "Missing sitemap"},
		},
		PagesCrawled: 10,
		CompletedAt:  completedAt,
	}
}

func newRepo(t *testing.T) *memory.Repository {
	t.Helper()
	repo, err := memory.NewRepository(memory.RepositoryConfig{})
	require.NoError(t, err)
	return repo
}

func TestRepositoryWebsites(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	website := websiteFixture("site-1", "example.com")
	require.NoError(t, repo.SaveWebsite(ctx, website))

	got, err := repo.GetWebsite(ctx, "site-1")
	require.NoError(t, err)
	assert.Equal(t, "example.com", got.Domain)

	gotByDomain, err := repo.GetWebsiteByDomain(ctx, "example.com")
	require.NoError(t, err)
	assert.Equal(t, "site-1", gotByDomain.ID)

	all, err := repo.ListWebsites(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Saving again replaces instead of failing, the repository is a cache.
	website.Industry = "retail"
	require.NoError(t, repo.SaveWebsite(ctx, website))
	got, err = repo.GetWebsite(ctx, "site-1")
	require.NoError(t, err)
	assert.Equal(t, "retail", got.Industry)

	require.NoError(t, repo.DeleteWebsite(ctx, "site-1"))
	_, err = repo.GetWebsite(ctx, "site-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestRepositoryWebsiteNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.GetWebsite(ctx, "missing")
	assert.True(t, errors.Is(err, model.ErrNotFound))

	_, err = repo.GetWebsiteByDomain(ctx, "missing.com")
	assert.True(t, errors.Is(err, model.ErrNotFound))

	err = repo.DeleteWebsite(ctx, "missing")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestRepositoryAuditReports(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveAuditReport(ctx, reportFixture("a1", "site-1", base)))
	require.NoError(t, repo.SaveAuditReport(ctx, reportFixture("a2", "site-1", base.Add(time.Hour))))
	require.NoError(t, repo.SaveAuditReport(ctx, reportFixture("a3", "site-2", base)))

	latest, err := repo.LatestAuditReport(ctx, "site-1")
	require.NoError(t, err)
	assert.Equal(t, "a2", latest.ID)

	summaries, err := repo.ListAuditReports(ctx, "site-1", 0)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "a2", summaries[0].ID)
	assert.Equal(t, "a1", summaries[1].ID)
	assert.Equal(t, 1, summaries[0].IssueCount)

	limited, err := repo.ListAuditReports(ctx, "site-1", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "a2", limited[0].ID)

	_, err = repo.LatestAuditReport(ctx, "site-9")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestRepositorySaveAuditReportReplaces(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	report := reportFixture("a1", "site-1", time.Now().UTC())
	require.NoError(t, repo.SaveAuditReport(ctx, report))

	report.HealthScore = 95
	require.NoError(t, repo.SaveAuditReport(ctx, report))

	summaries, err := repo.ListAuditReports(ctx, "site-1", 0)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, float64(95), summaries[0].HealthScore)
}
