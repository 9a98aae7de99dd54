package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aragroup1/seoctl/internal/apiclient"
	"github.com/aragroup1/seoctl/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) apiclient.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := apiclient.NewClient(apiclient.ClientConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
	})
	require.NoError(t, err)

	return client
}

func TestNewClient(t *testing.T) {
	tests := map[string]struct {
		cfg    apiclient.ClientConfig
		expErr bool
	}{
		"A base URL is enough": {
			cfg:    apiclient.ClientConfig{BaseURL: "http://localhost:8000"},
			expErr: false,
		},

		"Missing base URL should fail": {
			cfg:    apiclient.ClientConfig{APIKey: "key"},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client, err := apiclient.NewClient(tt.cfg)

			if tt.expErr {
				require.Error(t, err)
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestClientSendsAPIKey(t *testing.T) {
	var gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		w.Write([]byte(`{}`))
	})

	require.NoError(t, client.Health(context.Background()))
	assert.Equal(t, "test-key", gotKey)
}

func TestClientRunAudit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/audits/site-1/run", r.URL.Path)
		w.Write([]byte(`{"job_id": "audit-job-42", "message": "Audit queued"}`))
	})

	handle, err := client.RunAudit(context.Background(), "site-1")

	require.NoError(t, err)
	assert.Equal(t, "audit-job-42", handle.ID)
}

func TestClientRunAuditFireAndForget(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "Audit queued"}`))
	})

	handle, err := client.RunAudit(context.Background(), "site-1")

	require.NoError(t, err)
	assert.Empty(t, handle.ID)
}

func TestClientLatestAudit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audits/site-1/latest", r.URL.Path)
		w.Write([]byte(`{
			"id": "audit-1",
			"website_id": "site-1",
			"health_score": 83.2,
			"category_scores": {"technical": 90, "content": 75.5},
			"issues": [
				{
					"id": "i1",
					"category": "technical",
					"severity": "critical",
					"title": "Missing sitemap",
					"affected_urls": ["https://example.com/sitemap.xml"],
					"implementation_status": "in_progress"
				},
				{
					"id": "i2",
					"category": "content",
					"severity": "low",
					"title": "Short meta description"
				}
			],
			"new_issues": 1,
			"fixed_issues": 3,
			"pages_crawled": 120,
			"completed_at": "2026-08-01T10:00:00Z"
		}`))
	})

	report, err := client.LatestAudit(context.Background(), "site-1")

	require.NoError(t, err)
	assert.Equal(t, "audit-1", report.ID)
	assert.Equal(t, 83.2, report.HealthScore)
	assert.Equal(t, map[model.IssueCategory]float64{
		model.IssueCategoryTechnical: 90,
		model.IssueCategoryContent:   75.5,
	}, report.CategoryScores)
	require.Len(t, report.Issues, 2)
	assert.Equal(t, model.IssueSeverityCritical, report.Issues[0].Severity)
	assert.Equal(t, model.ImplementationStatusInProgress, report.Issues[0].Implementation)
	// Issues without implementation tracking default to not started.
	assert.Equal(t, model.ImplementationStatusNotStarted, report.Issues[1].Implementation)
	assert.Equal(t, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), report.CompletedAt)
}

func TestClientLatestAuditNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "No audits found"}`))
	})

	_, err := client.LatestAudit(context.Background(), "site-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
	assert.Contains(t, err.Error(), "No audits found")
}

func TestClientRegisterWebsite(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/websites", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{
			"id": "site-9",
			"domain": "example.com",
			"site_type": "shopify",
			"created_at": "2026-08-01T10:00:00Z"
		}`))
	})

	website, err := client.RegisterWebsite(context.Background(), model.NewWebsite{
		Domain:   "example.com",
		SiteType: model.SiteTypeShopify,
	})

	require.NoError(t, err)
	assert.Equal(t, "site-9", website.ID)
	assert.Equal(t, model.SiteTypeShopify, website.SiteType)
}

func TestClientRegisterWebsiteConflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail": "Website already registered"}`))
	})

	_, err := client.RegisterWebsite(context.Background(), model.NewWebsite{Domain: "example.com"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrAlreadyExists))
}

func TestClientResearchKeywords(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/websites/site-1/keywords/bulk", r.URL.Path)
		w.Write([]byte(`{"message": "Queued 3 keywords for research"}`))
	})

	handle, err := client.ResearchKeywords(context.Background(), "site-1", []string{"seo", "audit", "serp"})

	require.NoError(t, err)
	assert.Empty(t, handle.ID)
}

func TestClientDashboard(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/websites/site-1/dashboard", r.URL.Path)
		w.Write([]byte(`{
			"website": {"domain": "example.com"},
			"metrics": {
				"total_keywords": 120,
				"top_10_rankings": 14,
				"average_position": 23.4,
				"ai_visibility_score": 50
			},
			"active_strategies": [
				{"id": "s1", "title": "Fix internal linking", "type": "technical", "status": "pending", "impact_score": 0.8}
			],
			"recent_rankings": [
				{"keyword": "seo audit", "position": 4, "date": "2026-08-20T00:00:00Z"}
			]
		}`))
	})

	dashboard, err := client.Dashboard(context.Background(), "site-1")

	require.NoError(t, err)
	assert.Equal(t, "example.com", dashboard.Domain)
	assert.Equal(t, 120, dashboard.Metrics.TotalKeywords)
	require.Len(t, dashboard.ActiveStrategies, 1)
	assert.Equal(t, model.StrategyTypeTechnical, dashboard.ActiveStrategies[0].Type)
	require.Len(t, dashboard.RecentRankings, 1)
	assert.Equal(t, 4, dashboard.RecentRankings[0].Position)
}

func TestClientHealthUnreachable(t *testing.T) {
	client, err := apiclient.NewClient(apiclient.ClientConfig{
		// Closed port, the request must fail fast.
		BaseURL:    "http://127.0.0.1:1",
		HTTPClient: &http.Client{Timeout: time.Second},
	})
	require.NoError(t, err)

	assert.Error(t, client.Health(context.Background()))
}
