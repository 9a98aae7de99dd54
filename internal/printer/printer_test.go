package printer_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aragroup1/seoctl/internal/model"
	"github.com/aragroup1/seoctl/internal/printer"
)

func reportFixture() model.AuditReport {
	return model.AuditReport{
		ID:          "audit-1",
		WebsiteID:   "site-1",
		HealthScore: 83.2,
		CategoryScores: map[model.IssueCategory]float64{
			model.IssueCategoryTechnical: 90,
			model.IssueCategoryContent:   75.5,
		},
		Issues: []model.AuditIssue{
			{
				ID:             "i1",
				Category:       model.IssueCategoryTechnical,
				Severity:       model.IssueSeverityCritical,
				Title:          "Missing sitemap",
				Implementation: model.ImplementationStatusNotStarted,
			},
		},
		NewIssues:    1,
		FixedIssues:  3,
		PagesCrawled: 120,
		CompletedAt:  time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestTablePrinterPrintAuditReport(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintAuditReport(reportFixture())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Health score:    83.2")
	assert.Contains(t, out, "Pages crawled:   120")
	assert.Contains(t, out, "Issues:          1 new, 3 fixed, 0 recurring")
	assert.Contains(t, out, "Completed:       2026-08-01 10:00:00 UTC")
	assert.Contains(t, out, "Missing sitemap")
	// Category scores come out sorted by name.
	content := strings.Index(out, "content")
	technical := strings.Index(out, "technical")
	require.NotEqual(t, -1, content)
	require.NotEqual(t, -1, technical)
	assert.Less(t, content, technical)
}

func TestJSONPrinterPrintAuditReport(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	err := p.PrintAuditReport(reportFixture())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"health_score": 83.2`)
	assert.Contains(t, out, `"severity": "critical"`)
	assert.Contains(t, out, `"implementation_status": "not_started"`)
	assert.Contains(t, out, `"completed_at": "2026-08-01T10:00:00Z"`)
}

func TestTablePrinterPrintKeywordList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintKeywordList([]model.Keyword{
		{
			Keyword:      "seo audit",
			SearchVolume: 5400,
			Difficulty:   42,
			CPC:          1.35,
			Intent:       model.KeywordIntentCommercial,
			AIFeatures:   map[string]bool{"featured_snippet": true, "ai_overview": false},
		},
		{Keyword: "serp tracker", SearchVolume: 900, Intent: model.KeywordIntentInformational},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "KEYWORD")
	assert.Contains(t, out, "seo audit")
	assert.Contains(t, out, "featured_snippet")
	assert.NotContains(t, out, "ai_overview")
}

func TestTablePrinterEmptyListsPrintNothing(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	require.NoError(t, p.PrintWebsiteList(nil))
	require.NoError(t, p.PrintKeywordList(nil))
	require.NoError(t, p.PrintRankingList(nil))
	require.NoError(t, p.PrintStrategyList(nil))
	require.NoError(t, p.PrintCalendar(nil))
	require.NoError(t, p.PrintIntegrationList(nil))

	assert.Empty(t, buf.String())
}

func TestTablePrinterPrintDashboard(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintDashboard(model.Dashboard{
		Domain: "example.com",
		Metrics: model.DashboardMetrics{
			TotalKeywords:     120,
			Top10Rankings:     14,
			AveragePosition:   23.4,
			AIVisibilityScore: 50,
		},
		ActiveStrategies: []model.Strategy{
			{Priority: 1, Type: model.StrategyTypeTechnical, Title: "Fix internal linking", ImpactScore: 0.8, Status: model.StrategyStatusPending},
		},
		RecentRankings: []model.Ranking{
			{Keyword: "seo audit", Position: 4, CTR: 0.12, Date: time.Now().UTC()},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Website:        example.com")
	assert.Contains(t, out, "Keywords:       120 (14 in top 10)")
	assert.Contains(t, out, "Fix internal linking")
	assert.Contains(t, out, "seo audit")
}

func TestJSONPrinterPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	require.NoError(t, p.PrintMessage("audit started"))
	assert.JSONEq(t, `{"message": "audit started"}`, buf.String())
}

func TestTablePrinterPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	require.NoError(t, p.PrintMessage("ok"))
	assert.Equal(t, "ok", strings.TrimSpace(buf.String()))
}
