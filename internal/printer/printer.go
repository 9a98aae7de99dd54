package printer

import "github.com/aragroup1/seoctl/internal/model"

// Printer knows how to print SEO platform information in different formats.
type Printer interface {
	PrintWebsite(website model.Website) error
	PrintWebsiteList(websites []model.Website) error
	PrintAuditReport(report model.AuditReport) error
	PrintIssueList(issues []model.AuditIssue) error
	PrintAuditHistory(summaries []model.AuditSummary) error
	PrintKeywordList(keywords []model.Keyword) error
	PrintRankingList(rankings []model.Ranking) error
	PrintCompetitorReport(report model.CompetitorReport) error
	PrintStrategyList(strategies []model.Strategy) error
	PrintDashboard(dashboard model.Dashboard) error
	PrintCalendar(items []model.ContentPlanItem) error
	PrintIntegrationList(integrations []model.Integration) error
	PrintMessage(msg string) error
}
