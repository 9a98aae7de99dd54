package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/aragroup1/seoctl/internal/model"
)

// JSONPrinter prints SEO platform information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

func (j *JSONPrinter) print(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type websiteOutput struct {
	ID          string    `json:"id"`
	Domain      string    `json:"domain"`
	SiteType    string    `json:"site_type"`
	Industry    string    `json:"industry,omitempty"`
	Competitors []string  `json:"competitors,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newWebsiteOutput(w model.Website) websiteOutput {
	return websiteOutput{
		ID:          w.ID,
		Domain:      w.Domain,
		SiteType:    string(w.SiteType),
		Industry:    w.Industry,
		Competitors: w.Competitors,
		CreatedAt:   w.CreatedAt.UTC(),
	}
}

type issueOutput struct {
	ID             string   `json:"id"`
	Category       string   `json:"category"`
	Severity       string   `json:"severity"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	AffectedURLs   []string `json:"affected_urls,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
	Implementation string   `json:"implementation_status"`
}

func newIssueOutputs(issues []model.AuditIssue) []issueOutput {
	outs := make([]issueOutput, len(issues))
	for i, issue := range issues {
		outs[i] = issueOutput{
			ID:             issue.ID,
			Category:       string(issue.Category),
			Severity:       string(issue.Severity),
			Title:          issue.Title,
			Description:    issue.Description,
			AffectedURLs:   issue.AffectedURLs,
			Recommendation: issue.Recommendation,
			Implementation: string(issue.Implementation),
		}
	}
	return outs
}

type auditReportOutput struct {
	ID              string             `json:"id"`
	WebsiteID       string             `json:"website_id"`
	HealthScore     float64            `json:"health_score"`
	CategoryScores  map[string]float64 `json:"category_scores,omitempty"`
	Issues          []issueOutput      `json:"issues"`
	NewIssues       int                `json:"new_issues"`
	FixedIssues     int                `json:"fixed_issues"`
	RecurringIssues int                `json:"recurring_issues"`
	PagesCrawled    int                `json:"pages_crawled"`
	CompletedAt     time.Time          `json:"completed_at"`
}

// PrintWebsite prints detailed website information in JSON format.
func (j *JSONPrinter) PrintWebsite(website model.Website) error {
	return j.print(newWebsiteOutput(website))
}

// PrintWebsiteList prints websites in JSON format.
func (j *JSONPrinter) PrintWebsiteList(websites []model.Website) error {
	items := make([]websiteOutput, len(websites))
	for i, w := range websites {
		items[i] = newWebsiteOutput(w)
	}
	return j.print(items)
}

// PrintAuditReport prints the full audit report in JSON format.
func (j *JSONPrinter) PrintAuditReport(report model.AuditReport) error {
	scores := make(map[string]float64, len(report.CategoryScores))
	for category, score := range report.CategoryScores {
		scores[string(category)] = score
	}

	return j.print(auditReportOutput{
		ID:              report.ID,
		WebsiteID:       report.WebsiteID,
		HealthScore:     report.HealthScore,
		CategoryScores:  scores,
		Issues:          newIssueOutputs(report.Issues),
		NewIssues:       report.NewIssues,
		FixedIssues:     report.FixedIssues,
		RecurringIssues: report.RecurringIssues,
		PagesCrawled:    report.PagesCrawled,
		CompletedAt:     report.CompletedAt.UTC(),
	})
}

// PrintIssueList prints audit issues in JSON format.
func (j *JSONPrinter) PrintIssueList(issues []model.AuditIssue) error {
	return j.print(newIssueOutputs(issues))
}

// PrintAuditHistory prints audit summaries in JSON format.
func (j *JSONPrinter) PrintAuditHistory(summaries []model.AuditSummary) error {
	type summaryOutput struct {
		ID          string    `json:"id"`
		WebsiteID   string    `json:"website_id"`
		HealthScore float64   `json:"health_score"`
		IssueCount  int       `json:"issue_count"`
		CompletedAt time.Time `json:"completed_at"`
	}

	items := make([]summaryOutput, len(summaries))
	for i, s := range summaries {
		items[i] = summaryOutput{
			ID:          s.ID,
			WebsiteID:   s.WebsiteID,
			HealthScore: s.HealthScore,
			IssueCount:  s.IssueCount,
			CompletedAt: s.CompletedAt.UTC(),
		}
	}
	return j.print(items)
}

// PrintKeywordList prints keywords in JSON format.
func (j *JSONPrinter) PrintKeywordList(keywords []model.Keyword) error {
	type keywordOutput struct {
		ID           string          `json:"id"`
		Keyword      string          `json:"keyword"`
		SearchVolume int             `json:"search_volume"`
		Difficulty   float64         `json:"difficulty"`
		CPC          float64         `json:"cpc"`
		Intent       string          `json:"intent"`
		Priority     int             `json:"priority"`
		TargetURL    string          `json:"target_url,omitempty"`
		AIFeatures   map[string]bool `json:"ai_features,omitempty"`
	}

	items := make([]keywordOutput, len(keywords))
	for i, k := range keywords {
		items[i] = keywordOutput{
			ID:           k.ID,
			Keyword:      k.Keyword,
			SearchVolume: k.SearchVolume,
			Difficulty:   k.Difficulty,
			CPC:          k.CPC,
			Intent:       string(k.Intent),
			Priority:     k.Priority,
			TargetURL:    k.TargetURL,
			AIFeatures:   k.AIFeatures,
		}
	}
	return j.print(items)
}

type rankingOutput struct {
	Keyword          string    `json:"keyword"`
	Position         int       `json:"position"`
	URL              string    `json:"url,omitempty"`
	FeaturedSnippet  bool      `json:"featured_snippet"`
	AIOverviewListed bool      `json:"ai_overview_listed"`
	Clicks           int       `json:"clicks"`
	Impressions      int       `json:"impressions"`
	CTR              float64   `json:"ctr"`
	Date             time.Time `json:"date"`
}

func newRankingOutputs(rankings []model.Ranking) []rankingOutput {
	outs := make([]rankingOutput, len(rankings))
	for i, r := range rankings {
		outs[i] = rankingOutput{
			Keyword:          r.Keyword,
			Position:         r.Position,
			URL:              r.URL,
			FeaturedSnippet:  r.FeaturedSnippet,
			AIOverviewListed: r.AIOverviewListed,
			Clicks:           r.Clicks,
			Impressions:      r.Impressions,
			CTR:              r.CTR,
			Date:             r.Date.UTC(),
		}
	}
	return outs
}

// PrintRankingList prints rankings in JSON format.
func (j *JSONPrinter) PrintRankingList(rankings []model.Ranking) error {
	return j.print(newRankingOutputs(rankings))
}

// PrintCompetitorReport prints the competitor analysis in JSON format.
func (j *JSONPrinter) PrintCompetitorReport(report model.CompetitorReport) error {
	type competitorOutput struct {
		Domain          string   `json:"domain"`
		TrafficEstimate int      `json:"traffic_estimate"`
		KeywordOverlap  []string `json:"keyword_overlap,omitempty"`
		ContentGaps     []string `json:"content_gaps,omitempty"`
		WinningKeywords []string `json:"winning_keywords,omitempty"`
		LosingKeywords  []string `json:"losing_keywords,omitempty"`
	}
	type reportOutput struct {
		WebsiteID   string             `json:"website_id"`
		Competitors []competitorOutput `json:"competitors"`
		AnalyzedAt  time.Time          `json:"analyzed_at"`
	}

	out := reportOutput{
		WebsiteID:   report.WebsiteID,
		Competitors: make([]competitorOutput, len(report.Competitors)),
		AnalyzedAt:  report.AnalyzedAt.UTC(),
	}
	for i, c := range report.Competitors {
		out.Competitors[i] = competitorOutput{
			Domain:          c.Domain,
			TrafficEstimate: c.TrafficEstimate,
			KeywordOverlap:  c.KeywordOverlap,
			ContentGaps:     c.ContentGaps,
			WinningKeywords: c.WinningKeywords,
			LosingKeywords:  c.LosingKeywords,
		}
	}
	return j.print(out)
}

type strategyOutput struct {
	ID                   string    `json:"id"`
	Type                 string    `json:"type"`
	Title                string    `json:"title"`
	Description          string    `json:"description,omitempty"`
	Priority             int       `json:"priority"`
	Status               string    `json:"status"`
	ImpactScore          float64   `json:"impact_score"`
	EstimatedTrafficGain int       `json:"estimated_traffic_gain"`
	CreatedAt            time.Time `json:"created_at"`
}

func newStrategyOutputs(strategies []model.Strategy) []strategyOutput {
	outs := make([]strategyOutput, len(strategies))
	for i, s := range strategies {
		outs[i] = strategyOutput{
			ID:                   s.ID,
			Type:                 string(s.Type),
			Title:                s.Title,
			Description:          s.Description,
			Priority:             s.Priority,
			Status:               string(s.Status),
			ImpactScore:          s.ImpactScore,
			EstimatedTrafficGain: s.EstimatedTrafficGain,
			CreatedAt:            s.CreatedAt.UTC(),
		}
	}
	return outs
}

// PrintStrategyList prints strategies in JSON format.
func (j *JSONPrinter) PrintStrategyList(strategies []model.Strategy) error {
	return j.print(newStrategyOutputs(strategies))
}

// PrintDashboard prints the aggregated website overview in JSON format.
func (j *JSONPrinter) PrintDashboard(dashboard model.Dashboard) error {
	type metricsOutput struct {
		TotalKeywords     int     `json:"total_keywords"`
		Top10Rankings     int     `json:"top_10_rankings"`
		AveragePosition   float64 `json:"average_position"`
		AIVisibilityScore float64 `json:"ai_visibility_score"`
	}
	type dashboardOutput struct {
		Domain           string           `json:"domain"`
		Metrics          metricsOutput    `json:"metrics"`
		ActiveStrategies []strategyOutput `json:"active_strategies"`
		RecentRankings   []rankingOutput  `json:"recent_rankings"`
	}

	return j.print(dashboardOutput{
		Domain: dashboard.Domain,
		Metrics: metricsOutput{
			TotalKeywords:     dashboard.Metrics.TotalKeywords,
			Top10Rankings:     dashboard.Metrics.Top10Rankings,
			AveragePosition:   dashboard.Metrics.AveragePosition,
			AIVisibilityScore: dashboard.Metrics.AIVisibilityScore,
		},
		ActiveStrategies: newStrategyOutputs(dashboard.ActiveStrategies),
		RecentRankings:   newRankingOutputs(dashboard.RecentRankings),
	})
}

// PrintCalendar prints planned content in JSON format.
func (j *JSONPrinter) PrintCalendar(items []model.ContentPlanItem) error {
	type itemOutput struct {
		ID               string    `json:"id"`
		Title            string    `json:"title"`
		ContentType      string    `json:"content_type"`
		TargetKeywords   []string  `json:"target_keywords,omitempty"`
		PublishDate      time.Time `json:"publish_date"`
		Status           string    `json:"status"`
		SEOScore         float64   `json:"seo_score"`
		EstimatedTraffic int       `json:"estimated_traffic"`
	}

	outs := make([]itemOutput, len(items))
	for i, item := range items {
		outs[i] = itemOutput{
			ID:               item.ID,
			Title:            item.Title,
			ContentType:      item.ContentType,
			TargetKeywords:   item.TargetKeywords,
			PublishDate:      item.PublishDate.UTC(),
			Status:           string(item.Status),
			SEOScore:         item.SEOScore,
			EstimatedTraffic: item.EstimatedTraffic,
		}
	}
	return j.print(outs)
}

// PrintIntegrationList prints integrations in JSON format.
func (j *JSONPrinter) PrintIntegrationList(integrations []model.Integration) error {
	type integrationOutput struct {
		ID        string     `json:"id"`
		Type      string     `json:"type"`
		Name      string     `json:"name"`
		Status    string     `json:"status"`
		Scope     string     `json:"scope,omitempty"`
		ExpiresAt *time.Time `json:"expires_at"`
		CreatedAt time.Time  `json:"created_at"`
	}

	outs := make([]integrationOutput, len(integrations))
	for i, integration := range integrations {
		outs[i] = integrationOutput{
			ID:        integration.ID,
			Type:      string(integration.Type),
			Name:      integration.Name,
			Status:    integration.Status,
			Scope:     integration.Scope,
			ExpiresAt: integration.ExpiresAt,
			CreatedAt: integration.CreatedAt.UTC(),
		}
	}
	return j.print(outs)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.print(struct {
		Message string `json:"message"`
	}{Message: msg})
}
