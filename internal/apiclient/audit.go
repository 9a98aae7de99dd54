package apiclient

import (
	"context"
	"fmt"
	"time"

	"github.com/aragroup1/seoctl/internal/model"
)

// jobHandleResponse is what job-initiation endpoints return. Some endpoints
// are fire-and-forget and omit the job ID entirely.
type jobHandleResponse struct {
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

func (j jobHandleResponse) toModel() *model.JobHandle {
	return &model.JobHandle{ID: j.JobID}
}

type auditIssueResponse struct {
	ID             string   `json:"id"`
	Category       string   `json:"category"`
	Severity       string   `json:"severity"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	AffectedURLs   []string `json:"affected_urls"`
	Recommendation string   `json:"recommendation"`
	Implementation string   `json:"implementation_status"`
}

type auditReportResponse struct {
	ID              string               `json:"id"`
	WebsiteID       string               `json:"website_id"`
	HealthScore     float64              `json:"health_score"`
	CategoryScores  map[string]float64   `json:"category_scores"`
	Issues          []auditIssueResponse `json:"issues"`
	NewIssues       int                  `json:"new_issues"`
	FixedIssues     int                  `json:"fixed_issues"`
	RecurringIssues int                  `json:"recurring_issues"`
	PagesCrawled    int                  `json:"pages_crawled"`
	CompletedAt     time.Time            `json:"completed_at"`
}

func (a auditReportResponse) toModel() model.AuditReport {
	scores := make(map[model.IssueCategory]float64, len(a.CategoryScores))
	for category, score := range a.CategoryScores {
		scores[model.IssueCategory(category)] = score
	}

	issues := make([]model.AuditIssue, 0, len(a.Issues))
	for _, issue := range a.Issues {
		impl := model.ImplementationStatus(issue.Implementation)
		if impl == "" {
			impl = model.ImplementationStatusNotStarted
		}
		issues = append(issues, model.AuditIssue{
			ID:             issue.ID,
			Category:       model.IssueCategory(issue.Category),
			Severity:       model.IssueSeverity(issue.Severity),
			Title:          issue.Title,
			Description:    issue.Description,
			AffectedURLs:   issue.AffectedURLs,
			Recommendation: issue.Recommendation,
			Implementation: impl,
		})
	}

	return model.AuditReport{
		ID:              a.ID,
		WebsiteID:       a.WebsiteID,
		HealthScore:     a.HealthScore,
		CategoryScores:  scores,
		Issues:          issues,
		NewIssues:       a.NewIssues,
		FixedIssues:     a.FixedIssues,
		RecurringIssues: a.RecurringIssues,
		PagesCrawled:    a.PagesCrawled,
		CompletedAt:     a.CompletedAt,
	}
}

// RunAudit triggers a comprehensive site audit. The audit runs as a backend
// background job; poll LatestAudit for completion.
func (c *client) RunAudit(ctx context.Context, websiteID string) (*model.JobHandle, error) {
	var resp jobHandleResponse
	if err := c.post(ctx, fmt.Sprintf("/audits/%s/run", websiteID), nil, &resp); err != nil {
		return nil, fmt.Errorf("could not trigger audit: %w", err)
	}
	return resp.toModel(), nil
}

// LatestAudit returns the most recent audit report of a website.
// model.ErrNotFound when the website was never audited.
func (c *client) LatestAudit(ctx context.Context, websiteID string) (*model.AuditReport, error) {
	var resp auditReportResponse
	if err := c.get(ctx, fmt.Sprintf("/audits/%s/latest", websiteID), &resp); err != nil {
		return nil, fmt.Errorf("could not get latest audit: %w", err)
	}

	report := resp.toModel()
	return &report, nil
}

// AuditHistory returns past audit summaries, newest first.
func (c *client) AuditHistory(ctx context.Context, websiteID string, limit int) ([]model.AuditSummary, error) {
	path := fmt.Sprintf("/audits/%s/history", websiteID)
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var resp []struct {
		ID          string    `json:"id"`
		WebsiteID   string    `json:"website_id"`
		HealthScore float64   `json:"health_score"`
		IssueCount  int       `json:"issue_count"`
		CompletedAt time.Time `json:"completed_at"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("could not get audit history: %w", err)
	}

	summaries := make([]model.AuditSummary, 0, len(resp))
	for _, s := range resp {
		summaries = append(summaries, model.AuditSummary{
			ID:          s.ID,
			WebsiteID:   s.WebsiteID,
			HealthScore: s.HealthScore,
			IssueCount:  s.IssueCount,
			CompletedAt: s.CompletedAt,
		})
	}
	return summaries, nil
}

// ImplementationStatus returns the implementation tracking aggregation for
// a website's audit recommendations.
func (c *client) ImplementationStatus(ctx context.Context, websiteID string) (*model.ImplementationSummary, error) {
	var resp struct {
		Verified int `json:"verified"`
		Failed   int `json:"failed"`
		Pending  int `json:"pending"`
	}
	if err := c.get(ctx, fmt.Sprintf("/audits/%s/implementation-status", websiteID), &resp); err != nil {
		return nil, fmt.Errorf("could not get implementation status: %w", err)
	}

	return &model.ImplementationSummary{
		Verified: resp.Verified,
		Failed:   resp.Failed,
		Pending:  resp.Pending,
	}, nil
}
