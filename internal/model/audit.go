package model

import "time"

// IssueSeverity represents how severe an audit issue is.
type IssueSeverity string

const (
	IssueSeverityLow      IssueSeverity = "low"
	IssueSeverityMedium   IssueSeverity = "medium"
	IssueSeverityHigh     IssueSeverity = "high"
	IssueSeverityCritical IssueSeverity = "critical"
)

// IssueCategory represents the audit area an issue belongs to.
type IssueCategory string

const (
	IssueCategoryTechnical   IssueCategory = "technical"
	IssueCategoryContent     IssueCategory = "content"
	IssueCategoryPerformance IssueCategory = "performance"
	IssueCategoryMobile      IssueCategory = "mobile"
	IssueCategorySecurity    IssueCategory = "security"
	IssueCategoryBacklink    IssueCategory = "backlink"
)

// ImplementationStatus tracks whether a recommended fix has been applied
// and verified on the live site.
type ImplementationStatus string

const (
	ImplementationStatusNotStarted ImplementationStatus = "not_started"
	ImplementationStatusInProgress ImplementationStatus = "in_progress"
	ImplementationStatusVerified   ImplementationStatus = "verified"
	ImplementationStatusFailed     ImplementationStatus = "failed"
)

// AuditIssue is a single problem found by a site audit.
type AuditIssue struct {
	ID             string
	Category       IssueCategory
	Severity       IssueSeverity
	Title          string
	Description    string
	AffectedURLs   []string
	Recommendation string
	Implementation ImplementationStatus
}

// AuditReport is the full result of one site audit run.
type AuditReport struct {
	ID              string
	WebsiteID       string
	HealthScore     float64
	CategoryScores  map[IssueCategory]float64
	Issues          []AuditIssue
	NewIssues       int
	FixedIssues     int
	RecurringIssues int
	PagesCrawled    int
	CompletedAt     time.Time
}

// AuditSummary is the compact form used for audit history listings.
type AuditSummary struct {
	ID          string
	WebsiteID   string
	HealthScore float64
	IssueCount  int
	CompletedAt time.Time
}

// ImplementationSummary aggregates implementation tracking over a website's
// audit recommendations.
type ImplementationSummary struct {
	Verified int
	Failed   int
	Pending  int
}

// Summary returns the compact form of a report.
func (r AuditReport) Summary() AuditSummary {
	return AuditSummary{
		ID:          r.ID,
		WebsiteID:   r.WebsiteID,
		HealthScore: r.HealthScore,
		IssueCount:  len(r.Issues),
		CompletedAt: r.CompletedAt,
	}
}

// IssueFilter selects a subset of a report's issues.
type IssueFilter struct {
	Severity       IssueSeverity
	Category       IssueCategory
	Implementation ImplementationStatus
}

// FilterIssues returns the issues of the report matching the filter. Zero
// valued filter fields match everything.
func (r AuditReport) FilterIssues(f IssueFilter) []AuditIssue {
	filtered := []AuditIssue{}
	for _, issue := range r.Issues {
		if f.Severity != "" && issue.Severity != f.Severity {
			continue
		}
		if f.Category != "" && issue.Category != f.Category {
			continue
		}
		if f.Implementation != "" && issue.Implementation != f.Implementation {
			continue
		}
		filtered = append(filtered, issue)
	}
	return filtered
}

// ImplementationSummary aggregates the implementation state of the report's
// issues.
func (r AuditReport) ImplementationSummary() ImplementationSummary {
	var s ImplementationSummary
	for _, issue := range r.Issues {
		switch issue.Implementation {
		case ImplementationStatusVerified:
			s.Verified++
		case ImplementationStatusFailed:
			s.Failed++
		default:
			s.Pending++
		}
	}
	return s
}
