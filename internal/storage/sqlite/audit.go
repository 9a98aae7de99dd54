package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aragroup1/seoctl/internal/model"
)

// Category scores and issues are stored as JSON documents. The CLI never
// queries inside them, it always loads a report whole.

func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeJSON(data string, v any) error {
	if data == "" {
		return nil
	}
	return json.Unmarshal([]byte(data), v)
}

// SaveAuditReport stores an audit report, replacing any previous report with
// the same ID.
func (r *Repository) SaveAuditReport(ctx context.Context, report model.AuditReport) error {
	scores, err := encodeJSON(report.CategoryScores)
	if err != nil {
		return fmt.Errorf("could not encode category scores: %w", err)
	}
	issues, err := encodeJSON(report.Issues)
	if err != nil {
		return fmt.Errorf("could not encode issues: %w", err)
	}

	query := `
		INSERT INTO audit_reports (
			id, website_id, health_score,
			category_scores, issues,
			new_issues, fixed_issues, recurring_issues,
			pages_crawled, completed_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			website_id = excluded.website_id,
			health_score = excluded.health_score,
			category_scores = excluded.category_scores,
			issues = excluded.issues,
			new_issues = excluded.new_issues,
			fixed_issues = excluded.fixed_issues,
			recurring_issues = excluded.recurring_issues,
			pages_crawled = excluded.pages_crawled,
			completed_at = excluded.completed_at
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		report.ID,
		report.WebsiteID,
		report.HealthScore,
		scores,
		issues,
		report.NewIssues,
		report.FixedIssues,
		report.RecurringIssues,
		report.PagesCrawled,
		report.CompletedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("could not save audit report: %w", err)
	}

	r.logger.Debugf("Saved audit report in repository: %s", report.ID)
	return nil
}

// LatestAuditReport returns the most recent audit report of a website.
func (r *Repository) LatestAuditReport(ctx context.Context, websiteID string) (*model.AuditReport, error) {
	query := `
		SELECT
			id, website_id, health_score,
			category_scores, issues,
			new_issues, fixed_issues, recurring_issues,
			pages_crawled, completed_at
		FROM audit_reports
		WHERE website_id = ?
		ORDER BY completed_at DESC
		LIMIT 1
	`

	report, err := r.scanAuditReport(r.db.QueryRowContext(ctx, query, websiteID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("audit reports for website %s: %w", websiteID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query audit report: %w", err)
	}

	return report, nil
}

// ListAuditReports returns audit summaries of a website, newest first.
func (r *Repository) ListAuditReports(ctx context.Context, websiteID string, limit int) ([]model.AuditSummary, error) {
	query := `
		SELECT id, website_id, health_score, issues, completed_at
		FROM audit_reports
		WHERE website_id = ?
		ORDER BY completed_at DESC
	`
	args := []any{websiteID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query audit reports: %w", err)
	}
	defer rows.Close()

	summaries := []model.AuditSummary{}
	for rows.Next() {
		var summary model.AuditSummary
		var issues string
		var completedAt int64

		if err := rows.Scan(&summary.ID, &summary.WebsiteID, &summary.HealthScore, &issues, &completedAt); err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}

		var issueList []model.AuditIssue
		if err := decodeJSON(issues, &issueList); err != nil {
			return nil, fmt.Errorf("could not decode issues: %w", err)
		}
		summary.IssueCount = len(issueList)
		summary.CompletedAt = time.Unix(completedAt, 0).UTC()

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return summaries, nil
}

func (r *Repository) scanAuditReport(s scanner) (*model.AuditReport, error) {
	var report model.AuditReport
	var scores, issues string
	var completedAt int64

	err := s.Scan(
		&report.ID,
		&report.WebsiteID,
		&report.HealthScore,
		&scores,
		&issues,
		&report.NewIssues,
		&report.FixedIssues,
		&report.RecurringIssues,
		&report.PagesCrawled,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeJSON(scores, &report.CategoryScores); err != nil {
		return nil, fmt.Errorf("could not decode category scores: %w", err)
	}
	if err := decodeJSON(issues, &report.Issues); err != nil {
		return nil, fmt.Errorf("could not decode issues: %w", err)
	}
	report.CompletedAt = time.Unix(completedAt, 0).UTC()

	return &report, nil
}
