package apiclient

import (
	"context"
	"fmt"
	"time"

	"github.com/aragroup1/seoctl/internal/model"
)

// AnalyzeCompetitors triggers a competitor analysis job for the given
// competitor domains (or the website's configured competitors when empty).
func (c *client) AnalyzeCompetitors(ctx context.Context, websiteID string, domains []string) (*model.JobHandle, error) {
	body := struct {
		Competitors []string `json:"competitors,omitempty"`
	}{Competitors: domains}

	var resp jobHandleResponse
	if err := c.post(ctx, fmt.Sprintf("/websites/%s/competitors/analyze", websiteID), body, &resp); err != nil {
		return nil, fmt.Errorf("could not trigger competitor analysis: %w", err)
	}
	return resp.toModel(), nil
}

// CompetitorReport returns the latest competitor analysis of a website.
// model.ErrNotFound when no analysis has finished yet.
func (c *client) CompetitorReport(ctx context.Context, websiteID string) (*model.CompetitorReport, error) {
	var resp struct {
		WebsiteID   string `json:"website_id"`
		Competitors []struct {
			Domain          string   `json:"competitor_domain"`
			TrafficEstimate int      `json:"traffic_estimate"`
			KeywordOverlap  []string `json:"keyword_overlap"`
			ContentGaps     []string `json:"content_gaps"`
			WinningKeywords []string `json:"winning_keywords"`
			LosingKeywords  []string `json:"losing_keywords"`
		} `json:"competitors"`
		AnalyzedAt time.Time `json:"analyzed_at"`
	}
	if err := c.get(ctx, fmt.Sprintf("/websites/%s/competitors", websiteID), &resp); err != nil {
		return nil, fmt.Errorf("could not get competitor report: %w", err)
	}

	report := model.CompetitorReport{
		WebsiteID:  resp.WebsiteID,
		AnalyzedAt: resp.AnalyzedAt,
	}
	for _, entry := range resp.Competitors {
		report.Competitors = append(report.Competitors, model.CompetitorEntry{
			Domain:          entry.Domain,
			TrafficEstimate: entry.TrafficEstimate,
			KeywordOverlap:  entry.KeywordOverlap,
			ContentGaps:     entry.ContentGaps,
			WinningKeywords: entry.WinningKeywords,
			LosingKeywords:  entry.LosingKeywords,
		})
	}
	return &report, nil
}
