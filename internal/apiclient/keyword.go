package apiclient

import (
	"context"
	"fmt"
	"time"

	"github.com/aragroup1/seoctl/internal/model"
)

type keywordResponse struct {
	ID           string          `json:"id"`
	WebsiteID    string          `json:"website_id"`
	Keyword      string          `json:"keyword"`
	SearchVolume int             `json:"search_volume"`
	Difficulty   float64         `json:"difficulty"`
	CPC          float64         `json:"cpc"`
	Intent       string          `json:"intent"`
	Priority     int             `json:"priority"`
	TargetURL    string          `json:"target_url"`
	AIFeatures   map[string]bool `json:"ai_search_visibility"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (k keywordResponse) toModel() model.Keyword {
	return model.Keyword{
		ID:           k.ID,
		WebsiteID:    k.WebsiteID,
		Keyword:      k.Keyword,
		SearchVolume: k.SearchVolume,
		Difficulty:   k.Difficulty,
		CPC:          k.CPC,
		Intent:       model.KeywordIntent(k.Intent),
		Priority:     k.Priority,
		TargetURL:    k.TargetURL,
		AIFeatures:   k.AIFeatures,
		UpdatedAt:    k.UpdatedAt,
	}
}

// ResearchKeywords queues a bulk keyword research job. The backend
// researches keywords in the background; completion is observed by polling
// ListKeywords until all queued keywords appear.
func (c *client) ResearchKeywords(ctx context.Context, websiteID string, keywords []string) (*model.JobHandle, error) {
	body := struct {
		Keywords []string `json:"keywords"`
	}{Keywords: keywords}

	var resp jobHandleResponse
	if err := c.post(ctx, fmt.Sprintf("/websites/%s/keywords/bulk", websiteID), body, &resp); err != nil {
		return nil, fmt.Errorf("could not queue keyword research: %w", err)
	}
	return resp.toModel(), nil
}

// ListKeywords returns the researched keywords of a website.
func (c *client) ListKeywords(ctx context.Context, websiteID string) ([]model.Keyword, error) {
	var resp []keywordResponse
	if err := c.get(ctx, fmt.Sprintf("/websites/%s/keywords", websiteID), &resp); err != nil {
		return nil, fmt.Errorf("could not list keywords: %w", err)
	}

	keywords := make([]model.Keyword, 0, len(resp))
	for _, k := range resp {
		keywords = append(keywords, k.toModel())
	}
	return keywords, nil
}

// ListRankings returns the recent SERP positions of a website's keywords.
func (c *client) ListRankings(ctx context.Context, websiteID string) ([]model.Ranking, error) {
	var resp []struct {
		Keyword          string    `json:"keyword"`
		Position         int       `json:"position"`
		URL              string    `json:"url"`
		FeaturedSnippet  bool      `json:"featured_snippet"`
		AIOverviewListed bool      `json:"ai_overview_present"`
		Clicks           int       `json:"clicks"`
		Impressions      int       `json:"impressions"`
		CTR              float64   `json:"ctr"`
		Date             time.Time `json:"date"`
	}
	if err := c.get(ctx, fmt.Sprintf("/websites/%s/rankings", websiteID), &resp); err != nil {
		return nil, fmt.Errorf("could not list rankings: %w", err)
	}

	rankings := make([]model.Ranking, 0, len(resp))
	for _, r := range resp {
		rankings = append(rankings, model.Ranking{
			Keyword:          r.Keyword,
			Position:         r.Position,
			URL:              r.URL,
			FeaturedSnippet:  r.FeaturedSnippet,
			AIOverviewListed: r.AIOverviewListed,
			Clicks:           r.Clicks,
			Impressions:      r.Impressions,
			CTR:              r.CTR,
			Date:             r.Date,
		})
	}
	return rankings, nil
}
