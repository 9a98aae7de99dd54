package apiclient

import (
	"context"
	"fmt"
	"time"

	"github.com/aragroup1/seoctl/internal/model"
)

type strategyResponse struct {
	ID                   string    `json:"id"`
	WebsiteID            string    `json:"website_id"`
	Type                 string    `json:"type"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Priority             int       `json:"priority"`
	Status               string    `json:"status"`
	ImpactScore          float64   `json:"impact_score"`
	EstimatedTrafficGain int       `json:"estimated_traffic_gain"`
	CreatedAt            time.Time `json:"created_at"`
}

func (s strategyResponse) toModel() model.Strategy {
	return model.Strategy{
		ID:                   s.ID,
		WebsiteID:            s.WebsiteID,
		Type:                 model.StrategyType(s.Type),
		Title:                s.Title,
		Description:          s.Description,
		Priority:             s.Priority,
		Status:               model.StrategyStatus(s.Status),
		ImpactScore:          s.ImpactScore,
		EstimatedTrafficGain: s.EstimatedTrafficGain,
		CreatedAt:            s.CreatedAt,
	}
}

// GenerateStrategies triggers AI strategy generation for a website.
func (c *client) GenerateStrategies(ctx context.Context, websiteID string) (*model.JobHandle, error) {
	var resp jobHandleResponse
	if err := c.post(ctx, fmt.Sprintf("/websites/%s/strategies/generate", websiteID), nil, &resp); err != nil {
		return nil, fmt.Errorf("could not trigger strategy generation: %w", err)
	}
	return resp.toModel(), nil
}

// ListStrategies returns the strategies generated for a website.
func (c *client) ListStrategies(ctx context.Context, websiteID string) ([]model.Strategy, error) {
	var resp []strategyResponse
	if err := c.get(ctx, fmt.Sprintf("/websites/%s/strategies", websiteID), &resp); err != nil {
		return nil, fmt.Errorf("could not list strategies: %w", err)
	}

	strategies := make([]model.Strategy, 0, len(resp))
	for _, s := range resp {
		strategies = append(strategies, s.toModel())
	}
	return strategies, nil
}

// Dashboard returns the aggregated overview of a website.
func (c *client) Dashboard(ctx context.Context, websiteID string) (*model.Dashboard, error) {
	var resp struct {
		Website struct {
			Domain string `json:"domain"`
		} `json:"website"`
		Metrics struct {
			TotalKeywords     int     `json:"total_keywords"`
			Top10Rankings     int     `json:"top_10_rankings"`
			AveragePosition   float64 `json:"average_position"`
			AIVisibilityScore float64 `json:"ai_visibility_score"`
		} `json:"metrics"`
		ActiveStrategies []strategyResponse `json:"active_strategies"`
		RecentRankings   []struct {
			Keyword  string    `json:"keyword"`
			Position int       `json:"position"`
			Date     time.Time `json:"date"`
		} `json:"recent_rankings"`
	}
	if err := c.get(ctx, fmt.Sprintf("/websites/%s/dashboard", websiteID), &resp); err != nil {
		return nil, fmt.Errorf("could not get dashboard: %w", err)
	}

	dashboard := model.Dashboard{
		Domain: resp.Website.Domain,
		Metrics: model.DashboardMetrics{
			TotalKeywords:     resp.Metrics.TotalKeywords,
			Top10Rankings:     resp.Metrics.Top10Rankings,
			AveragePosition:   resp.Metrics.AveragePosition,
			AIVisibilityScore: resp.Metrics.AIVisibilityScore,
		},
	}
	for _, s := range resp.ActiveStrategies {
		dashboard.ActiveStrategies = append(dashboard.ActiveStrategies, s.toModel())
	}
	for _, r := range resp.RecentRankings {
		dashboard.RecentRankings = append(dashboard.RecentRankings, model.Ranking{
			Keyword:  r.Keyword,
			Position: r.Position,
			Date:     r.Date,
		})
	}
	return &dashboard, nil
}

// ContentCalendar returns the planned content of a website.
func (c *client) ContentCalendar(ctx context.Context, websiteID string) ([]model.ContentPlanItem, error) {
	var resp []struct {
		ID               string    `json:"id"`
		WebsiteID        string    `json:"website_id"`
		Title            string    `json:"title"`
		ContentType      string    `json:"content_type"`
		TargetKeywords   []string  `json:"target_keywords"`
		PublishDate      time.Time `json:"publish_date"`
		Status           string    `json:"status"`
		SEOScore         float64   `json:"seo_score"`
		EstimatedTraffic int       `json:"estimated_traffic"`
	}
	if err := c.get(ctx, fmt.Sprintf("/websites/%s/calendar", websiteID), &resp); err != nil {
		return nil, fmt.Errorf("could not get content calendar: %w", err)
	}

	items := make([]model.ContentPlanItem, 0, len(resp))
	for _, item := range resp {
		items = append(items, model.ContentPlanItem{
			ID:               item.ID,
			WebsiteID:        item.WebsiteID,
			Title:            item.Title,
			ContentType:      item.ContentType,
			TargetKeywords:   item.TargetKeywords,
			PublishDate:      item.PublishDate,
			Status:           model.ContentStatus(item.Status),
			SEOScore:         item.SEOScore,
			EstimatedTraffic: item.EstimatedTraffic,
		})
	}
	return items, nil
}

// ListIntegrations returns the connected external services of the account.
func (c *client) ListIntegrations(ctx context.Context) ([]model.Integration, error) {
	var resp []struct {
		ID        string     `json:"id"`
		Type      string     `json:"type"`
		Name      string     `json:"name"`
		Status    string     `json:"status"`
		Scope     string     `json:"scope"`
		ExpiresAt *time.Time `json:"expires_at"`
		CreatedAt time.Time  `json:"created_at"`
	}
	if err := c.get(ctx, "/integrations", &resp); err != nil {
		return nil, fmt.Errorf("could not list integrations: %w", err)
	}

	integrations := make([]model.Integration, 0, len(resp))
	for _, i := range resp {
		integrations = append(integrations, model.Integration{
			ID:        i.ID,
			Type:      model.IntegrationType(i.Type),
			Name:      i.Name,
			Status:    i.Status,
			Scope:     i.Scope,
			ExpiresAt: i.ExpiresAt,
			CreatedAt: i.CreatedAt,
		})
	}
	return integrations, nil
}
