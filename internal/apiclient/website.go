package apiclient

import (
	"context"
	"fmt"
	"time"

	"github.com/aragroup1/seoctl/internal/model"
)

type websiteResponse struct {
	ID          string    `json:"id"`
	Domain      string    `json:"domain"`
	SiteType    string    `json:"site_type"`
	Industry    string    `json:"industry"`
	Competitors []string  `json:"competitors"`
	CreatedAt   time.Time `json:"created_at"`
}

func (w websiteResponse) toModel() model.Website {
	return model.Website{
		ID:          w.ID,
		Domain:      w.Domain,
		SiteType:    model.SiteType(w.SiteType),
		Industry:    w.Industry,
		Competitors: w.Competitors,
		CreatedAt:   w.CreatedAt,
	}
}

// RegisterWebsite registers a new website on the platform.
func (c *client) RegisterWebsite(ctx context.Context, website model.NewWebsite) (*model.Website, error) {
	body := struct {
		Domain      string   `json:"domain"`
		SiteType    string   `json:"site_type"`
		Industry    string   `json:"industry,omitempty"`
		Competitors []string `json:"competitors,omitempty"`
	}{
		Domain:      website.Domain,
		SiteType:    string(website.SiteType),
		Industry:    website.Industry,
		Competitors: website.Competitors,
	}

	var resp websiteResponse
	if err := c.post(ctx, "/websites", body, &resp); err != nil {
		return nil, fmt.Errorf("could not register website: %w", err)
	}

	w := resp.toModel()
	return &w, nil
}

// ListWebsites returns all websites of the account.
func (c *client) ListWebsites(ctx context.Context) ([]model.Website, error) {
	var resp []websiteResponse
	if err := c.get(ctx, "/websites", &resp); err != nil {
		return nil, fmt.Errorf("could not list websites: %w", err)
	}

	websites := make([]model.Website, 0, len(resp))
	for _, w := range resp {
		websites = append(websites, w.toModel())
	}
	return websites, nil
}

// GetWebsite returns a single website by ID.
func (c *client) GetWebsite(ctx context.Context, id string) (*model.Website, error) {
	var resp websiteResponse
	if err := c.get(ctx, "/websites/"+id, &resp); err != nil {
		return nil, fmt.Errorf("could not get website: %w", err)
	}

	w := resp.toModel()
	return &w, nil
}
