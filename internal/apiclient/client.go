// Package apiclient talks to the SEO Intelligence Platform HTTP API. The
// heavy lifting (audit scoring, keyword clustering, competitor scraping,
// AI visibility analysis) happens server-side; this client only triggers
// jobs and fetches results.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aragroup1/seoctl/internal/log"
	"github.com/aragroup1/seoctl/internal/model"
)

// Client is the interface to the SEO Intelligence Platform API.
type Client interface {
	Health(ctx context.Context) error

	RegisterWebsite(ctx context.Context, website model.NewWebsite) (*model.Website, error)
	ListWebsites(ctx context.Context) ([]model.Website, error)
	GetWebsite(ctx context.Context, id string) (*model.Website, error)

	RunAudit(ctx context.Context, websiteID string) (*model.JobHandle, error)
	LatestAudit(ctx context.Context, websiteID string) (*model.AuditReport, error)
	AuditHistory(ctx context.Context, websiteID string, limit int) ([]model.AuditSummary, error)
	ImplementationStatus(ctx context.Context, websiteID string) (*model.ImplementationSummary, error)

	AnalyzeCompetitors(ctx context.Context, websiteID string, domains []string) (*model.JobHandle, error)
	CompetitorReport(ctx context.Context, websiteID string) (*model.CompetitorReport, error)

	ResearchKeywords(ctx context.Context, websiteID string, keywords []string) (*model.JobHandle, error)
	ListKeywords(ctx context.Context, websiteID string) ([]model.Keyword, error)
	ListRankings(ctx context.Context, websiteID string) ([]model.Ranking, error)

	GenerateStrategies(ctx context.Context, websiteID string) (*model.JobHandle, error)
	ListStrategies(ctx context.Context, websiteID string) ([]model.Strategy, error)

	Dashboard(ctx context.Context, websiteID string) (*model.Dashboard, error)
	ContentCalendar(ctx context.Context, websiteID string) ([]model.ContentPlanItem, error)
	ListIntegrations(ctx context.Context) ([]model.Integration, error)
}

const defaultHTTPTimeout = 30 * time.Second

// ClientConfig is the configuration for the API client.
type ClientConfig struct {
	// BaseURL is the API root, e.g. https://api.seointel.example.com.
	BaseURL string
	// APIKey is sent on every request as the X-API-Key header.
	APIKey string
	// HTTPClient is the underlying HTTP client. Defaults to a client with a
	// 30s timeout. The per-poll timeout, not the job timeout: long jobs are
	// tracked with repeated short requests.
	HTTPClient *http.Client
	Logger     log.Logger
}

func (c *ClientConfig) defaults() error {
	if c.BaseURL == "" {
		return fmt.Errorf("api base url is required")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("invalid api base url: %w", err)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "apiclient.Client"})
	return nil
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     log.Logger
}

// NewClient creates a new API client.
func NewClient(cfg ClientConfig) (Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}, nil
}

// Health checks the API is reachable.
func (c *client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", &struct{}{})
}

func (c *client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	c.logger.Debugf("%s %s", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.apiError(resp, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

// apiError maps HTTP error responses to model errors so callers can use
// errors.Is instead of matching status codes.
func (c *client) apiError(resp *http.Response, method, path string) error {
	var apiErr struct {
		Detail string `json:"detail"`
	}
	detail := resp.Status
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&apiErr); err == nil && apiErr.Detail != "" {
		detail = apiErr.Detail
	}

	err := fmt.Errorf("%s %s: %s", method, path, detail)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", err, model.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", err, model.ErrAlreadyExists)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", err, model.ErrNotValid)
	default:
		return err
	}
}
