package model

import "time"

// IntegrationType represents an external service connected to the account.
type IntegrationType string

const (
	IntegrationTypeGoogleAnalytics     IntegrationType = "google_analytics"
	IntegrationTypeGoogleSearchConsole IntegrationType = "google_search_console"
	IntegrationTypeShopify             IntegrationType = "shopify"
)

// Integration is a connected external service. Tokens never leave the
// backend; the client only sees connection metadata.
type Integration struct {
	ID        string
	Type      IntegrationType
	Name      string
	Status    string
	Scope     string
	ExpiresAt *time.Time
	CreatedAt time.Time
}
