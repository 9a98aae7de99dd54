package model

import "time"

// ContentStatus represents the publication state of a planned content piece.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusScheduled ContentStatus = "scheduled"
	ContentStatusPublished ContentStatus = "published"
)

// ContentPlanItem is one entry of a website's content calendar.
type ContentPlanItem struct {
	ID               string
	WebsiteID        string
	Title            string
	ContentType      string
	TargetKeywords   []string
	PublishDate      time.Time
	Status           ContentStatus
	SEOScore         float64
	EstimatedTraffic int
}
