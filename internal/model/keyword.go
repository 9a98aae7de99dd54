package model

import "time"

// KeywordIntent represents the search intent behind a keyword.
type KeywordIntent string

const (
	KeywordIntentNavigational  KeywordIntent = "navigational"
	KeywordIntentInformational KeywordIntent = "informational"
	KeywordIntentCommercial    KeywordIntent = "commercial"
	KeywordIntentTransactional KeywordIntent = "transactional"
)

// Keyword is a researched keyword for a website.
type Keyword struct {
	ID           string
	WebsiteID    string
	Keyword      string
	SearchVolume int
	Difficulty   float64
	CPC          float64
	Intent       KeywordIntent
	Priority     int
	TargetURL    string
	// AIFeatures flags which AI/SERP features are present for the keyword
	// (featured snippet, people-also-ask, knowledge panel, AI overview).
	AIFeatures map[string]bool
	UpdatedAt  time.Time
}

// Ranking is one observed SERP position for a keyword.
type Ranking struct {
	Keyword          string
	Position         int
	URL              string
	FeaturedSnippet  bool
	AIOverviewListed bool
	Clicks           int
	Impressions      int
	CTR              float64
	Date             time.Time
}
