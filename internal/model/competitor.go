package model

import "time"

// CompetitorEntry is the analysis of a single competitor domain.
type CompetitorEntry struct {
	Domain          string
	TrafficEstimate int
	KeywordOverlap  []string
	ContentGaps     []string
	WinningKeywords []string
	LosingKeywords  []string
}

// CompetitorReport is the result of one competitor analysis job.
type CompetitorReport struct {
	WebsiteID   string
	Competitors []CompetitorEntry
	AnalyzedAt  time.Time
}
