package model

// DashboardMetrics are the headline numbers for a website.
type DashboardMetrics struct {
	TotalKeywords     int
	Top10Rankings     int
	AveragePosition   float64
	AIVisibilityScore float64
}

// Dashboard is the aggregated overview the backend builds for a website.
type Dashboard struct {
	Domain           string
	Metrics          DashboardMetrics
	ActiveStrategies []Strategy
	RecentRankings   []Ranking
}
