package model

import "time"

// StrategyType represents the area a strategy targets.
type StrategyType string

const (
	StrategyTypeContent        StrategyType = "content"
	StrategyTypeTechnical      StrategyType = "technical"
	StrategyTypeBacklink       StrategyType = "backlink"
	StrategyTypeAIOptimization StrategyType = "ai_optimization"
)

// StrategyStatus represents the execution state of a strategy.
type StrategyStatus string

const (
	StrategyStatusPending    StrategyStatus = "pending"
	StrategyStatusInProgress StrategyStatus = "in_progress"
	StrategyStatusCompleted  StrategyStatus = "completed"
)

// Strategy is one AI-generated optimization strategy for a website.
type Strategy struct {
	ID                   string
	WebsiteID            string
	Type                 StrategyType
	Title                string
	Description          string
	Priority             int
	Status               StrategyStatus
	ImpactScore          float64
	EstimatedTrafficGain int
	CreatedAt            time.Time
}
