package domain

import "time"

// RiskTier classifies how risky a strategy task is
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// Valid reports whether the tier is one of the known risk tiers
func (r RiskTier) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// StrategyTask is one selectable action in a daily strategy puzzle
type StrategyTask struct {
	ID          string   `json:"id" validate:"required,max=64"`
	Name        string   `json:"name" validate:"max=100"`
	Description string   `json:"description" validate:"max=500"`
	Reward      int      `json:"reward" validate:"gt=0"`
	TimeCost    int      `json:"timeCost" validate:"gt=0"`
	Risk        RiskTier `json:"risk" validate:"risktier"`
}

// DailyStrategyPuzzleConfig is the full puzzle for one UTC calendar day.
// It is never mutated after generation.
type DailyStrategyPuzzleConfig struct {
	Version    int            `json:"version"`
	Seed       string         `json:"seed"`
	DateISO    string         `json:"dateISO"`
	Title      string         `json:"title"`
	Narrative  string         `json:"narrative"`
	Goal       string         `json:"goal"`
	TimeBudget int            `json:"timeBudget" validate:"gt=0"`
	Tasks      []StrategyTask `json:"tasks" validate:"required,min=1,max=20,unique=ID,dive"`
}

// DailyStrategyPuzzleSolution holds the best reward and every task-id set reaching it
type DailyStrategyPuzzleSolution struct {
	OptimalReward   int        `json:"optimalReward"`
	OptimalTaskSets [][]string `json:"optimalTaskSets"`
}

// DailyPuzzle is the persisted pairing of a day's config and its solution
type DailyPuzzle struct {
	Date      time.Time                   `json:"date"`
	Config    DailyStrategyPuzzleConfig   `json:"config"`
	Solution  DailyStrategyPuzzleSolution `json:"solution"`
	CreatedAt time.Time                   `json:"created_at"`
}

// PuzzleAttempt is a player's scored submission for a day's puzzle
type PuzzleAttempt struct {
	ID           string    `json:"attempt_id"`
	UserID       string    `json:"user_id"`
	Date         time.Time `json:"date"`
	TaskIDs      []string  `json:"task_ids"`
	TotalReward  int       `json:"total_reward"`
	TotalTime    int       `json:"total_time"`
	WithinBudget bool      `json:"within_budget"`
	IsOptimal    bool      `json:"is_optimal"`
	ScorePercent int       `json:"score_percent"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
