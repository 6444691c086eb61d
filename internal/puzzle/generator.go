package puzzle

import (
	"fmt"
	"math"
	"time"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
)

// GenerateDailyStrategyPuzzle builds the puzzle for date's UTC calendar day and solves it.
// The result depends only on that day.
func GenerateDailyStrategyPuzzle(date time.Time) (domain.DailyStrategyPuzzleConfig, domain.DailyStrategyPuzzleSolution) {
	config := GenerateConfig(date)
	return config, ComputeOptimalSets(config)
}

// GenerateToday is GenerateDailyStrategyPuzzle for the current time
func GenerateToday() (domain.DailyStrategyPuzzleConfig, domain.DailyStrategyPuzzleSolution) {
	return GenerateDailyStrategyPuzzle(time.Now())
}

// GenerateConfig builds the config alone.
// Draw order: shuffle the whole library, then two draws per selected task
// (reward multiplier, time variance), then one draw for the budget.
func GenerateConfig(date time.Time) domain.DailyStrategyPuzzleConfig {
	seed := SeedForDate(date)
	rng := NewPRNG(seed)

	selected := shuffleTemplates(Library, rng)[:TaskCount]

	tasks := make([]domain.StrategyTask, len(selected))
	for i, tmpl := range selected {
		multiplier := RewardMultiplierMin + rng()*RewardMultiplierSpan
		reward := int(jsRound(float64(tmpl.BaseReward) * multiplier))

		variance := int(jsRound((rng() - 0.5) * 2))
		timeCost := max(tmpl.BaseTimeCost+variance, MinTimeCost)

		tasks[i] = domain.StrategyTask{
			ID:          fmt.Sprintf("%s-%d", tmpl.Key, i),
			Name:        tmpl.Name,
			Description: tmpl.Description,
			Reward:      reward,
			TimeCost:    timeCost,
			Risk:        tmpl.Risk,
		}
	}

	budget := TimeBudgets[int(math.Floor(rng()*float64(len(TimeBudgets))))]

	return domain.DailyStrategyPuzzleConfig{
		Version:    ConfigVersion,
		Seed:       SeedString(seed),
		DateISO:    DateISO(date),
		Title:      PuzzleTitle,
		Narrative:  PuzzleNarrative,
		Goal:       PuzzleGoal,
		TimeBudget: budget,
		Tasks:      tasks,
	}
}

// shuffleTemplates returns a Fisher-Yates shuffled copy, walking from the last index down to 1
func shuffleTemplates(templates []TaskTemplate, rng RandFunc) []TaskTemplate {
	out := make([]TaskTemplate, len(templates))
	copy(out, templates)
	for i := len(out) - 1; i > 0; i-- {
		j := int(math.Floor(rng() * float64(i+1)))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// jsRound rounds half up, so -0.5 becomes 0 rather than -1 as math.Round would give
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}
