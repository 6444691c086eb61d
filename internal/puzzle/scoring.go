package puzzle

import (
	"fmt"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
)

// Score is the evaluation of a player's task selection
type Score struct {
	TotalReward  int  `json:"total_reward"`
	TotalTime    int  `json:"total_time"`
	WithinBudget bool `json:"within_budget"`
	IsOptimal    bool `json:"is_optimal"`
	ScorePercent int  `json:"score_percent"`
}

// ScoreSelection totals the selected tasks and compares them with the solution.
// Unknown or repeated ids are rejected; an over-budget selection scores 0%.
func ScoreSelection(config domain.DailyStrategyPuzzleConfig, solution domain.DailyStrategyPuzzleSolution, taskIDs []string) (Score, error) {
	byID := make(map[string]domain.StrategyTask, len(config.Tasks))
	for _, task := range config.Tasks {
		byID[task.ID] = task
	}

	var score Score
	seen := make(map[string]struct{}, len(taskIDs))
	for _, id := range taskIDs {
		task, ok := byID[id]
		if !ok {
			return Score{}, fmt.Errorf("%w: %s", domain.ErrUnknownTask, id)
		}
		if _, dup := seen[id]; dup {
			return Score{}, fmt.Errorf("%w: %s", domain.ErrDuplicateTask, id)
		}
		seen[id] = struct{}{}

		score.TotalReward += task.Reward
		score.TotalTime += task.TimeCost
	}

	score.WithinBudget = score.TotalTime <= config.TimeBudget
	if !score.WithinBudget {
		return score, nil
	}

	score.IsOptimal = score.TotalReward == solution.OptimalReward
	if solution.OptimalReward == 0 {
		score.ScorePercent = 100
	} else {
		score.ScorePercent = score.TotalReward * 100 / solution.OptimalReward
	}
	return score, nil
}

// OrderTaskIDs returns ids sorted into the config's task order, which is the order
// solutions list them in. Ids not in the config keep their relative order at the end.
func OrderTaskIDs(config domain.DailyStrategyPuzzleConfig, taskIDs []string) []string {
	pos := make(map[string]int, len(config.Tasks))
	for i, task := range config.Tasks {
		pos[task.ID] = i
	}

	ordered := make([]string, 0, len(taskIDs))
	var rest []string
	for _, task := range config.Tasks {
		for _, id := range taskIDs {
			if id == task.ID {
				ordered = append(ordered, id)
				break
			}
		}
	}
	for _, id := range taskIDs {
		if _, ok := pos[id]; !ok {
			rest = append(rest, id)
		}
	}
	return append(ordered, rest...)
}
