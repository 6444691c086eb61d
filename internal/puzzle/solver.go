package puzzle

import "github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"

// ComputeOptimalSets enumerates every subset of config.Tasks and returns the best reward
// within the time budget together with all subsets reaching it, in ascending mask order.
// Cost is O(2^n * n); callers must keep the task count small.
func ComputeOptimalSets(config domain.DailyStrategyPuzzleConfig) domain.DailyStrategyPuzzleSolution {
	n := len(config.Tasks)
	best := 0
	sets := [][]string{}

	for mask := 0; mask < 1<<n; mask++ {
		reward, timeCost := 0, 0
		ids := []string{}
		for i, task := range config.Tasks {
			if mask&(1<<i) == 0 {
				continue
			}
			reward += task.Reward
			timeCost += task.TimeCost
			ids = append(ids, task.ID)
		}

		if timeCost > config.TimeBudget {
			continue
		}

		switch {
		case reward > best:
			best = reward
			sets = [][]string{ids}
		case reward == best:
			sets = append(sets, ids)
		}
	}

	return domain.DailyStrategyPuzzleSolution{
		OptimalReward:   best,
		OptimalTaskSets: sets,
	}
}
