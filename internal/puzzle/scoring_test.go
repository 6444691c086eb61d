package puzzle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
)

func TestScoreSelection(t *testing.T) {
	config, solution := GenerateDailyStrategyPuzzle(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		ids      []string
		expected Score
	}{
		{
			name:     "optimal",
			ids:      []string{"launch-3", "refactor-1"},
			expected: Score{TotalReward: 183, TotalTime: 12, WithinBudget: true, IsOptimal: true, ScorePercent: 100},
		},
		{
			name:     "feasible but suboptimal",
			ids:      []string{"scout-0", "outreach-5"},
			expected: Score{TotalReward: 73, TotalTime: 6, WithinBudget: true, ScorePercent: 39},
		},
		{
			name:     "over budget",
			ids:      []string{"launch-3", "audit-4"},
			expected: Score{TotalReward: 194, TotalTime: 13},
		},
		{
			name:     "empty selection",
			ids:      nil,
			expected: Score{WithinBudget: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := ScoreSelection(config, solution, tt.ids)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, score)
		})
	}
}

func TestScoreSelection_Errors(t *testing.T) {
	config, solution := GenerateDailyStrategyPuzzle(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	_, err := ScoreSelection(config, solution, []string{"scout-0", "nope-9"})
	assert.ErrorIs(t, err, domain.ErrUnknownTask)
	assert.Contains(t, err.Error(), "nope-9")

	_, err = ScoreSelection(config, solution, []string{"scout-0", "scout-0"})
	assert.ErrorIs(t, err, domain.ErrDuplicateTask)
}

func TestScoreSelection_ZeroOptimum(t *testing.T) {
	config := domain.DailyStrategyPuzzleConfig{TimeBudget: 1, Tasks: []domain.StrategyTask{task("a", 5, 3)}}
	solution := ComputeOptimalSets(config)

	score, err := ScoreSelection(config, solution, nil)
	require.NoError(t, err)
	assert.True(t, score.IsOptimal)
	assert.Equal(t, 100, score.ScorePercent)
}

func TestOrderTaskIDs(t *testing.T) {
	config := domain.DailyStrategyPuzzleConfig{Tasks: []domain.StrategyTask{task("a", 1, 1), task("b", 1, 1), task("c", 1, 1)}}

	assert.Equal(t, []string{"a", "c"}, OrderTaskIDs(config, []string{"c", "a"}))
	assert.Equal(t, []string{"b", "x"}, OrderTaskIDs(config, []string{"x", "b"}))
	assert.Empty(t, OrderTaskIDs(config, nil))
}
