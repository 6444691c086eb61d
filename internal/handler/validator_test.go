package handler

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
)

func TestValidator_SubmitAttemptRequest(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		req     SubmitAttemptRequest
		wantErr bool
	}{
		// Best case
		{"valid", SubmitAttemptRequest{UserID: "player-1", TaskIDs: []string{"scout-0"}}, false},
		{"valid with date", SubmitAttemptRequest{UserID: "player-1", Date: "2025-01-15"}, false},

		// Boundary
		{"empty selection allowed", SubmitAttemptRequest{UserID: "player-1", TaskIDs: []string{}}, false},
		{"user id at max length", SubmitAttemptRequest{UserID: strings.Repeat("a", 100)}, false},
		{"user id too long", SubmitAttemptRequest{UserID: strings.Repeat("a", 101)}, true},

		// Edge
		{"unicode user id", SubmitAttemptRequest{UserID: "ロボット"}, false},
		{"tab in user id", SubmitAttemptRequest{UserID: "player\t1"}, true},

		// Invalid
		{"missing user id", SubmitAttemptRequest{}, true},
		{"impossible date", SubmitAttemptRequest{UserID: "p", Date: "2025-02-30"}, true},
		{"too many tasks", SubmitAttemptRequest{UserID: "p", TaskIDs: make([]string, 21)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non-validation error", func(t *testing.T) {
		errs := FormatValidationError(errors.New("boom"))
		assert.Equal(t, map[string]string{"error": "Invalid request format"}, errs)
	})

	t.Run("uses json field paths", func(t *testing.T) {
		err := GetValidator().ValidateStruct(SubmitAttemptRequest{Date: "nope"})
		require.Error(t, err)

		errs := FormatValidationError(err)
		assert.Equal(t, "This field is required", errs["user_id"])
		assert.Equal(t, "Must be a date formatted YYYY-MM-DD", errs["date"])
		assert.NotContains(t, errs, "UserID")
	})
}

func TestGetValidator_ConcurrentFirstUse(t *testing.T) {
	const callers = 8

	got := make([]*Validator, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = GetValidator()
		}(i)
	}
	wg.Wait()

	for _, v := range got {
		require.NotNil(t, v)
		assert.Same(t, got[0], v)
	}
}

func TestValidator_RiskTier(t *testing.T) {
	task := func(risk domain.RiskTier) domain.DailyStrategyPuzzleConfig {
		return domain.DailyStrategyPuzzleConfig{
			TimeBudget: 5,
			Tasks:      []domain.StrategyTask{{ID: "a", Reward: 1, TimeCost: 1, Risk: risk}},
		}
	}

	for _, risk := range []domain.RiskTier{domain.RiskLow, domain.RiskMedium, domain.RiskHigh} {
		assert.NoError(t, GetValidator().ValidateStruct(task(risk)), string(risk))
	}

	err := GetValidator().ValidateStruct(task("extreme"))
	require.Error(t, err)
	assert.Equal(t, "Must be one of: low medium high", FormatValidationError(err)["tasks[0].risk"])
}
