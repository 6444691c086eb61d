package dailypuzzle

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/puzzle"
)

var (
	testNow = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	testDay = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
)

func newTestService(repo *MockRepository, cacheSize int) Service {
	return NewService(repo, cacheSize, time.Hour,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string { return "attempt-1" }),
	)
}

func storedPuzzle(day time.Time) *domain.DailyPuzzle {
	config, solution := puzzle.GenerateDailyStrategyPuzzle(day)
	return &domain.DailyPuzzle{Date: day, Config: config, Solution: solution, CreatedAt: day}
}

func TestGetDailyPuzzle_GeneratesAndStoresOnMiss(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, 8)
	ctx := context.Background()

	repo.On("GetPuzzle", mock.Anything, testDay).Return(nil, domain.ErrPuzzleNotFound).Once()
	repo.On("SavePuzzle", mock.Anything, mock.MatchedBy(func(p domain.DailyPuzzle) bool {
		return p.Date.Equal(testDay) && p.Config.Seed == "20250115"
	})).Return(true, nil).Once()

	p, err := svc.GetDailyPuzzle(ctx, testNow)
	require.NoError(t, err)

	assert.Equal(t, testDay, p.Date)
	assert.Equal(t, 12, p.Config.TimeBudget)
	assert.Equal(t, 183, p.Solution.OptimalReward)
	assert.Equal(t, [][]string{{"refactor-1", "launch-3"}}, p.Solution.OptimalTaskSets)
	assert.Equal(t, testNow, p.CreatedAt)
	repo.AssertExpectations(t)
}

func TestGetDailyPuzzle_ServesFromCache(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, 8)
	ctx := context.Background()

	stored := storedPuzzle(testDay)
	repo.On("GetPuzzle", mock.Anything, testDay).Return(stored, nil).Once()

	first, err := svc.GetDailyPuzzle(ctx, testNow)
	require.NoError(t, err)
	second, err := svc.GetDailyPuzzle(ctx, testDay.Add(time.Hour))
	require.NoError(t, err)

	assert.Same(t, first, second)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "SavePuzzle", mock.Anything, mock.Anything)
}

func TestGetDailyPuzzle_WithoutCacheHitsRepositoryEachTime(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, 0)
	ctx := context.Background()

	repo.On("GetPuzzle", mock.Anything, testDay).Return(storedPuzzle(testDay), nil).Twice()

	_, err := svc.GetDailyPuzzle(ctx, testNow)
	require.NoError(t, err)
	_, err = svc.GetDailyPuzzle(ctx, testNow)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestGetDailyPuzzle_LosesInsertRaceAndRereads(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, 8)
	ctx := context.Background()

	winner := storedPuzzle(testDay)
	winner.CreatedAt = testDay.Add(time.Minute)

	repo.On("GetPuzzle", mock.Anything, testDay).Return(nil, domain.ErrPuzzleNotFound).Once()
	repo.On("SavePuzzle", mock.Anything, mock.Anything).Return(false, nil).Once()
	repo.On("GetPuzzle", mock.Anything, testDay).Return(winner, nil).Once()

	p, err := svc.GetDailyPuzzle(ctx, testNow)
	require.NoError(t, err)
	assert.Same(t, winner, p)
	repo.AssertExpectations(t)
}

func TestGetDailyPuzzle_RefusesFutureDays(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, 8)

	_, err := svc.GetDailyPuzzle(context.Background(), testDay.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, domain.ErrPuzzleNotAvailable)
	repo.AssertNotCalled(t, "GetPuzzle", mock.Anything, mock.Anything)
}

func TestGetDailyPuzzle_RepositoryErrors(t *testing.T) {
	t.Run("load failure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, 8)
		repo.On("GetPuzzle", mock.Anything, testDay).Return(nil, domain.ErrDatabaseError)

		_, err := svc.GetDailyPuzzle(context.Background(), testNow)
		assert.ErrorIs(t, err, domain.ErrDatabaseError)
		assert.Contains(t, err.Error(), "failed to load puzzle")
	})

	t.Run("save failure is not cached", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, 8)
		repo.On("GetPuzzle", mock.Anything, testDay).Return(nil, domain.ErrPuzzleNotFound)
		repo.On("SavePuzzle", mock.Anything, mock.Anything).Return(false, errors.New("disk full"))

		_, err := svc.GetDailyPuzzle(context.Background(), testNow)
		require.Error(t, err)
		_, err = svc.GetDailyPuzzle(context.Background(), testNow)
		require.Error(t, err)
		repo.AssertNumberOfCalls(t, "SavePuzzle", 2)
	})
}

func TestGetTodayPuzzle_UsesServiceClock(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, 8)

	repo.On("GetPuzzle", mock.Anything, testDay).Return(storedPuzzle(testDay), nil).Once()

	p, err := svc.GetTodayPuzzle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15T00:00:00.000Z", p.Config.DateISO)
	assert.Equal(t, testDay, svc.Today())
}

func TestEnsurePuzzle(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, 8)

	repo.On("GetPuzzle", mock.Anything, testDay).Return(nil, domain.ErrPuzzleNotFound).Once()
	repo.On("SavePuzzle", mock.Anything, mock.Anything).Return(true, nil).Once()

	require.NoError(t, svc.EnsurePuzzle(context.Background(), testNow))
	// second call is served by the cache
	require.NoError(t, svc.EnsurePuzzle(context.Background(), testNow))
	repo.AssertExpectations(t)
}

func TestSolve_MatchesEngine(t *testing.T) {
	svc := newTestService(new(MockRepository), 0)
	config := domain.DailyStrategyPuzzleConfig{
		TimeBudget: 5,
		Tasks: []domain.StrategyTask{
			{ID: "a", Reward: 10, TimeCost: 3, Risk: domain.RiskLow},
			{ID: "b", Reward: 10, TimeCost: 3, Risk: domain.RiskLow},
			{ID: "c", Reward: 5, TimeCost: 2, Risk: domain.RiskHigh},
		},
	}

	solution := svc.Solve(context.Background(), config)
	assert.Equal(t, 15, solution.OptimalReward)
	assert.Equal(t, [][]string{{"a", "c"}, {"b", "c"}}, solution.OptimalTaskSets)
}

func TestSubmitAttempt(t *testing.T) {
	ctx := context.Background()

	t.Run("optimal selection is recorded in task order", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, 8)
		repo.On("GetPuzzle", mock.Anything, testDay).Return(storedPuzzle(testDay), nil)

		var recorded domain.PuzzleAttempt
		repo.On("CreateAttempt", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { recorded = args.Get(1).(domain.PuzzleAttempt) }).
			Return(nil).Once()

		attempt, err := svc.SubmitAttempt(ctx, "  player-1 ", testNow, []string{"launch-3", "refactor-1"})
		require.NoError(t, err)

		assert.Equal(t, "attempt-1", attempt.ID)
		assert.Equal(t, "player-1", attempt.UserID)
		assert.Equal(t, testDay, attempt.Date)
		assert.Equal(t, []string{"refactor-1", "launch-3"}, attempt.TaskIDs)
		assert.Equal(t, 183, attempt.TotalReward)
		assert.Equal(t, 12, attempt.TotalTime)
		assert.True(t, attempt.WithinBudget)
		assert.True(t, attempt.IsOptimal)
		assert.Equal(t, 100, attempt.ScorePercent)
		assert.Equal(t, *attempt, recorded)
	})

	t.Run("suboptimal selection", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, 8)
		repo.On("GetPuzzle", mock.Anything, testDay).Return(storedPuzzle(testDay), nil)
		repo.On("CreateAttempt", mock.Anything, mock.Anything).Return(nil)

		attempt, err := svc.SubmitAttempt(ctx, "player-1", testNow, []string{"scout-0", "outreach-5"})
		require.NoError(t, err)
		assert.Equal(t, 73, attempt.TotalReward)
		assert.False(t, attempt.IsOptimal)
		assert.Equal(t, 39, attempt.ScorePercent)
	})

	t.Run("over budget selection scores zero", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, 8)
		repo.On("GetPuzzle", mock.Anything, testDay).Return(storedPuzzle(testDay), nil)
		repo.On("CreateAttempt", mock.Anything, mock.Anything).Return(nil)

		attempt, err := svc.SubmitAttempt(ctx, "player-1", testNow, []string{"launch-3", "audit-4"})
		require.NoError(t, err)
		assert.False(t, attempt.WithinBudget)
		assert.Equal(t, 0, attempt.ScorePercent)
	})

	t.Run("empty user id", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, 8)

		_, err := svc.SubmitAttempt(ctx, "   ", testNow, []string{"scout-0"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "GetPuzzle", mock.Anything, mock.Anything)
	})

	t.Run("unknown task", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, 8)
		repo.On("GetPuzzle", mock.Anything, testDay).Return(storedPuzzle(testDay), nil)

		_, err := svc.SubmitAttempt(ctx, "player-1", testNow, []string{"pitch-9"})
		assert.ErrorIs(t, err, domain.ErrUnknownTask)
		repo.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
	})

	t.Run("duplicate task", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, 8)
		repo.On("GetPuzzle", mock.Anything, testDay).Return(storedPuzzle(testDay), nil)

		_, err := svc.SubmitAttempt(ctx, "player-1", testNow, []string{"scout-0", "scout-0"})
		assert.ErrorIs(t, err, domain.ErrDuplicateTask)
	})

	t.Run("second attempt", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, 8)
		repo.On("GetPuzzle", mock.Anything, testDay).Return(storedPuzzle(testDay), nil)
		repo.On("CreateAttempt", mock.Anything, mock.Anything).Return(domain.ErrAlreadySubmitted)

		_, err := svc.SubmitAttempt(ctx, "player-1", testNow, []string{"scout-0"})
		assert.ErrorIs(t, err, domain.ErrAlreadySubmitted)
	})

	t.Run("future day", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, 8)

		_, err := svc.SubmitAttempt(ctx, "player-1", testNow.AddDate(0, 0, 2), []string{"scout-0"})
		assert.ErrorIs(t, err, domain.ErrPuzzleNotAvailable)
	})
}

func TestGetAttempt(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, 8)
	ctx := context.Background()

	repo.On("GetAttempt", mock.Anything, "player-1", testDay).Return(nil, nil).Once()

	attempt, err := svc.GetAttempt(ctx, " player-1", testNow)
	require.NoError(t, err)
	assert.Nil(t, attempt)

	_, err = svc.GetAttempt(ctx, "", testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertExpectations(t)
}

func TestGetLeaderboard_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, DefaultLeaderboardLimit},
		{"negative", -3, DefaultLeaderboardLimit},
		{"within bounds", 25, 25},
		{"capped", 1000, MaxLeaderboardLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := newTestService(repo, 8)
			entries := []domain.PuzzleAttempt{{UserID: "player-1", TotalReward: 183}}
			repo.On("GetLeaderboard", mock.Anything, testDay, tt.want).Return(entries, nil).Once()

			got, err := svc.GetLeaderboard(context.Background(), testNow, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, entries, got)
			repo.AssertExpectations(t)
		})
	}
}

func TestGetLeaderboard_RefusesFutureDays(t *testing.T) {
	svc := newTestService(new(MockRepository), 8)

	_, err := svc.GetLeaderboard(context.Background(), testDay.AddDate(0, 1, 0), 10)
	assert.ErrorIs(t, err, domain.ErrPuzzleNotAvailable)
}

func TestGetDailyPuzzle_CancelledCallerDoesNotFailOthers(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo, 8)

	started := make(chan struct{})
	release := make(chan struct{})
	var startOnce sync.Once
	loadErrs := make(chan error, 4)

	repo.On("GetPuzzle", mock.Anything, testDay).Run(func(args mock.Arguments) {
		startOnce.Do(func() { close(started) })
		<-release
		loadErrs <- args.Get(0).(context.Context).Err()
	}).Return(nil, domain.ErrPuzzleNotFound)
	repo.On("SavePuzzle", mock.Anything, mock.Anything).Return(true, nil)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := svc.GetDailyPuzzle(ctxA, testNow)
		errA <- err
	}()
	<-started

	type result struct {
		p   *domain.DailyPuzzle
		err error
	}
	resB := make(chan result, 1)
	go func() {
		p, err := svc.GetDailyPuzzle(context.Background(), testNow)
		resB <- result{p, err}
	}()

	cancelA()
	select {
	case err := <-errA:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled caller should return promptly")
	}

	close(release)
	select {
	case res := <-resB:
		require.NoError(t, res.err)
		assert.Equal(t, 183, res.p.Solution.OptimalReward)
	case <-time.After(2 * time.Second):
		t.Fatal("second caller should receive the puzzle")
	}

	assert.NoError(t, <-loadErrs, "shared load must not see the first caller's cancellation")
}
