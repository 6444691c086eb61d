package dailypuzzle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/logger"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/metrics"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/puzzle"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/repository"
)

// Service serves the daily strategy puzzle and scores attempts against it.
// Returned puzzles are shared with the cache and must be treated as read-only.
type Service interface {
	GetDailyPuzzle(ctx context.Context, date time.Time) (*domain.DailyPuzzle, error)
	GetTodayPuzzle(ctx context.Context) (*domain.DailyPuzzle, error)
	EnsurePuzzle(ctx context.Context, date time.Time) error
	Solve(ctx context.Context, config domain.DailyStrategyPuzzleConfig) domain.DailyStrategyPuzzleSolution

	SubmitAttempt(ctx context.Context, userID string, date time.Time, taskIDs []string) (*domain.PuzzleAttempt, error)
	GetAttempt(ctx context.Context, userID string, date time.Time) (*domain.PuzzleAttempt, error)
	GetLeaderboard(ctx context.Context, date time.Time, limit int) ([]domain.PuzzleAttempt, error)

	// Today is the current UTC calendar day according to the service clock
	Today() time.Time
}

// Option customizes a service
type Option func(*service)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithIDGenerator replaces the attempt id generator
func WithIDGenerator(newID func() string) Option {
	return func(s *service) { s.newID = newID }
}

type service struct {
	repo  repository.Puzzle
	cache *puzzleCache
	group singleflight.Group
	now   func() time.Time
	newID func() string
}

// NewService creates a daily puzzle service. A non-positive cacheSize disables caching.
func NewService(repo repository.Puzzle, cacheSize int, cacheTTL time.Duration, opts ...Option) Service {
	s := &service{
		repo:  repo,
		cache: newPuzzleCache(cacheSize, cacheTTL),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		logger.FromContext(context.Background()).Warn(LogMsgCacheDisabled)
	}
	return s
}

func (s *service) Today() time.Time {
	return puzzle.StartOfDayUTC(s.now())
}

// GetDailyPuzzle returns the stored puzzle for date's UTC day, generating and storing it on first use.
// Days after today are refused so upcoming puzzles cannot be scouted.
func (s *service) GetDailyPuzzle(ctx context.Context, date time.Time) (*domain.DailyPuzzle, error) {
	day := puzzle.StartOfDayUTC(date)
	if day.After(s.Today()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPuzzleNotAvailable, day.Format(domain.DateLayout))
	}

	if p, ok := s.cache.Get(day); ok {
		metrics.PuzzleCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return p, nil
	}
	metrics.PuzzleCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	// The shared load outlives any single caller; each caller only waits on its own ctx
	ch := s.group.DoChan(cacheKey(day), func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), LoadTimeout)
		defer cancel()
		p, err := s.loadOrGenerate(loadCtx, day)
		if err != nil {
			return nil, err
		}
		s.cache.Set(p)
		return p, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.DailyPuzzle), nil
	}
}

func (s *service) GetTodayPuzzle(ctx context.Context) (*domain.DailyPuzzle, error) {
	return s.GetDailyPuzzle(ctx, s.now())
}

// EnsurePuzzle makes sure date's puzzle is stored and cached
func (s *service) EnsurePuzzle(ctx context.Context, date time.Time) error {
	_, err := s.GetDailyPuzzle(ctx, date)
	return err
}

// loadOrGenerate reads the day from storage, generating it when missing.
// When another instance stores the day first, its copy wins.
func (s *service) loadOrGenerate(ctx context.Context, day time.Time) (*domain.DailyPuzzle, error) {
	log := logger.FromContext(ctx)

	stored, err := s.repo.GetPuzzle(ctx, day)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, domain.ErrPuzzleNotFound) {
		return nil, fmt.Errorf("failed to load puzzle: %w", err)
	}

	config := puzzle.GenerateConfig(day)
	solution := s.Solve(ctx, config)
	generated := &domain.DailyPuzzle{
		Date:      day,
		Config:    config,
		Solution:  solution,
		CreatedAt: s.now().UTC(),
	}

	inserted, err := s.repo.SavePuzzle(ctx, *generated)
	if err != nil {
		return nil, fmt.Errorf("failed to save puzzle: %w", err)
	}
	metrics.PuzzlesGenerated.WithLabelValues(fmt.Sprint(inserted)).Inc()

	if !inserted {
		log.Info(LogMsgPuzzleAlreadyStored, "date", day.Format(domain.DateLayout))
		stored, err := s.repo.GetPuzzle(ctx, day)
		if err != nil {
			return nil, fmt.Errorf("failed to reload puzzle: %w", err)
		}
		return stored, nil
	}

	log.Info(LogMsgPuzzleGenerated,
		"date", day.Format(domain.DateLayout),
		"seed", config.Seed,
		"time_budget", config.TimeBudget,
		"optimal_reward", solution.OptimalReward,
		"optimal_sets", len(solution.OptimalTaskSets))
	return generated, nil
}

// Solve runs the exhaustive solver on any config. Task count bounds are the caller's concern.
func (s *service) Solve(ctx context.Context, config domain.DailyStrategyPuzzleConfig) domain.DailyStrategyPuzzleSolution {
	start := time.Now()
	solution := puzzle.ComputeOptimalSets(config)
	elapsed := time.Since(start)

	metrics.PuzzleSolveDuration.Observe(elapsed.Seconds())
	logger.FromContext(ctx).Debug(LogMsgPuzzleSolved,
		"tasks", len(config.Tasks),
		"optimal_reward", solution.OptimalReward,
		"duration", elapsed)
	return solution
}

// SubmitAttempt scores a player's selection and records it. Each user gets one attempt per day.
func (s *service) SubmitAttempt(ctx context.Context, userID string, date time.Time, taskIDs []string) (*domain.PuzzleAttempt, error) {
	log := logger.FromContext(ctx)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	p, err := s.GetDailyPuzzle(ctx, date)
	if err != nil {
		return nil, err
	}

	score, err := puzzle.ScoreSelection(p.Config, p.Solution, taskIDs)
	if err != nil {
		log.Info(LogMsgAttemptRejected, "user_id", userID, "error", err)
		return nil, err
	}

	attempt := &domain.PuzzleAttempt{
		ID:           s.newID(),
		UserID:       userID,
		Date:         p.Date,
		TaskIDs:      puzzle.OrderTaskIDs(p.Config, taskIDs),
		TotalReward:  score.TotalReward,
		TotalTime:    score.TotalTime,
		WithinBudget: score.WithinBudget,
		IsOptimal:    score.IsOptimal,
		ScorePercent: score.ScorePercent,
		SubmittedAt:  s.now().UTC(),
	}

	if err := s.repo.CreateAttempt(ctx, *attempt); err != nil {
		if errors.Is(err, domain.ErrAlreadySubmitted) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	metrics.PuzzleAttempts.WithLabelValues(attemptOutcome(score)).Inc()
	metrics.PuzzleAttemptScore.Observe(float64(score.ScorePercent))

	log.Info(LogMsgAttemptSubmitted,
		"user_id", userID,
		"date", p.Date.Format(domain.DateLayout),
		"reward", score.TotalReward,
		"optimal", score.IsOptimal,
		"score_percent", score.ScorePercent)
	return attempt, nil
}

// GetAttempt returns the user's attempt for the day, or nil when there is none
func (s *service) GetAttempt(ctx context.Context, userID string, date time.Time) (*domain.PuzzleAttempt, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	return s.repo.GetAttempt(ctx, strings.TrimSpace(userID), puzzle.StartOfDayUTC(date))
}

// GetLeaderboard returns the best in-budget attempts for a day
func (s *service) GetLeaderboard(ctx context.Context, date time.Time, limit int) ([]domain.PuzzleAttempt, error) {
	day := puzzle.StartOfDayUTC(date)
	if day.After(s.Today()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPuzzleNotAvailable, day.Format(domain.DateLayout))
	}

	switch {
	case limit <= 0:
		limit = DefaultLeaderboardLimit
	case limit > MaxLeaderboardLimit:
		limit = MaxLeaderboardLimit
	}

	return s.repo.GetLeaderboard(ctx, day, limit)
}

func attemptOutcome(score puzzle.Score) string {
	switch {
	case !score.WithinBudget:
		return metrics.OutcomeOverBudget
	case score.IsOptimal:
		return metrics.OutcomeOptimal
	default:
		return metrics.OutcomeSuboptimal
	}
}
