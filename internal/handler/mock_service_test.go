package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
)

// MockPuzzleService mocks dailypuzzle.Service
type MockPuzzleService struct {
	mock.Mock
}

func (m *MockPuzzleService) GetDailyPuzzle(ctx context.Context, date time.Time) (*domain.DailyPuzzle, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyPuzzle), args.Error(1)
}

func (m *MockPuzzleService) GetTodayPuzzle(ctx context.Context) (*domain.DailyPuzzle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyPuzzle), args.Error(1)
}

func (m *MockPuzzleService) EnsurePuzzle(ctx context.Context, date time.Time) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

func (m *MockPuzzleService) Solve(ctx context.Context, config domain.DailyStrategyPuzzleConfig) domain.DailyStrategyPuzzleSolution {
	args := m.Called(ctx, config)
	return args.Get(0).(domain.DailyStrategyPuzzleSolution)
}

func (m *MockPuzzleService) SubmitAttempt(ctx context.Context, userID string, date time.Time, taskIDs []string) (*domain.PuzzleAttempt, error) {
	args := m.Called(ctx, userID, date, taskIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PuzzleAttempt), args.Error(1)
}

func (m *MockPuzzleService) GetAttempt(ctx context.Context, userID string, date time.Time) (*domain.PuzzleAttempt, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PuzzleAttempt), args.Error(1)
}

func (m *MockPuzzleService) GetLeaderboard(ctx context.Context, date time.Time, limit int) ([]domain.PuzzleAttempt, error) {
	args := m.Called(ctx, date, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PuzzleAttempt), args.Error(1)
}

func (m *MockPuzzleService) Today() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}
