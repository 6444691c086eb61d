package dailypuzzle

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
)

// MockRepository is a mock implementation of repository.Puzzle
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPuzzle(ctx context.Context, date time.Time) (*domain.DailyPuzzle, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyPuzzle), args.Error(1)
}

func (m *MockRepository) SavePuzzle(ctx context.Context, puzzle domain.DailyPuzzle) (bool, error) {
	args := m.Called(ctx, puzzle)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreateAttempt(ctx context.Context, attempt domain.PuzzleAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockRepository) GetAttempt(ctx context.Context, userID string, date time.Time) (*domain.PuzzleAttempt, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PuzzleAttempt), args.Error(1)
}

func (m *MockRepository) GetLeaderboard(ctx context.Context, date time.Time, limit int) ([]domain.PuzzleAttempt, error) {
	args := m.Called(ctx, date, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PuzzleAttempt), args.Error(1)
}
