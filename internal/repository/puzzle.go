package repository

import (
	"context"
	"time"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
)

// Puzzle persists generated daily puzzles and the attempts made against them.
// Dates are UTC calendar days; implementations ignore the time-of-day component.
type Puzzle interface {
	// GetPuzzle returns domain.ErrPuzzleNotFound when the day has not been stored
	GetPuzzle(ctx context.Context, date time.Time) (*domain.DailyPuzzle, error)
	// SavePuzzle inserts the puzzle; it reports false if the day was already stored
	SavePuzzle(ctx context.Context, puzzle domain.DailyPuzzle) (bool, error)

	// CreateAttempt returns domain.ErrAlreadySubmitted on a second attempt for the same user and day
	CreateAttempt(ctx context.Context, attempt domain.PuzzleAttempt) error
	GetAttempt(ctx context.Context, userID string, date time.Time) (*domain.PuzzleAttempt, error)
	GetLeaderboard(ctx context.Context, date time.Time, limit int) ([]domain.PuzzleAttempt, error)
}
