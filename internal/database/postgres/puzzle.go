package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
)

type PuzzleRepository struct {
	db *pgxpool.Pool
}

func NewPuzzleRepository(db *pgxpool.Pool) *PuzzleRepository {
	return &PuzzleRepository{db: db}
}

// GetPuzzle loads the stored puzzle for a calendar day
func (r *PuzzleRepository) GetPuzzle(ctx context.Context, date time.Time) (*domain.DailyPuzzle, error) {
	var (
		day          time.Time
		configJSON   []byte
		solutionJSON []byte
		createdAt    time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT puzzle_date, config, solution, created_at
		 FROM daily_puzzles WHERE puzzle_date = $1`,
		calendarDay(date),
	).Scan(&day, &configJSON, &solutionJSON, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPuzzleNotFound
	}
	if err != nil {
		return nil, wrapDBError("failed to get puzzle", err)
	}

	p := &domain.DailyPuzzle{Date: calendarDay(day), CreatedAt: createdAt}
	if err := json.Unmarshal(configJSON, &p.Config); err != nil {
		return nil, fmt.Errorf("failed to decode puzzle config: %w", err)
	}
	if err := json.Unmarshal(solutionJSON, &p.Solution); err != nil {
		return nil, fmt.Errorf("failed to decode puzzle solution: %w", err)
	}
	return p, nil
}

// SavePuzzle stores a puzzle unless the day already has one
func (r *PuzzleRepository) SavePuzzle(ctx context.Context, p domain.DailyPuzzle) (bool, error) {
	configJSON, err := json.Marshal(p.Config)
	if err != nil {
		return false, fmt.Errorf("failed to encode puzzle config: %w", err)
	}
	solutionJSON, err := json.Marshal(p.Solution)
	if err != nil {
		return false, fmt.Errorf("failed to encode puzzle solution: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`INSERT INTO daily_puzzles (puzzle_date, seed, version, config, solution, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (puzzle_date) DO NOTHING`,
		calendarDay(p.Date), p.Config.Seed, p.Config.Version, configJSON, solutionJSON, p.CreatedAt,
	)
	if err != nil {
		return false, wrapDBError("failed to save puzzle", err)
	}
	return tag.RowsAffected() == 1, nil
}

// CreateAttempt records a scored submission
func (r *PuzzleRepository) CreateAttempt(ctx context.Context, a domain.PuzzleAttempt) error {
	attemptID, err := uuid.Parse(a.ID)
	if err != nil {
		return fmt.Errorf("invalid attempt id: %w", err)
	}
	taskIDs, err := json.Marshal(a.TaskIDs)
	if err != nil {
		return fmt.Errorf("failed to encode task ids: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO puzzle_attempts
		   (attempt_id, user_id, puzzle_date, task_ids, total_reward, total_time,
		    within_budget, is_optimal, score_percent, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		attemptID, a.UserID, calendarDay(a.Date), taskIDs, a.TotalReward, a.TotalTime,
		a.WithinBudget, a.IsOptimal, a.ScorePercent, a.SubmittedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrAlreadySubmitted
	}
	if err != nil {
		return wrapDBError("failed to create attempt", err)
	}
	return nil
}

// GetAttempt returns nil without error when the user has not played that day
func (r *PuzzleRepository) GetAttempt(ctx context.Context, userID string, date time.Time) (*domain.PuzzleAttempt, error) {
	row := r.db.QueryRow(ctx,
		`SELECT attempt_id, user_id, puzzle_date, task_ids, total_reward, total_time,
		        within_budget, is_optimal, score_percent, submitted_at
		 FROM puzzle_attempts WHERE user_id = $1 AND puzzle_date = $2`,
		userID, calendarDay(date),
	)
	a, err := scanAttempt(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapDBError("failed to get attempt", err)
	}
	return a, nil
}

// GetLeaderboard lists the best in-budget attempts for a day, earliest first on ties.
// limit is applied as given; callers bound it.
func (r *PuzzleRepository) GetLeaderboard(ctx context.Context, date time.Time, limit int) ([]domain.PuzzleAttempt, error) {
	rows, err := r.db.Query(ctx,
		`SELECT attempt_id, user_id, puzzle_date, task_ids, total_reward, total_time,
		        within_budget, is_optimal, score_percent, submitted_at
		 FROM puzzle_attempts
		 WHERE puzzle_date = $1 AND within_budget
		 ORDER BY total_reward DESC, submitted_at ASC
		 LIMIT $2`,
		calendarDay(date), limit,
	)
	if err != nil {
		return nil, wrapDBError("failed to get leaderboard", err)
	}
	defer rows.Close()

	attempts := []domain.PuzzleAttempt{}
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, wrapDBError("failed to scan attempt", err)
		}
		attempts = append(attempts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("failed to read leaderboard", err)
	}
	return attempts, nil
}

func scanAttempt(row pgx.Row) (*domain.PuzzleAttempt, error) {
	var (
		a         domain.PuzzleAttempt
		attemptID uuid.UUID
		taskIDs   []byte
	)
	if err := row.Scan(&attemptID, &a.UserID, &a.Date, &taskIDs, &a.TotalReward, &a.TotalTime,
		&a.WithinBudget, &a.IsOptimal, &a.ScorePercent, &a.SubmittedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(taskIDs, &a.TaskIDs); err != nil {
		return nil, fmt.Errorf("failed to decode task ids: %w", err)
	}
	a.ID = attemptID.String()
	a.Date = calendarDay(a.Date)
	return &a, nil
}
