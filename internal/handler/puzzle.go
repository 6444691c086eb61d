package handler

import (
	"net/http"
	"time"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/dailypuzzle"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/logger"
)

// DailyPuzzleResponse is the public view of a day's puzzle. The solution is
// withheld for the current day unless the caller has already submitted.
type DailyPuzzleResponse struct {
	Date     string                              `json:"date"`
	Puzzle   domain.DailyStrategyPuzzleConfig    `json:"puzzle"`
	Solution *domain.DailyStrategyPuzzleSolution `json:"solution,omitempty"`
	Attempt  *domain.PuzzleAttempt               `json:"attempt,omitempty"`
}

// SubmitAttemptRequest is the body of POST /api/v1/puzzle/submit
type SubmitAttemptRequest struct {
	UserID  string   `json:"user_id" validate:"required,max=100,nocontrol"`
	Date    string   `json:"date" validate:"omitempty,puzzledate"`
	TaskIDs []string `json:"task_ids" validate:"max=20,dive,required,max=64"`
}

// SubmitAttemptResponse returns the scored attempt together with the day's solution
type SubmitAttemptResponse struct {
	Attempt  domain.PuzzleAttempt               `json:"attempt"`
	Solution domain.DailyStrategyPuzzleSolution `json:"solution"`
}

// LeaderboardEntry is one ranked attempt
type LeaderboardEntry struct {
	Rank         int       `json:"rank"`
	UserID       string    `json:"user_id"`
	TotalReward  int       `json:"total_reward"`
	TotalTime    int       `json:"total_time"`
	ScorePercent int       `json:"score_percent"`
	IsOptimal    bool      `json:"is_optimal"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// LeaderboardResponse lists the best attempts for a day
type LeaderboardResponse struct {
	Date    string             `json:"date"`
	Entries []LeaderboardEntry `json:"entries"`
}

type PuzzleHandler struct {
	service dailypuzzle.Service
}

func NewPuzzleHandler(service dailypuzzle.Service) *PuzzleHandler {
	return &PuzzleHandler{service: service}
}

// HandleGetDailyPuzzle returns the puzzle for a day (today by default)
// @Summary Get daily strategy puzzle
// @Description Returns the puzzle for the given UTC day. Past days include the optimal solution; today's is revealed after the caller submits.
// @Tags puzzle
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD (defaults to today, UTC)"
// @Param user_id query string false "Include this player's attempt"
// @Success 200 {object} DailyPuzzleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/puzzle/daily [get]
func (h *PuzzleHandler) HandleGetDailyPuzzle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	today := h.service.Today()
	day, ok := GetDateQueryParam(w, r, today)
	if !ok {
		return
	}

	p, err := h.service.GetDailyPuzzle(ctx, day)
	if err != nil {
		respondServiceError(w, r, OpGetDailyPuzzle, err)
		return
	}

	resp := DailyPuzzleResponse{
		Date:   p.Date.Format(domain.DateLayout),
		Puzzle: p.Config,
	}

	if userID := r.URL.Query().Get("user_id"); userID != "" {
		attempt, err := h.service.GetAttempt(ctx, userID, p.Date)
		if err != nil {
			respondServiceError(w, r, OpGetDailyPuzzle, err)
			return
		}
		resp.Attempt = attempt
	}

	if p.Date.Before(today) || resp.Attempt != nil {
		solution := p.Solution
		resp.Solution = &solution
	}

	respondJSON(w, http.StatusOK, resp)
}

// HandleSolve runs the optimal solver on a caller-supplied puzzle
// @Summary Solve a strategy puzzle
// @Description Enumerates every subset of up to 20 tasks and returns the best reward and all tied task sets
// @Tags puzzle
// @Accept json
// @Produce json
// @Param request body domain.DailyStrategyPuzzleConfig true "Puzzle to solve"
// @Success 200 {object} domain.DailyStrategyPuzzleSolution
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/puzzle/solve [post]
func (h *PuzzleHandler) HandleSolve(w http.ResponseWriter, r *http.Request) {
	var req domain.DailyStrategyPuzzleConfig
	if err := DecodeAndValidateRequest(r, w, &req, OpSolvePuzzle); err != nil {
		return
	}

	solution := h.service.Solve(r.Context(), req)
	respondJSON(w, http.StatusOK, solution)
}

// HandleSubmitAttempt scores and records a player's selection
// @Summary Submit a puzzle attempt
// @Description Scores the selected tasks against the day's optimum. One attempt per player per day.
// @Tags puzzle
// @Accept json
// @Produce json
// @Param request body SubmitAttemptRequest true "Attempt"
// @Success 201 {object} SubmitAttemptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/puzzle/submit [post]
func (h *PuzzleHandler) HandleSubmitAttempt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req SubmitAttemptRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSubmitAttempt); err != nil {
		return
	}

	day, err := parseDate(req.Date)
	if err != nil {
		respondServiceError(w, r, OpSubmitAttempt, err)
		return
	}
	if day.IsZero() {
		day = h.service.Today()
	}

	log.Debug("Submit attempt", "user_id", req.UserID, "date", day.Format(domain.DateLayout), "tasks", len(req.TaskIDs))

	attempt, err := h.service.SubmitAttempt(ctx, req.UserID, day, req.TaskIDs)
	if err != nil {
		respondServiceError(w, r, OpSubmitAttempt, err)
		return
	}

	p, err := h.service.GetDailyPuzzle(ctx, attempt.Date)
	if err != nil {
		respondServiceError(w, r, OpSubmitAttempt, err)
		return
	}

	respondJSON(w, http.StatusCreated, SubmitAttemptResponse{
		Attempt:  *attempt,
		Solution: p.Solution,
	})
}

// HandleGetLeaderboard lists the best in-budget attempts for a day
// @Summary Daily puzzle leaderboard
// @Tags puzzle
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD (defaults to today, UTC)"
// @Param limit query int false "Maximum entries (default 10, max 100)"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/puzzle/leaderboard [get]
func (h *PuzzleHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	day, ok := GetDateQueryParam(w, r, h.service.Today())
	if !ok {
		return
	}
	limit, ok := GetLimitQueryParam(w, r)
	if !ok {
		return
	}

	attempts, err := h.service.GetLeaderboard(r.Context(), day, limit)
	if err != nil {
		respondServiceError(w, r, OpGetLeaderboard, err)
		return
	}

	entries := make([]LeaderboardEntry, 0, len(attempts))
	for i, a := range attempts {
		entries = append(entries, LeaderboardEntry{
			Rank:         i + 1,
			UserID:       a.UserID,
			TotalReward:  a.TotalReward,
			TotalTime:    a.TotalTime,
			ScorePercent: a.ScorePercent,
			IsOptimal:    a.IsOptimal,
			SubmittedAt:  a.SubmittedAt,
		})
	}

	respondJSON(w, http.StatusOK, LeaderboardResponse{
		Date:    day.Format(domain.DateLayout),
		Entries: entries,
	})
}
