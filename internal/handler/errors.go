package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgInvalidLimit     = "Invalid limit parameter"
	ErrMsgInvalidDateParam = "Invalid date parameter. Use YYYY-MM-DD."
)

// Operation names used in logs
const (
	OpGetDailyPuzzle = "Get daily puzzle"
	OpSolvePuzzle    = "Solve puzzle"
	OpSubmitAttempt  = "Submit attempt"
	OpGetLeaderboard = "Get leaderboard"
)
