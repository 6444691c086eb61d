package worker

import "time"

// Log messages for the daily puzzle worker
const (
	LogMsgPuzzleWorkerStandby   = "Daily puzzle worker standing by"
	LogMsgPuzzleWorkerApproach  = "Daily puzzle rollover scheduled"
	LogMsgPuzzleEnsureStarting  = "Ensuring daily puzzle"
	LogMsgPuzzleEnsureCompleted = "Daily puzzle ready"
	LogMsgPuzzleEnsureFailed    = "Failed to ensure daily puzzle"
	LogMsgPuzzleRetryScheduled  = "Daily puzzle retry scheduled"
	LogMsgPuzzleWorkerStopping  = "Shutting down daily puzzle worker"
	LogMsgPuzzleWorkerStopped   = "Daily puzzle worker shutdown complete"
	LogMsgPuzzleWorkerTimeout   = "Daily puzzle worker shutdown timeout, a run may still be in flight"
)

// Scheduling
const (
	// StandbyThreshold switches from the long standby timer to the final approach
	StandbyThreshold = time.Hour
	// StandbyLead is how long before rollover the standby timer wakes up
	StandbyLead = 45 * time.Minute
	// EarlyFireTolerance absorbs timer jitter around midnight
	EarlyFireTolerance = 10 * time.Second

	DefaultRetryDelay  = time.Minute
	DefaultMaxRetries  = 5
	DefaultRunTimeout  = 30 * time.Second
	rolloverGraceDelay = time.Second
)
