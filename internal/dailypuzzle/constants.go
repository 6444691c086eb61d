package dailypuzzle

import "time"

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1"

// LoadTimeout bounds a shared load-or-generate call for one day
const LoadTimeout = 10 * time.Second

// Log messages
const (
	LogMsgPuzzleGenerated     = "Daily puzzle generated"
	LogMsgPuzzleAlreadyStored = "Daily puzzle already stored by another instance"
	LogMsgPuzzleSolved        = "Puzzle solved"
	LogMsgAttemptSubmitted    = "Puzzle attempt submitted"
	LogMsgAttemptRejected     = "Puzzle attempt rejected"
	LogMsgCacheDisabled       = "Puzzle cache disabled"
)

// Leaderboard bounds
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)
