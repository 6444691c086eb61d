package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Puzzle errors
	ErrMsgPuzzleNotFound     = "puzzle not found"
	ErrMsgPuzzleNotAvailable = "puzzle is not available yet"
	ErrMsgUnknownTask        = "unknown task"
	ErrMsgDuplicateTask      = "duplicate task"

	// Attempt errors
	ErrMsgAlreadySubmitted = "attempt already submitted"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
	ErrMsgInvalidDate  = "invalid date"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Puzzle errors
	ErrPuzzleNotFound     = errors.New(ErrMsgPuzzleNotFound)
	ErrPuzzleNotAvailable = errors.New(ErrMsgPuzzleNotAvailable)
	ErrUnknownTask        = errors.New(ErrMsgUnknownTask)
	ErrDuplicateTask      = errors.New(ErrMsgDuplicateTask)

	// Attempt errors
	ErrAlreadySubmitted = errors.New(ErrMsgAlreadySubmitted)

	// Database/System errors
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrInvalidDate  = errors.New(ErrMsgInvalidDate)
)
