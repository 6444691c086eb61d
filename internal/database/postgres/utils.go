package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
)

// wrapDBError tags a driver failure with the matching domain error, keeping the cause
func wrapDBError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrConnectionTimeout, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDatabaseError, err)
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// calendarDay strips the time of day so values bind cleanly to DATE columns
func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
