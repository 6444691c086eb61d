package worker

import (
	"context"
	"sync"
	"time"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/logger"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/metrics"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/puzzle"
)

// PuzzleEnsurer stores a day's puzzle if it is not stored yet
type PuzzleEnsurer interface {
	EnsurePuzzle(ctx context.Context, date time.Time) error
}

// DailyPuzzleWorker makes sure each UTC day's puzzle exists as soon as the day starts,
// so the first player of the day does not pay for generation and the insert race.
type DailyPuzzleWorker struct {
	service    PuzzleEnsurer
	now        func() time.Time
	retryDelay time.Duration
	maxRetries int
	runTimeout time.Duration

	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDailyPuzzleWorker creates a new DailyPuzzleWorker
func NewDailyPuzzleWorker(service PuzzleEnsurer) *DailyPuzzleWorker {
	return &DailyPuzzleWorker{
		service:    service,
		now:        time.Now,
		retryDelay: DefaultRetryDelay,
		maxRetries: DefaultMaxRetries,
		runTimeout: DefaultRunTimeout,
		shutdown:   make(chan struct{}),
	}
}

// Start ensures today's puzzle immediately and schedules the next rollover
func (w *DailyPuzzleWorker) Start() {
	w.run(puzzle.StartOfDayUTC(w.now()), 0)
	w.scheduleNext()
}

// scheduleNext arms the timer for the next 00:00 UTC
func (w *DailyPuzzleWorker) scheduleNext() {
	duration := timeUntilNextRollover(w.now())
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.isShuttingDown() {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling keeps a long sleep from drifting past midnight
	if duration > StandbyThreshold {
		wait := duration - StandbyLead
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgPuzzleWorkerStandby, "next_check_at", w.now().UTC().Add(wait))
		return
	}

	w.timer = time.AfterFunc(duration+rolloverGraceDelay, func() {
		if w.isShuttingDown() {
			return
		}

		// Fired early: go around again for the remainder
		rem := timeUntilNextRollover(w.now())
		if rem > EarlyFireTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.run(puzzle.StartOfDayUTC(w.now().Add(EarlyFireTolerance)), 0)
		w.scheduleNext()
	})
	log.Info(LogMsgPuzzleWorkerApproach, "next_rollover_at", w.now().UTC().Add(duration))
}

// run ensures day's puzzle in a tracked goroutine, retrying with a fixed delay on failure
func (w *DailyPuzzleWorker) run(day time.Time, attempt int) {
	// Add under mu so it never races the Wait in Shutdown
	w.mu.Lock()
	if w.isShuttingDown() {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), w.runTimeout)
		defer cancel()
		log := logger.FromContext(ctx).With("date", day.Format(domain.DateLayout), "attempt", attempt+1)
		log.Info(LogMsgPuzzleEnsureStarting)

		if err := w.service.EnsurePuzzle(ctx, day); err != nil {
			metrics.PuzzleWorkerRuns.WithLabelValues(metrics.StatusFailure).Inc()
			log.Error(LogMsgPuzzleEnsureFailed, "error", err)
			w.scheduleRetry(day, attempt+1)
			return
		}

		metrics.PuzzleWorkerRuns.WithLabelValues(metrics.StatusSuccess).Inc()
		log.Info(LogMsgPuzzleEnsureCompleted)
	}()
}

// scheduleRetry re-runs a failed day unless retries are exhausted or the day has passed
func (w *DailyPuzzleWorker) scheduleRetry(day time.Time, attempt int) {
	if attempt > w.maxRetries || !puzzle.StartOfDayUTC(w.now()).Equal(day) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.isShuttingDown() {
		return
	}

	logger.FromContext(context.Background()).Warn(LogMsgPuzzleRetryScheduled,
		"date", day.Format(domain.DateLayout), "attempt", attempt+1, "delay", w.retryDelay)

	time.AfterFunc(w.retryDelay, func() {
		w.run(day, attempt)
	})
}

func (w *DailyPuzzleWorker) isShuttingDown() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

// Shutdown cancels the pending timer and waits for any in-flight run
func (w *DailyPuzzleWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPuzzleWorkerStopping)

	w.mu.Lock()
	if !w.isShuttingDown() {
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgPuzzleWorkerStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgPuzzleWorkerTimeout)
		return ctx.Err()
	}
}

// timeUntilNextRollover is the duration from now until the next 00:00 UTC
func timeUntilNextRollover(now time.Time) time.Duration {
	now = now.UTC()
	next := puzzle.StartOfDayUTC(now).AddDate(0, 0, 1)
	return next.Sub(now)
}
