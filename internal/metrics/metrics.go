package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Puzzle Metrics
var (
	PuzzlesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePuzzlesGenerated,
			Help: HelpTextPuzzlesGenerated,
		},
		[]string{LabelStored},
	)

	PuzzleCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePuzzleCacheLookups,
			Help: HelpTextPuzzleCacheLookups,
		},
		[]string{LabelResult},
	)

	PuzzleSolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePuzzleSolveDuration,
			Help:    HelpTextPuzzleSolveDuration,
			Buckets: SolveLatencyBuckets,
		},
	)

	PuzzleAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePuzzleAttempts,
			Help: HelpTextPuzzleAttempts,
		},
		[]string{LabelOutcome},
	)

	PuzzleAttemptScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePuzzleAttemptScore,
			Help:    HelpTextPuzzleAttemptScore,
			Buckets: ScorePercentBuckets,
		},
	)

	PuzzleWorkerRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePuzzleWorkerRuns,
			Help: HelpTextPuzzleWorkerRuns,
		},
		[]string{LabelStatus},
	)
)
