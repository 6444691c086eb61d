package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Puzzle metric names
const (
	MetricNamePuzzlesGenerated    = "puzzles_generated_total"
	MetricNamePuzzleCacheLookups  = "puzzle_cache_lookups_total"
	MetricNamePuzzleSolveDuration = "puzzle_solve_duration_seconds"
	MetricNamePuzzleAttempts      = "puzzle_attempts_total"
	MetricNamePuzzleAttemptScore  = "puzzle_attempt_score_percent"
	MetricNamePuzzleWorkerRuns    = "puzzle_worker_runs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Puzzle metric help text
const (
	HelpTextPuzzlesGenerated    = "Total number of daily puzzles generated, by whether they were newly stored"
	HelpTextPuzzleCacheLookups  = "Daily puzzle cache lookups by result"
	HelpTextPuzzleSolveDuration = "Time spent enumerating optimal task sets"
	HelpTextPuzzleAttempts      = "Total puzzle attempts submitted by outcome"
	HelpTextPuzzleAttemptScore  = "Distribution of attempt scores as a percentage of the optimum"
	HelpTextPuzzleWorkerRuns    = "Daily puzzle pre-generation runs by status"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelResult  = "result"
	LabelOutcome = "outcome"
	LabelStored  = "stored"
)

// Label values
const (
	ResultHit  = "hit"
	ResultMiss = "miss"

	OutcomeOptimal    = "optimal"
	OutcomeSuboptimal = "suboptimal"
	OutcomeOverBudget = "over_budget"

	StatusSuccess = "success"
	StatusFailure = "failure"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets are the histogram buckets for HTTP request latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// SolveLatencyBuckets cover microsecond-scale exhaustive enumeration
var SolveLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05}

// ScorePercentBuckets split attempt scores into deciles
var ScorePercentBuckets = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
