package puzzle

// Puzzle shape
const (
	ConfigVersion = 1
	TaskCount     = 6
)

// Reward multiplier range: base * [RewardMultiplierMin, RewardMultiplierMin+RewardMultiplierSpan)
const (
	RewardMultiplierMin  = 0.8
	RewardMultiplierSpan = 0.6
)

// MinTimeCost is the floor applied after time-cost variance
const MinTimeCost = 1

// TimeBudgets are the candidate budgets, indexed by one PRNG draw
var TimeBudgets = []int{10, 11, 12, 13, 14}

// Presentation text shared by every daily puzzle
const (
	PuzzleTitle     = "Daily Strategy Run"
	PuzzleNarrative = "Your robot recruits have a single shift to push the company forward. " +
		"Every job pays off differently and some eat up more of the day than others."
	PuzzleGoal = "Choose the jobs that earn the most reward without going over the time budget."
)

// mulberry32 constants
const (
	prngIncrement = 0x6D2B79F5
	prngDivisor   = 4294967296.0 // 2^32
)
