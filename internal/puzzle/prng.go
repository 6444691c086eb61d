package puzzle

// RandFunc yields the next float in [0,1) from a seeded stream
type RandFunc func() float64

// NewPRNG returns a mulberry32 generator for the given seed.
// All arithmetic is done on uint32 so wraparound matches 32-bit integer math exactly;
// a negative seed maps to its two's complement bit pattern.
// Each puzzle must get its own generator: draws are order-sensitive.
func NewPRNG(seed int32) RandFunc {
	state := uint32(seed)
	return func() float64 {
		state += prngIncrement
		t := (state ^ state>>15) * (state | 1)
		t = (t + (t^t>>7)*(t|61)) ^ t
		return float64(t^t>>14) / prngDivisor
	}
}
