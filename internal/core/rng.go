package core

import "time"

// RNG is a deterministic pseudo-random number generator (xorshift64).
// The same seed always yields the same sequence on every platform, which the
// maze generator relies on for byte-identical output.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = 88172645463325252
	}
	return &RNG{state: seed}
}

// TimeSeed returns a non-zero seed derived from the wall clock.
func TimeSeed() int64 {
	s := time.Now().UnixNano() & 0x7FFFFFFFFFFFFFFF
	if s == 0 {
		s = 1
	}
	return s
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a random int in [0, n). Returns 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Roll returns a value in [0, 1) with a resolution of 1/1000.
// Probability checks in the generator use this coarse roll.
func (r *RNG) Roll() float64 {
	return float64(r.Intn(1000)) / 1000
}

// Shuffle permutes n elements in place using Fisher-Yates and the given swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
