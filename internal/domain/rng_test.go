package domain_test

import "math/rand/v2"

// fixedRNG always draws val modulo n.
type fixedRNG struct{ val int }

func (r fixedRNG) Intn(n int) int { return r.val % n }

// countingRNG records how many draws were made.
type countingRNG struct {
	calls int
}

func (r *countingRNG) Intn(n int) int {
	r.calls++
	return 0
}

// seededRNG is a reproducible uniform source.
type seededRNG struct{ r *rand.Rand }

func newSeededRNG(seed uint64) seededRNG {
	return seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

func labelsN(n int) []string {
	out := make([]string, n)
	for i := range n {
		out[i] = string(rune('A'+i%26)) + string(rune('a'+i/26))
	}
	return out
}
