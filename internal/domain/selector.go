package domain

import "fmt"

// SelectPrimary draws one slice index uniformly from [0, len(labels)).
func SelectPrimary(labels []string, rng RNG) (int, error) {
	if len(labels) == 0 {
		return 0, fmt.Errorf("%w: no labels to pick from", ErrInvalidInput)
	}
	return rng.Intn(len(labels)), nil
}

// SelectAll derives one winner per pointer from the primary winner.
// Winner i is labels[(primary + i*(n/pointers)) mod n]; winner 0 is always
// the primary. With more pointers than labels the spacing collapses to zero
// and every winner repeats the primary.
func SelectAll(labels []string, primary, pointers int) ([]string, []int, error) {
	n := len(labels)
	if n == 0 {
		return nil, nil, fmt.Errorf("%w: no labels to pick from", ErrInvalidInput)
	}
	if pointers < 1 {
		return nil, nil, fmt.Errorf("%w: pointer count must be positive, got %d", ErrInvalidInput, pointers)
	}
	if primary < 0 || primary >= n {
		return nil, nil, fmt.Errorf("%w: primary index %d out of range [0,%d)", ErrInvalidInput, primary, n)
	}

	step := PointerSpacing(n, pointers)
	winners := make([]string, pointers)
	indices := make([]int, pointers)
	for i := range pointers {
		idx := (primary + i*step) % n
		indices[i] = idx
		winners[i] = labels[idx]
	}
	return winners, indices, nil
}

// Shuffle returns a permuted copy of labels (Fisher-Yates).
func Shuffle(labels []string, rng RNG) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
