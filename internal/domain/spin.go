package domain

import (
	"fmt"
	"strings"
)

// ShufflePolicy decides whether labels are permuted before layout.
type ShufflePolicy string

const (
	// ShuffleAuto permutes only for multi-pointer spins.
	ShuffleAuto   ShufflePolicy = "auto"
	ShuffleAlways ShufflePolicy = "always"
	ShuffleNever  ShufflePolicy = "never"
)

// OverflowPolicy decides what happens when pointers outnumber labels.
type OverflowPolicy string

const (
	// OverflowKeep accepts duplicate winners and flags the result.
	OverflowKeep OverflowPolicy = "keep"
	// OverflowClamp lowers the pointer count to the number of labels.
	OverflowClamp OverflowPolicy = "clamp"
	// OverflowReject fails with ErrDegenerateSpacing.
	OverflowReject OverflowPolicy = "reject"
)

// ParseShufflePolicy accepts auto, always or never. Empty selects auto.
func ParseShufflePolicy(s string) (ShufflePolicy, error) {
	switch p := ShufflePolicy(strings.ToLower(s)); p {
	case "":
		return ShuffleAuto, nil
	case ShuffleAuto, ShuffleAlways, ShuffleNever:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown shuffle policy %q", ErrInvalidInput, s)
	}
}

// ParseOverflowPolicy accepts keep, clamp or reject. Empty selects keep.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch p := OverflowPolicy(strings.ToLower(s)); p {
	case "":
		return OverflowKeep, nil
	case OverflowKeep, OverflowClamp, OverflowReject:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown overflow policy %q", ErrInvalidInput, s)
	}
}

// SpinOptions are the per-deployment knobs of ComputeSpin.
type SpinOptions struct {
	FullRotations int
	Shuffle       ShufflePolicy
	Overflow      OverflowPolicy
}

// DefaultSpinOptions matches the classic single-call wheel.
func DefaultSpinOptions() SpinOptions {
	return SpinOptions{
		FullRotations: DefaultFullRotations,
		Shuffle:       ShuffleAuto,
		Overflow:      OverflowKeep,
	}
}

func (o SpinOptions) shuffles(pointers int) bool {
	switch o.Shuffle {
	case ShuffleAlways:
		return true
	case ShuffleNever:
		return false
	default:
		return pointers > 1
	}
}

// ComputeSpin lays out labels, picks the winners and resolves the angles.
// All validation happens before rng is touched.
func ComputeSpin(labels []string, pointers int, rng RNG, opts SpinOptions) (SpinResult, error) {
	n := len(labels)
	if n == 0 {
		return SpinResult{}, fmt.Errorf("%w: no labels on the wheel", ErrInvalidInput)
	}
	if pointers < 1 {
		return SpinResult{}, fmt.Errorf("%w: pointer count must be positive, got %d", ErrInvalidInput, pointers)
	}
	if opts.FullRotations < 0 {
		return SpinResult{}, fmt.Errorf("%w: full rotations must not be negative, got %d", ErrInvalidInput, opts.FullRotations)
	}
	if pointers > n {
		switch opts.Overflow {
		case OverflowReject:
			return SpinResult{}, fmt.Errorf("%w: %d pointers for %d labels", ErrDegenerateSpacing, pointers, n)
		case OverflowClamp:
			pointers = n
		}
	}

	slice, err := SliceAngle(n)
	if err != nil {
		return SpinResult{}, err
	}

	var layout []string
	if opts.shuffles(pointers) {
		layout = Shuffle(labels, rng)
	} else {
		layout = append([]string(nil), labels...)
	}

	primary, err := SelectPrimary(layout, rng)
	if err != nil {
		return SpinResult{}, err
	}
	winners, indices, err := SelectAll(layout, primary, pointers)
	if err != nil {
		return SpinResult{}, err
	}

	target := TargetAngle(primary, slice)
	return SpinResult{
		Labels:         layout,
		SliceAngle:     slice,
		PrimaryIndex:   primary,
		WinnerIndices:  indices,
		Winners:        winners,
		PointerOffsets: PointerOffsets(n, pointers),
		TargetAngle:    target,
		FinalAngle:     FinalAngle(target, opts.FullRotations),
		Degenerate:     PointerSpacing(n, pointers) == 0,
	}, nil
}
