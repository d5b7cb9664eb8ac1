package domain

import (
	"fmt"
	"math"
)

// FullCircle is the angle of one full turn, in degrees.
const FullCircle = 360.0

// SliceAngle returns the angular width of each of n equal slices.
func SliceAngle(n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: wheel needs at least one label, got %d", ErrInvalidInput, n)
	}
	return FullCircle / float64(n), nil
}

// PointerSpacing is the slice distance between neighbouring pointers.
// It is zero when there are more pointers than slices.
func PointerSpacing(n, pointers int) int {
	if pointers < 1 {
		return 0
	}
	return n / pointers
}

// PointerOffsets returns the frame angle of each pointer. Pointer 0 sits at 0.
// When pointers does not divide n the last pointers drift from even spacing.
func PointerOffsets(n, pointers int) []float64 {
	if n < 1 || pointers < 1 {
		return nil
	}
	slice := FullCircle / float64(n)
	step := PointerSpacing(n, pointers)
	offsets := make([]float64, pointers)
	for i := range pointers {
		offsets[i] = float64(i*step) * slice
	}
	return offsets
}

// SliceUnder reports which slice sits under a pointer at frame angle pointer
// when the wheel is rotated by rotation degrees.
//
// Frame angle φ covers wheel angle φ + rotation + sliceAngle. Rotating by
// TargetAngle(i) therefore centres slice i under the pointer at 0.
func SliceUnder(n int, rotation, pointer float64) int {
	if n < 1 {
		return -1
	}
	slice := FullCircle / float64(n)
	w := Normalize(pointer + rotation + slice)
	idx := int(math.Floor(w / slice))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// Normalize wraps a into [0, 360).
func Normalize(a float64) float64 {
	a = math.Mod(a, FullCircle)
	if a < 0 {
		a += FullCircle
	}
	if a >= FullCircle {
		a = 0
	}
	return a
}
