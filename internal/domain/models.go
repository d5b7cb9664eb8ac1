package domain

import "time"

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// SpinResult is the outcome of one spin. It is computed once and never mutated.
type SpinResult struct {
	// Labels is the order the slices were laid out in, after any shuffle.
	Labels         []string
	SliceAngle     float64
	PrimaryIndex   int
	WinnerIndices  []int
	Winners        []string
	PointerOffsets []float64
	// TargetAngle is the rest rotation in [0, 360).
	TargetAngle float64
	FinalAngle  float64
	// Degenerate is set when there are more pointers than labels.
	Degenerate bool
}

// Frame is one rotation sample of a spin animation.
type Frame struct {
	Index   int
	T       float64
	Elapsed time.Duration
	// Travel is the unwrapped eased rotation, non-decreasing over a spin.
	Travel float64
	// Angle is the rotation to draw, in [0, 360).
	Angle float64
	// Final marks the corrective frame that lands on the target angle.
	Final bool
}

// Preset is a named, ready-made label list.
type Preset struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
}
