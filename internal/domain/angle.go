package domain

// DefaultFullRotations is the number of full turns added before the wheel
// settles.
const DefaultFullRotations = 8

// TargetAngle is the rest rotation that centres slice primary under the
// pointer at frame angle 0, wrapped into [0, 360). Consecutive indices are
// exactly one slice apart.
func TargetAngle(primary int, slice float64) float64 {
	return Normalize(float64(primary)*slice + slice/2 - slice)
}

// FinalAngle adds the full pre-spin rotations to target. The rotations
// change how long the wheel appears to turn, never where it stops.
func FinalAngle(target float64, fullRotations int) float64 {
	return float64(fullRotations)*FullCircle + target
}
