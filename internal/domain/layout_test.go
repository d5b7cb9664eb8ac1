package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/spinwheel/internal/domain"
)

func TestSliceAngle_CoversCircle(t *testing.T) {
	for n := 1; n <= 500; n++ {
		slice, err := domain.SliceAngle(n)
		require.NoError(t, err)
		assert.InDelta(t, 360.0, slice*float64(n), 1e-9, "n=%d", n)
	}
}

func TestSliceAngle_Invalid(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := domain.SliceAngle(n)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "n=%d", n)
	}
}

func TestPointerOffsets(t *testing.T) {
	assert.Equal(t, []float64{0}, domain.PointerOffsets(4, 1))
	assert.InDeltaSlice(t, []float64{0, 120, 240}, domain.PointerOffsets(6, 3), 1e-9)
	// 5 labels, 3 pointers: spacing of one slice, not a third of the circle.
	assert.InDeltaSlice(t, []float64{0, 72, 144}, domain.PointerOffsets(5, 3), 1e-9)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, domain.PointerOffsets(2, 3), 1e-9)
	assert.Nil(t, domain.PointerOffsets(0, 1))
	assert.Nil(t, domain.PointerOffsets(3, 0))
}

func TestSliceUnder_RestOnTarget(t *testing.T) {
	for n := 1; n <= 40; n++ {
		slice, err := domain.SliceAngle(n)
		require.NoError(t, err)
		for i := range n {
			target := domain.TargetAngle(i, slice)
			assert.Equal(t, i, domain.SliceUnder(n, target, 0), "n=%d i=%d", n, i)
		}
	}
}

func TestSliceUnder_Invalid(t *testing.T) {
	assert.Equal(t, -1, domain.SliceUnder(0, 10, 0))
}

func TestNormalize(t *testing.T) {
	cases := map[float64]float64{
		0:     0,
		360:   0,
		-45:   315,
		725:   5,
		-720:  0,
		359.5: 359.5,
	}
	for in, want := range cases {
		assert.InDelta(t, want, domain.Normalize(in), 1e-9, "in=%v", in)
	}
}
