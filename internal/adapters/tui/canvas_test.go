package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/spinwheel/internal/adapters/tui"
	"github.com/randomtoy/spinwheel/internal/domain"
)

func labelsN(n int) []string {
	out := make([]string, n)
	for i := range n {
		out[i] = string(rune('A' + i))
	}
	return out
}

// A 101x31 canvas puts the hub at (50,15) with a radius of 14.
const (
	canvasW = 101
	canvasH = 31
)

func TestDrawWheel_PrimaryUnderTopPointer(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 6, 7, 12} {
		slice, err := domain.SliceAngle(n)
		require.NoError(t, err)
		for i := range n {
			c := tui.DrawWheel(canvasW, canvasH, labelsN(n), domain.TargetAngle(i, slice), []float64{0})
			cell := c.At(50, 2)
			assert.Equal(t, tui.CellSlice, cell.Kind, "n=%d i=%d", n, i)
			assert.Equal(t, i, cell.Slice, "n=%d i=%d", n, i)
		}
	}
}

func TestDrawWheel_PointerMarkers(t *testing.T) {
	c := tui.DrawWheel(canvasW, canvasH, labelsN(4), 0, []float64{0, 90, 180, 270})

	cases := []struct {
		x, y int
		want rune
	}{
		{50, 0, '▼'},
		{80, 15, '◀'},
		{50, 30, '▲'},
		{20, 15, '▶'},
	}
	for _, tc := range cases {
		cell := c.At(tc.x, tc.y)
		assert.Equal(t, tui.CellPointer, cell.Kind, "(%d,%d)", tc.x, tc.y)
		assert.Equal(t, tc.want, cell.Rune, "(%d,%d)", tc.x, tc.y)
	}
}

func TestDrawWheel_HubIsEmpty(t *testing.T) {
	c := tui.DrawWheel(canvasW, canvasH, labelsN(3), 0, nil)
	assert.Equal(t, tui.CellEmpty, c.At(50, 15).Kind)
	assert.Equal(t, tui.CellEmpty, c.At(0, 0).Kind)
	assert.Equal(t, tui.CellEmpty, c.At(-1, 500).Kind)
}

func TestDrawWheel_NothingToDraw(t *testing.T) {
	for _, c := range []*tui.Canvas{
		tui.DrawWheel(canvasW, canvasH, nil, 0, []float64{0}),
		tui.DrawWheel(4, 3, labelsN(3), 0, []float64{0}),
	} {
		for _, cell := range c.Cells {
			assert.Equal(t, tui.CellEmpty, cell.Kind)
		}
	}
}

func TestDrawWheel_LabelsTruncated(t *testing.T) {
	long := strings.Repeat("x", 30)
	c := tui.DrawWheel(canvasW, canvasH, []string{long}, 180, nil)

	var text []rune
	for _, cell := range c.Cells {
		if cell.Kind == tui.CellLabel {
			text = append(text, cell.Rune)
		}
	}
	require.Len(t, text, 12)
	assert.Equal(t, '…', text[len(text)-1])
}
