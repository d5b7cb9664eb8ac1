package tui_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/spinwheel/internal/adapters/tui"
	"github.com/randomtoy/spinwheel/internal/app"
	"github.com/randomtoy/spinwheel/internal/domain"
)

type fixedRNG struct{ val int }

func (r fixedRNG) Intn(n int) int { return r.val % n }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, rng domain.RNG) *app.WheelService {
	t.Helper()
	sched, err := domain.NewScheduler(domain.ScheduleConfig{Duration: 100 * time.Millisecond, SampleRate: 100})
	require.NoError(t, err)
	return app.NewWheelService(nil, rng, domain.DefaultSpinOptions(), sched, discardLogger())
}

// countingSpinner records how often the wheel was spun.
type countingSpinner struct{ calls int }

func (s *countingSpinner) Spin(_ context.Context, _ app.SpinRequest) (app.SpinResponse, error) {
	s.calls++
	return app.SpinResponse{}, nil
}

func spinToRest(t *testing.T, m *tui.Model) (steps, crossed int) {
	t.Helper()
	for m.Spinning() {
		c, landed := m.Step()
		steps++
		crossed += c
		if landed {
			break
		}
		require.Less(t, steps, 10000, "spin never landed")
	}
	return steps, crossed
}

func TestModel_SpinLandsOnWinner(t *testing.T) {
	m := tui.NewModel(newService(t, fixedRNG{val: 2}), []string{"A", "B", "C", "D"}, 1)
	require.NoError(t, m.Spin(context.Background()))
	require.True(t, m.Spinning())

	steps, crossed := spinToRest(t, m)
	assert.Equal(t, 11, steps)
	// 3015 degrees of travel over 90 degree slices.
	assert.Equal(t, 33, crossed)
	assert.False(t, m.Spinning())
	assert.Equal(t, 135.0, m.Rotation())
	assert.Equal(t, 2, domain.SliceUnder(4, m.Rotation(), 0))

	last, ok := m.Last()
	require.True(t, ok)
	assert.Equal(t, []string{"C"}, last.Result.Winners)

	msg, tone := m.Message()
	assert.Equal(t, "The wheel landed on: C", msg)
	assert.Equal(t, tui.ToneSuccess, tone)
}

func TestModel_MultiPointerMessage(t *testing.T) {
	m := tui.NewModel(newService(t, fixedRNG{val: 0}), labelsN(6), 3)
	require.NoError(t, m.Spin(context.Background()))
	spinToRest(t, m)

	last, ok := m.Last()
	require.True(t, ok)
	require.Len(t, last.Result.Winners, 3)
	msg, _ := m.Message()
	assert.True(t, strings.HasPrefix(msg, "Winners: 1st "+last.Result.Winners[0]), msg)
	assert.Contains(t, msg, "3rd "+last.Result.Winners[2])

	for k, off := range m.PointerOffsets() {
		assert.Equal(t, last.Result.WinnerIndices[k], domain.SliceUnder(6, m.Rotation(), off))
	}
}

func TestModel_EmptyWheelWarns(t *testing.T) {
	sp := &countingSpinner{}
	m := tui.NewModel(sp, nil, 1)

	msg, tone := m.Message()
	assert.Equal(t, tui.ToneWarn, tone)
	assert.NotEmpty(t, msg)

	require.NoError(t, m.Spin(context.Background()))
	assert.False(t, m.Spinning())
	assert.Zero(t, sp.calls)
}

func TestModel_SetPointers(t *testing.T) {
	m := tui.NewModel(newService(t, fixedRNG{}), labelsN(4), 1)

	m.SetPointers(0)
	assert.Equal(t, 1, m.Pointers())
	m.SetPointers(500)
	assert.Equal(t, 100, m.Pointers())
	m.SetPointers(2)
	assert.InDeltaSlice(t, []float64{0, 180}, m.PointerOffsets(), 1e-9)

	require.NoError(t, m.Spin(context.Background()))
	m.SetPointers(3)
	assert.Equal(t, 2, m.Pointers(), "pointer count is frozen mid-spin")
}

func TestModel_SpinWhileSpinningIsIgnored(t *testing.T) {
	m := tui.NewModel(newService(t, fixedRNG{}), labelsN(4), 1)
	require.NoError(t, m.Spin(context.Background()))
	m.Step()
	m.Step()

	require.NoError(t, m.Spin(context.Background()))
	steps, _ := spinToRest(t, m)
	assert.Equal(t, 9, steps)
}
