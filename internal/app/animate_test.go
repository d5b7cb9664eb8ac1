package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/spinwheel/internal/app"
	"github.com/randomtoy/spinwheel/internal/domain"
)

type recordingRenderer struct {
	frames []domain.Frame
	failAt int
	cancel context.CancelFunc
}

func (r *recordingRenderer) RenderFrame(_ context.Context, f domain.Frame) error {
	r.frames = append(r.frames, f)
	if r.cancel != nil && len(r.frames) == 3 {
		r.cancel()
	}
	if r.failAt > 0 && len(r.frames) == r.failAt {
		return errors.New("renderer gone")
	}
	return nil
}

func fastFrames(t *testing.T) *domain.FrameSource {
	t.Helper()
	sched, err := domain.NewScheduler(domain.ScheduleConfig{Duration: 100 * time.Millisecond, SampleRate: 100})
	require.NoError(t, err)
	return sched.Frames(3015, 135)
}

func TestAnimate_RendersAllFrames(t *testing.T) {
	r := &recordingRenderer{}
	err := app.Animate(context.Background(), fastFrames(t), time.Millisecond, r)
	require.NoError(t, err)

	require.Len(t, r.frames, 11)
	last := r.frames[len(r.frames)-1]
	assert.True(t, last.Final)
	assert.Equal(t, 135.0, last.Angle)
}

func TestAnimate_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := &recordingRenderer{cancel: cancel}

	err := app.Animate(ctx, fastFrames(t), time.Millisecond, r)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, r.frames, 3)
}

func TestAnimate_RendererError(t *testing.T) {
	r := &recordingRenderer{failAt: 2}
	err := app.Animate(context.Background(), fastFrames(t), time.Millisecond, r)
	assert.EqualError(t, err, "renderer gone")
	assert.Len(t, r.frames, 2)
}
