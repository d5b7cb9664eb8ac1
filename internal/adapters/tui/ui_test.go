package tui_test

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/spinwheel/internal/adapters/tui"
)

type recordingChime struct {
	ticks, lands int
}

func (c *recordingChime) Tick() { c.ticks++ }
func (c *recordingChime) Land() { c.lands++ }

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 32)
	return screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestUI_SpinToRest(t *testing.T) {
	screen := newScreen(t)
	chime := &recordingChime{}
	model := tui.NewModel(newService(t, fixedRNG{val: 2}), []string{"A", "B", "C", "D"}, 1)
	u := tui.New(screen, model, chime, time.Millisecond, discardLogger())

	quit, err := u.Handle(context.Background(), key(' '))
	require.NoError(t, err)
	assert.False(t, quit)
	require.True(t, model.Spinning())

	for model.Spinning() {
		u.Advance()
		u.Draw()
	}
	assert.Equal(t, 1, chime.lands)
	assert.Positive(t, chime.ticks)
	assert.Contains(t, u.StatusLines(), "1st   C")
}

func TestUI_Keys(t *testing.T) {
	screen := newScreen(t)
	model := tui.NewModel(newService(t, fixedRNG{}), labelsN(5), 1)
	u := tui.New(screen, model, &recordingChime{}, time.Millisecond, discardLogger())
	ctx := context.Background()

	_, err := u.Handle(ctx, key('+'))
	require.NoError(t, err)
	assert.Equal(t, 2, model.Pointers())
	_, err = u.Handle(ctx, key('-'))
	require.NoError(t, err)
	_, err = u.Handle(ctx, key('-'))
	require.NoError(t, err)
	assert.Equal(t, 1, model.Pointers())

	quit, err := u.Handle(ctx, key('q'))
	require.NoError(t, err)
	assert.True(t, quit)

	quit, err = u.Handle(ctx, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	require.NoError(t, err)
	assert.True(t, quit)

	quit, err = u.Handle(ctx, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	require.NoError(t, err)
	assert.False(t, quit)
	assert.True(t, model.Spinning())
}

func TestUI_RunQuitsOnKey(t *testing.T) {
	screen := newScreen(t)
	model := tui.NewModel(newService(t, fixedRNG{}), labelsN(3), 1)
	u := tui.New(screen, model, &recordingChime{}, time.Millisecond, discardLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- u.Run(context.Background()) }()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestUI_RunStopsOnContext(t *testing.T) {
	screen := newScreen(t)
	model := tui.NewModel(newService(t, fixedRNG{}), labelsN(3), 1)
	u := tui.New(screen, model, &recordingChime{}, time.Millisecond, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, u.Run(ctx))
}
