package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/randomtoy/spinwheel/internal/app"
	"github.com/randomtoy/spinwheel/internal/domain"
)

// Spinner computes a spin. *app.WheelService satisfies it.
type Spinner interface {
	Spin(ctx context.Context, req app.SpinRequest) (app.SpinResponse, error)
}

type Tone int

const (
	ToneInfo Tone = iota
	ToneWarn
	ToneSuccess
)

const emptyWheelWarning = "Please add data to the wheel."

// Model is the state behind the terminal wheel.
type Model struct {
	spinner  Spinner
	labels   []string
	pointers int

	// What is on screen right now.
	layout   []string
	offsets  []float64
	rotation float64

	frames  *domain.FrameSource
	pending *app.SpinResponse
	last    *app.SpinResponse
	travel  float64

	message string
	tone    Tone
}

func NewModel(sp Spinner, labels []string, pointers int) *Model {
	m := &Model{
		spinner: sp,
		labels:  labels,
		layout:  labels,
	}
	m.SetPointers(pointers)
	if len(labels) == 0 {
		m.say(ToneWarn, emptyWheelWarning)
	}
	return m
}

func (m *Model) Spinning() bool { return m.frames != nil }

func (m *Model) Pointers() int { return m.pointers }

func (m *Model) Labels() []string { return m.layout }

func (m *Model) Rotation() float64 { return m.rotation }

func (m *Model) PointerOffsets() []float64 { return m.offsets }

func (m *Model) Message() (string, Tone) { return m.message, m.tone }

// Last is the most recent completed spin, if any.
func (m *Model) Last() (app.SpinResponse, bool) {
	if m.last == nil {
		return app.SpinResponse{}, false
	}
	return *m.last, true
}

// SetPointers clamps p to the supported range. Ignored mid-spin.
func (m *Model) SetPointers(p int) {
	if m.Spinning() {
		return
	}
	m.pointers = min(max(p, app.MinPointers), app.MaxPointers)
	m.offsets = domain.PointerOffsets(len(m.layout), m.pointers)
}

// Spin starts a new spin unless one is running. An empty wheel only shows
// a warning.
func (m *Model) Spin(ctx context.Context) error {
	if m.Spinning() {
		return nil
	}
	if len(m.labels) == 0 {
		m.say(ToneWarn, emptyWheelWarning)
		return nil
	}

	resp, err := m.spinner.Spin(ctx, app.SpinRequest{Labels: m.labels, Pointers: m.pointers})
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrDegenerateSpacing) {
		m.say(ToneWarn, err.Error())
		return nil
	}
	if err != nil {
		return fmt.Errorf("spin: %w", err)
	}

	m.layout = resp.Result.Labels
	m.offsets = resp.Result.PointerOffsets
	m.frames = resp.Frames
	m.pending = &resp
	m.travel = 0
	m.say(ToneInfo, "Spinning the wheel...")
	return nil
}

// Step advances one frame. It reports how many slice boundaries passed the
// pointer and whether the wheel just came to rest.
func (m *Model) Step() (crossed int, landed bool) {
	if !m.Spinning() {
		return 0, false
	}
	f, ok := m.frames.Next()
	if !ok {
		m.finish()
		return 0, true
	}

	m.rotation = f.Angle
	slice := m.pending.Result.SliceAngle
	crossed = int(math.Floor(f.Travel/slice) - math.Floor(m.travel/slice))
	m.travel = f.Travel

	if f.Final {
		m.finish()
		return crossed, true
	}
	return crossed, false
}

func (m *Model) finish() {
	m.frames = nil
	m.last = m.pending
	m.pending = nil
	m.say(ToneSuccess, landedMessage(m.last.Ranking))
}

func (m *Model) say(t Tone, msg string) {
	m.tone = t
	m.message = msg
}

func landedMessage(ranking []app.RankedWinner) string {
	if len(ranking) == 1 {
		return "The wheel landed on: " + ranking[0].Label
	}
	parts := make([]string, len(ranking))
	for i, r := range ranking {
		parts[i] = r.Ordinal + " " + r.Label
	}
	return "Winners: " + strings.Join(parts, ", ")
}
