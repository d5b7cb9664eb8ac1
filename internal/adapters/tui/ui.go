package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/randomtoy/spinwheel/internal/ports"
)

const panelWidth = 30

var palette = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorYellow,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorOrange,
	tcell.ColorFuchsia,
}

// UI drives a Model on a tcell screen. Pacing comes from a ticker at the
// scheduler interval; the model itself never sleeps.
type UI struct {
	screen   tcell.Screen
	model    *Model
	chime    ports.Chime
	interval time.Duration
	logger   *slog.Logger
}

func New(screen tcell.Screen, model *Model, chime ports.Chime, interval time.Duration, logger *slog.Logger) *UI {
	return &UI{
		screen:   screen,
		model:    model,
		chime:    chime,
		interval: interval,
		logger:   logger,
	}
}

// Run processes input and animation until the user quits or ctx ends.
func (u *UI) Run(ctx context.Context) error {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	u.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			quit, err := u.Handle(ctx, ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			u.Draw()
		case <-ticker.C:
			if u.model.Spinning() {
				u.Advance()
				u.Draw()
			}
		}
	}
}

// Handle applies one input event and reports whether the user asked to quit.
func (u *UI) Handle(ctx context.Context, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyEnter:
			return false, u.model.Spin(ctx)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true, nil
			case ' ':
				return false, u.model.Spin(ctx)
			case '+', '=':
				u.model.SetPointers(u.model.Pointers() + 1)
			case '-', '_':
				u.model.SetPointers(u.model.Pointers() - 1)
			}
		}
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return false, nil
}

// Advance moves the animation one frame and plays feedback sounds.
func (u *UI) Advance() {
	crossed, landed := u.model.Step()
	if crossed > 0 {
		u.chime.Tick()
	}
	if landed {
		u.chime.Land()
		if last, ok := u.model.Last(); ok {
			u.logger.Info("spin landed",
				"spin_id", last.ID,
				"winners", last.Result.Winners,
				"target_angle", last.Result.TargetAngle,
			)
		}
	}
}

func (u *UI) Draw() {
	u.screen.Clear()
	w, h := u.screen.Size()

	wheelW := w
	if w >= panelWidth*2 {
		wheelW = w - panelWidth
	}
	canvas := DrawWheel(wheelW, h, u.model.Labels(), u.model.Rotation(), u.model.PointerOffsets())
	for y := range canvas.H {
		for x := range canvas.W {
			cell := canvas.At(x, y)
			if cell.Kind == CellEmpty {
				continue
			}
			u.screen.SetContent(x, y, cell.Rune, nil, cellStyle(cell))
		}
	}

	px := wheelW
	if px == w {
		px = 0
	}
	_, tone := u.model.Message()
	for i, line := range u.StatusLines() {
		style := tcell.StyleDefault
		if i == 2 {
			style = toneStyle(tone)
		}
		u.drawText(px+1, i+1, line, style)
	}
	u.screen.Show()
}

// StatusLines is the text of the side panel.
func (u *UI) StatusLines() []string {
	msg, _ := u.model.Message()
	lines := []string{
		fmt.Sprintf("labels: %d  pointers: %d", len(u.model.Labels()), u.model.Pointers()),
		"space spin  +/- pointers  q quit",
		msg,
	}
	if last, ok := u.model.Last(); ok && !u.model.Spinning() {
		lines = append(lines, "")
		for _, r := range last.Ranking {
			lines = append(lines, fmt.Sprintf("%-5s %s", r.Ordinal, r.Label))
		}
	}
	return lines
}

func (u *UI) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

func cellStyle(c Cell) tcell.Style {
	switch c.Kind {
	case CellSlice:
		return tcell.StyleDefault.Foreground(sliceColor(c.Slice))
	case CellLabel:
		return tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(sliceColor(c.Slice)).Bold(true)
	case CellPointer:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

func sliceColor(i int) tcell.Color {
	if i < 0 {
		return tcell.ColorWhite
	}
	return palette[i%len(palette)]
}

func toneStyle(t Tone) tcell.Style {
	switch t {
	case ToneWarn:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case ToneSuccess:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	default:
		return tcell.StyleDefault
	}
}
