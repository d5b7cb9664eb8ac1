package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	tickFreq     = 1320
	tickDuration = 12 * time.Millisecond
	landDuration = 120 * time.Millisecond
)

// landNotes is a rising major triad played when the wheel stops.
var landNotes = []float64{523.25, 659.25, 783.99}

// Chime plays a short click per slice crossing and a triad on landing.
type Chime struct {
	play func(beep.Streamer)
}

// NewSpeakerChime opens the default audio device. Call Close when done.
func NewSpeakerChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{play: func(s beep.Streamer) { speaker.Play(s) }}, nil
}

func (c *Chime) Close() {
	speaker.Close()
}

func (c *Chime) Tick() {
	if s := tickStreamer(); s != nil {
		c.play(s)
	}
}

func (c *Chime) Land() {
	if s := landStreamer(); s != nil {
		c.play(s)
	}
}

func tickStreamer() beep.Streamer {
	sine, err := generators.SineTone(sampleRate, tickFreq)
	if err != nil {
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(tickDuration), sine),
		Base:     2,
		Volume:   -2,
	}
}

func landStreamer() beep.Streamer {
	notes := make([]beep.Streamer, 0, len(landNotes))
	for _, f := range landNotes {
		sine, err := generators.SineTone(sampleRate, f)
		if err != nil {
			return nil
		}
		notes = append(notes, beep.Take(sampleRate.N(landDuration), sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   -1,
	}
}

// Nop is a silent chime for when audio is off or unavailable.
type Nop struct{}

func (Nop) Tick() {}
func (Nop) Land() {}
