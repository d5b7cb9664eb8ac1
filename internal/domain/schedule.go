package domain

import (
	"fmt"
	"iter"
	"math"
	"strings"
	"time"
)

const (
	DefaultDuration   = 5 * time.Second
	DefaultSampleRate = 60
)

// Easing maps normalized time in [0,1] to normalized progress in [0,1].
// Curves must be non-decreasing with ease(0)=0 and ease(1)=1.
type Easing func(t float64) float64

// EaseOutSine decelerates all the way to the stop.
func EaseOutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

// EaseInOutCosine speeds up, then slows into the stop.
func EaseInOutCosine(t float64) float64 {
	return (1 - math.Cos(t*math.Pi)) / 2
}

// EasingByName resolves a configured curve name. Empty selects "sine".
func EasingByName(name string) (Easing, error) {
	switch strings.ToLower(name) {
	case "", "sine":
		return EaseOutSine, nil
	case "cosine":
		return EaseInOutCosine, nil
	default:
		return nil, fmt.Errorf("%w: unknown easing %q", ErrInvalidInput, name)
	}
}

// ScheduleConfig controls the pace of a spin animation.
type ScheduleConfig struct {
	Duration   time.Duration
	SampleRate int
	Easing     Easing
}

// Scheduler turns a final rotation into a decelerating frame sequence.
type Scheduler struct {
	duration    time.Duration
	sampleRate  int
	totalFrames int
	ease        Easing
}

// NewScheduler validates cfg. A nil Easing selects EaseOutSine.
func NewScheduler(cfg ScheduleConfig) (*Scheduler, error) {
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("%w: spin duration must be positive, got %s", ErrInvalidInput, cfg.Duration)
	}
	if cfg.SampleRate < 1 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidInput, cfg.SampleRate)
	}
	total := int(math.Round(cfg.Duration.Seconds() * float64(cfg.SampleRate)))
	if total < 1 {
		return nil, fmt.Errorf("%w: %s at %d/s produces no frames", ErrInvalidInput, cfg.Duration, cfg.SampleRate)
	}
	ease := cfg.Easing
	if ease == nil {
		ease = EaseOutSine
	}
	return &Scheduler{
		duration:    cfg.Duration,
		sampleRate:  cfg.SampleRate,
		totalFrames: total,
		ease:        ease,
	}, nil
}

// TotalFrames is the number of eased frames, excluding the corrective one.
func (s *Scheduler) TotalFrames() int { return s.totalFrames }

// Interval is the wall-clock gap a renderer should leave between frames.
func (s *Scheduler) Interval() time.Duration {
	return time.Second / time.Duration(s.sampleRate)
}

func (s *Scheduler) Duration() time.Duration { return s.duration }

// Frames returns a fresh source for one spin ending at finalAngle and
// resting on targetAngle.
func (s *Scheduler) Frames(finalAngle, targetAngle float64) *FrameSource {
	return &FrameSource{
		sched:  s,
		final:  finalAngle,
		target: targetAngle,
	}
}

// FrameSource yields the frames of one spin lazily. It cannot be rewound and
// is not safe for concurrent use. Abandoning it mid-spin is fine.
type FrameSource struct {
	sched  *Scheduler
	final  float64
	target float64
	next   int
}

// Next returns the next frame, or false once the corrective frame has been
// handed out.
func (fs *FrameSource) Next() (Frame, bool) {
	total := fs.sched.totalFrames
	switch {
	case fs.next < total:
		t := float64(fs.next) / float64(total)
		travel := fs.sched.ease(t) * fs.final
		f := Frame{
			Index:   fs.next,
			T:       t,
			Elapsed: time.Duration(t * float64(fs.sched.duration)),
			Travel:  travel,
			Angle:   Normalize(travel),
		}
		fs.next++
		return f, true
	case fs.next == total:
		// Land exactly on the target rather than trusting the eased value.
		f := Frame{
			Index:   total,
			T:       1,
			Elapsed: fs.sched.duration,
			Travel:  fs.final,
			Angle:   fs.target,
			Final:   true,
		}
		fs.next++
		return f, true
	default:
		return Frame{}, false
	}
}

// Remaining counts the frames not yet handed out.
func (fs *FrameSource) Remaining() int {
	return max(fs.sched.totalFrames+1-fs.next, 0)
}

// All drains the source as an iterator.
func (fs *FrameSource) All() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for {
			f, ok := fs.Next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}
