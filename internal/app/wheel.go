package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/randomtoy/spinwheel/internal/domain"
	"github.com/randomtoy/spinwheel/internal/ports"
)

// Pointer count bounds offered by the wheel UIs.
const (
	MinPointers = 1
	MaxPointers = 100
)

// SpinRequest is the application-level input (no HTTP types). Labels win
// over Text, which wins over PresetID.
type SpinRequest struct {
	Labels   []string
	Text     string
	PresetID string
	Pointers int
}

// SpinResponse is the application-level output. Frames is single use.
type SpinResponse struct {
	ID      string
	Result  domain.SpinResult
	Ranking []RankedWinner
	Frames  *domain.FrameSource
}

// WheelService resolves labels, runs the spin engine and schedules frames.
type WheelService struct {
	presets ports.PresetStore
	rng     domain.RNG
	opts    domain.SpinOptions
	sched   *domain.Scheduler
	logger  *slog.Logger
}

func NewWheelService(ps ports.PresetStore, rng domain.RNG, opts domain.SpinOptions, sched *domain.Scheduler, logger *slog.Logger) *WheelService {
	return &WheelService{
		presets: ps,
		rng:     rng,
		opts:    opts,
		sched:   sched,
		logger:  logger,
	}
}

// Scheduler exposes the pacing so renderers can match the sample rate.
func (s *WheelService) Scheduler() *domain.Scheduler { return s.sched }

func (s *WheelService) Spin(ctx context.Context, req SpinRequest) (SpinResponse, error) {
	if req.Pointers < MinPointers || req.Pointers > MaxPointers {
		return SpinResponse{}, fmt.Errorf("%w: pointers must be between %d and %d, got %d",
			domain.ErrInvalidInput, MinPointers, MaxPointers, req.Pointers)
	}

	labels, err := s.resolveLabels(ctx, req)
	if err != nil {
		return SpinResponse{}, err
	}
	if len(labels) == 0 {
		return SpinResponse{}, fmt.Errorf("%w: please add labels to the wheel", domain.ErrInvalidInput)
	}

	res, err := domain.ComputeSpin(labels, req.Pointers, s.rng, s.opts)
	if err != nil {
		return SpinResponse{}, fmt.Errorf("compute spin: %w", err)
	}

	id := uuid.NewString()
	if res.Degenerate {
		s.logger.WarnContext(ctx, "more pointers than labels, winners repeat",
			"spin_id", id, "labels", len(labels), "pointers", req.Pointers)
	}
	s.logger.InfoContext(ctx, "spin computed",
		"spin_id", id,
		"labels", len(res.Labels),
		"pointers", len(res.Winners),
		"primary", res.PrimaryIndex,
		"target_angle", res.TargetAngle,
	)

	return SpinResponse{
		ID:      id,
		Result:  res,
		Ranking: Rank(res),
		Frames:  s.sched.Frames(res.FinalAngle, res.TargetAngle),
	}, nil
}

func (s *WheelService) resolveLabels(ctx context.Context, req SpinRequest) ([]string, error) {
	switch {
	case len(req.Labels) > 0:
		return CleanLabels(req.Labels), nil
	case req.Text != "":
		return ParseLabels(req.Text), nil
	case req.PresetID != "":
		p, err := s.presets.GetPreset(ctx, req.PresetID)
		if err != nil {
			return nil, fmt.Errorf("get preset: %w", err)
		}
		return p.Labels, nil
	default:
		return nil, nil
	}
}

func (s *WheelService) Presets(ctx context.Context) ([]domain.Preset, error) {
	list, err := s.presets.ListPresets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	return list, nil
}
