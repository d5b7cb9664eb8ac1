package ports

import (
	"context"

	"github.com/randomtoy/spinwheel/internal/domain"
)

// PresetStore provides ready-made label lists.
type PresetStore interface {
	GetPreset(ctx context.Context, id string) (domain.Preset, error)
	ListPresets(ctx context.Context) ([]domain.Preset, error)
}
