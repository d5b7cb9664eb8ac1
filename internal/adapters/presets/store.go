package presets

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/randomtoy/spinwheel/internal/domain"
)

//go:embed data/*.json
var presetFS embed.FS

// registry maps preset IDs to their JSON filenames inside data/.
var registry = map[string]string{
	"yes_no":   "data/yes_no.json",
	"weekdays": "data/weekdays.json",
	"d6":       "data/d6.json",
	"lunch":    "data/lunch.json",
}

type presetFile struct {
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
}

// EmbeddedStore loads preset wheels from embedded JSON files.
type EmbeddedStore struct {
	once    sync.Once
	presets map[string]domain.Preset
	err     error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	s.presets = make(map[string]domain.Preset, len(registry))
	for id, filename := range registry {
		raw, err := presetFS.ReadFile(filename)
		if err != nil {
			s.err = fmt.Errorf("read embedded preset %s: %w", id, err)
			return
		}
		var pf presetFile
		if err := json.Unmarshal(raw, &pf); err != nil {
			s.err = fmt.Errorf("parse embedded preset %s: %w", id, err)
			return
		}
		if len(pf.Labels) == 0 {
			s.err = fmt.Errorf("embedded preset %s has no labels", id)
			return
		}
		s.presets[id] = domain.Preset{
			ID:     id,
			Name:   pf.Name,
			Labels: pf.Labels,
		}
	}
}

func (s *EmbeddedStore) GetPreset(_ context.Context, id string) (domain.Preset, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.Preset{}, s.err
	}
	p, ok := s.presets[id]
	if !ok {
		return domain.Preset{}, fmt.Errorf("%w: %q", domain.ErrPresetNotFound, id)
	}
	return clonePreset(p), nil
}

// ListPresets returns every preset ordered by ID.
func (s *EmbeddedStore) ListPresets(_ context.Context) ([]domain.Preset, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Preset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, clonePreset(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Callers may reorder labels, so never hand out the cached slice.
func clonePreset(p domain.Preset) domain.Preset {
	p.Labels = append([]string(nil), p.Labels...)
	return p
}
