package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/branyzp/whatsforlunch/pkg/catalog"
	"github.com/branyzp/whatsforlunch/pkg/picker"
	"github.com/branyzp/whatsforlunch/pkg/store"
)

// Service wires configuration, presets and logging together so the CLI, the
// TUI, the prompt loop and the MCP server build pickers the same way.
type Service struct {
	Presets store.Presets
	Policy  picker.Policy
	Log     *slog.Logger
}

var errNoPresets = errors.New("app: no preset store configured")

// Catalog returns the built-in categories followed by the stored presets.
// Presets that fail to merge are logged and skipped.
func (s *Service) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	base := catalog.Default()
	if s.Presets == nil {
		return base, nil
	}
	presets, err := s.Presets.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range presets {
		next, err := base.With(p)
		if err != nil {
			s.logger().Warn("skipping preset", "preset", p.Key, "err", err)
			continue
		}
		base = next
	}
	return base, nil
}

// NewPicker returns an empty picker using the configured policy. Extra
// options are applied after the defaults.
func (s *Service) NewPicker(opts ...picker.Option) *picker.Picker {
	all := []picker.Option{
		picker.WithPolicy(s.Policy),
		picker.WithObserver(picker.LogObserver(s.Log)),
	}
	return picker.New(append(all, opts...)...)
}

// SavePreset validates and stores a preset. Presets may not reuse a
// built-in category name.
func (s *Service) SavePreset(_ context.Context, p catalog.Preset) error {
	if s.Presets == nil {
		return errNoPresets
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("app: invalid preset: %w", err)
	}
	if _, err := catalog.Default().With(p); err != nil {
		return err
	}
	if err := s.Presets.Save(p); err != nil {
		return err
	}
	s.logger().Info("preset saved", "preset", p.Key, "meals", len(p.Meals))
	return nil
}

// DeletePreset removes a stored preset.
func (s *Service) DeletePreset(_ context.Context, key string) error {
	if s.Presets == nil {
		return errNoPresets
	}
	if err := s.Presets.Delete(key); err != nil {
		return err
	}
	s.logger().Info("preset deleted", "preset", key)
	return nil
}

// ListPresets returns every stored preset.
func (s *Service) ListPresets(ctx context.Context) ([]catalog.Preset, error) {
	if s.Presets == nil {
		return nil, errNoPresets
	}
	return s.Presets.List(ctx)
}

// Watch subscribes to preset change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Presets == nil {
		return nil, errNoPresets
	}
	return s.Presets.Watch(ctx)
}

func (s *Service) logger() *slog.Logger {
	if s.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Log
}
