package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/branyzp/whatsforlunch/pkg/catalog"
)

// ErrPresetNotFound is returned when no preset is stored under a key.
var ErrPresetNotFound = errors.New("store: preset not found")

const (
	presetsDir = "presets"
	presetExt  = ".json"
)

// Presets stores user-defined categories. It never stores picker sessions.
type Presets interface {
	List(ctx context.Context) ([]catalog.Preset, error)
	Get(key string) (catalog.Preset, error)
	Save(p catalog.Preset) error
	Delete(key string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Presets store backed by diskv. A nil cfg loads the
// configuration from disk and environment.
func Load(cfg Config) (Presets, error) {
	if cfg == nil {
		settings, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = settings
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      256 * 1024,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) List(ctx context.Context) ([]catalog.Preset, error) {
	presets := make([]catalog.Preset, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if key == "" {
			continue
		}
		preset, err := p.Get(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %v\n", key, err)
			continue
		}
		presets = append(presets, preset)
	}
	sort.SliceStable(presets, func(i, j int) bool {
		return presets[i].Key < presets[j].Key
	})
	return presets, ctx.Err()
}

func (p *persistence) Get(key string) (catalog.Preset, error) {
	key = strings.TrimSpace(key)
	if !catalog.ValidKey(key) || !p.d.Has(key) {
		return catalog.Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, key)
	}
	data, err := p.d.Read(key)
	if err != nil {
		return catalog.Preset{}, err
	}
	preset, err := catalog.UnmarshalPreset(data)
	if err != nil {
		return catalog.Preset{}, fmt.Errorf("store: decode preset %q: %w", key, err)
	}
	return preset, nil
}

func (p *persistence) Save(preset catalog.Preset) error {
	if err := preset.Validate(); err != nil {
		return fmt.Errorf("store: invalid preset: %w", err)
	}
	data, err := catalog.MarshalPreset(preset)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(p.presetsPath(), 0o755); err != nil {
		return fmt.Errorf("store: ensure presets directory: %w", err)
	}
	return p.d.Write(preset.Key, data)
}

func (p *persistence) Delete(key string) error {
	key = strings.TrimSpace(key)
	if !catalog.ValidKey(key) || !p.d.Has(key) {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, key)
	}
	return p.d.Erase(key)
}

func (p *persistence) presetsPath() string {
	return filepath.Join(p.basePath, presetsDir)
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{presetsDir},
		FileName: key + presetExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) != 1 || pathKey.Path[0] != presetsDir {
		return ""
	}
	if !strings.HasSuffix(pathKey.FileName, presetExt) {
		return ""
	}
	return strings.TrimSuffix(pathKey.FileName, presetExt)
}
