package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branyzp/whatsforlunch/pkg/catalog"
)

func TestPresetsRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	require.NoError(t, err)

	ctx := context.Background()

	list, err := p.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, p.Save(catalog.Preset{Key: "thai", Label: "Thai", Meals: []string{"Pad Thai", "Tom Yum"}}))
	require.NoError(t, p.Save(catalog.Preset{Key: "indian", Meals: []string{"Prata"}}))

	_, err = os.Stat(filepath.Join(base, "presets", "thai.json"))
	require.NoError(t, err)

	got, err := p.Get("thai")
	require.NoError(t, err)
	assert.Equal(t, "Thai", got.Label)
	assert.Equal(t, []string{"Pad Thai", "Tom Yum"}, got.Meals)

	list, err = p.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "indian", list[0].Key)
	assert.Equal(t, "thai", list[1].Key)

	require.NoError(t, p.Save(catalog.Preset{Key: "thai", Meals: []string{"Green Curry"}}))
	got, err = p.Get("thai")
	require.NoError(t, err)
	assert.Equal(t, []string{"Green Curry"}, got.Meals)

	require.NoError(t, p.Delete("thai"))
	_, err = p.Get("thai")
	assert.True(t, errors.Is(err, ErrPresetNotFound))

	list, err = p.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPresetsRejectInvalid(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	require.NoError(t, err)

	err = p.Save(catalog.Preset{Key: "no meals"})
	assert.Error(t, err)
}

func TestPresetsDeleteMissing(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	require.NoError(t, err)

	err = p.Delete("ghost")
	assert.True(t, errors.Is(err, ErrPresetNotFound))
}

func TestPresetsRejectKeysOutsideStore(t *testing.T) {
	root := t.TempDir()
	victim := filepath.Join(root, "victim.json")
	require.NoError(t, os.WriteFile(victim, []byte(`{"key":"victim","meals":["x"]}`), 0o644))

	p, err := Load(testConfig{path: filepath.Join(root, "lunch")})
	require.NoError(t, err)

	for _, key := range []string{"../../victim", "../victim", "a/b", ""} {
		err = p.Delete(key)
		assert.Truef(t, errors.Is(err, ErrPresetNotFound), "delete %q: %v", key, err)

		_, err = p.Get(key)
		assert.Truef(t, errors.Is(err, ErrPresetNotFound), "get %q: %v", key, err)
	}

	_, err = os.Stat(victim)
	assert.NoError(t, err, "file outside the store must survive")
}

func TestPresetsListSkipsCorruptFiles(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	require.NoError(t, err)
	require.NoError(t, p.Save(catalog.Preset{Key: "thai", Meals: []string{"Pad Thai"}}))
	require.NoError(t, os.WriteFile(filepath.Join(base, "presets", "broken.json"), []byte("{"), 0o644))

	list, err := p.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "thai", list[0].Key)
}

func TestLoadRequiresBasePath(t *testing.T) {
	_, err := Load(testConfig{})
	assert.Error(t, err)
}
