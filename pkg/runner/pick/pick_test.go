package pick

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branyzp/whatsforlunch/pkg/app"
	"github.com/branyzp/whatsforlunch/pkg/catalog"
	"github.com/branyzp/whatsforlunch/pkg/picker"
)

func TestPickJSON(t *testing.T) {
	var buf bytes.Buffer
	seed := uint64(7)
	p := &Pick{
		Categories: []string{"jap", "japanese"},
		Meals:      []string{"Mee Pok"},
		Seed:       &seed,
		JSON:       true,
		Out:        &buf,
	}
	require.NoError(t, p.Do(context.Background()))

	var got Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	want := []string{"Tonkatsu", "Sushi", "Tori Q", "Ramen", "Mee Pok"}
	assert.Equal(t, want, got.Pool)
	assert.True(t, got.Picked)
	assert.True(t, got.Celebrating)
	assert.Contains(t, want, got.Selection)
	assert.Equal(t, []string{"japanese"}, got.Skipped)
}

func TestPickSeedIsReproducible(t *testing.T) {
	run := func() string {
		var buf bytes.Buffer
		seed := uint64(99)
		p := &Pick{Categories: []string{"hawker", "western"}, Seed: &seed, Quiet: true, Out: &buf}
		require.NoError(t, p.Do(context.Background()))
		return strings.TrimSpace(buf.String())
	}
	first := run()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, run())
}

func TestPickEmptyPool(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	p := &Pick{Out: &buf}
	require.NoError(t, p.Do(context.Background()))
	assert.Contains(t, buf.String(), "Nothing to pick from")

	buf.Reset()
	p = &Pick{Out: &buf, JSON: true}
	require.NoError(t, p.Do(context.Background()))
	var got Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.False(t, got.Picked)
	assert.False(t, got.Celebrating)
	assert.Empty(t, got.Pool)
}

func TestPickUnknownCategory(t *testing.T) {
	p := &Pick{Categories: []string{"thai"}, Out: &bytes.Buffer{}}
	err := p.Do(context.Background())
	assert.True(t, errors.Is(err, catalog.ErrUnknownCategory))
}

func TestPickUnguardedPolicy(t *testing.T) {
	var buf bytes.Buffer
	p := &Pick{
		Service:    &app.Service{Policy: picker.Policy{ResetClearsAll: true}},
		Categories: []string{"western", "western"},
		JSON:       true,
		Out:        &buf,
	}
	require.NoError(t, p.Do(context.Background()))

	var got Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got.Pool, 8)
	assert.Empty(t, got.Skipped)
}
