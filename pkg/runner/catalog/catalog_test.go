package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cat "github.com/branyzp/whatsforlunch/pkg/catalog"
)

func TestCatalogTable(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	c := &Catalog{Out: &buf}

	require.NoError(t, c.Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Fast Food")
	assert.Contains(t, out, "japanese")
	assert.Contains(t, out, "Tonkatsu, Sushi, Tori Q, Ramen")
	assert.Contains(t, out, "Category")
}

func TestCatalogJSON(t *testing.T) {
	var buf bytes.Buffer
	c := &Catalog{Out: &buf, JSON: true}

	require.NoError(t, c.Do(context.Background()))

	var got []cat.Category
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "hawker", got[1].Key)
	assert.Equal(t, "Zhi Char", got[1].Meals[5])
}
