package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableforge/tableforge/internal/model"
)

func TestMemoryCatalogLookup(t *testing.T) {
	cat := NewMemoryCatalog(map[string]string{"城市": `{"fieldName":"city","fieldType":"varchar(30)"}`})

	entry, err := cat.Lookup(context.Background(), "城市")
	require.NoError(t, err)
	assert.True(t, entry.Matched)

	field, err := DecodeField(entry.FieldJSON)
	require.NoError(t, err)
	assert.Equal(t, "city", field.FieldName)
	assert.Equal(t, "varchar(30)", field.FieldType)

	entry, err = cat.Lookup(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, entry.Matched)
}

func TestMemoryCatalogLookupByFieldName(t *testing.T) {
	cat := NewMemoryCatalog(map[string]string{"城市": `{"fieldName":"city","fieldType":"varchar(30)"}`})

	entry, err := cat.Lookup(context.Background(), "city")
	require.NoError(t, err)
	require.True(t, entry.Matched)

	field, err := DecodeField(entry.FieldJSON)
	require.NoError(t, err)
	assert.Equal(t, "city", field.FieldName)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
- label: 城市
  field:
    fieldName: city
    fieldType: varchar(30)
    notNull: true
    mockStrategy: random
    mockParams: city
- label: 邮箱
  field:
    fieldName: email
    fieldType: varchar(100)
    mockStrategy: random
    mockParams: email
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cat, err := LoadFile(path)
	require.NoError(t, err)

	entry, err := cat.Lookup(context.Background(), "邮箱")
	require.NoError(t, err)
	require.True(t, entry.Matched)

	field, err := DecodeField(entry.FieldJSON)
	require.NoError(t, err)
	assert.Equal(t, "email", field.FieldName)
	assert.Equal(t, model.StrategyRandom, field.MockStrategy)

	// Loaded entries also resolve by stored field name.
	entry, err = cat.Lookup(context.Background(), "city")
	require.NoError(t, err)
	assert.True(t, entry.Matched)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindConfiguration))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{: not yaml"), 0o600))
	_, err = LoadFile(path)
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindParse))
}

func TestDecodeFieldError(t *testing.T) {
	_, err := DecodeField("{not json")
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindParse))
}
