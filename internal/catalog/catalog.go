// Package catalog maps free-text field labels to stored field definitions.
package catalog

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tableforge/tableforge/internal/model"
)

// Entry is the result of a label lookup. FieldJSON holds a serialized
// model.Field when Matched is true.
type Entry struct {
	Matched   bool
	FieldJSON string
}

// Catalog resolves a label to a stored field definition.
type Catalog interface {
	Lookup(ctx context.Context, word string) (Entry, error)
}

// ---------------------------------------------------------------------------
// In-memory catalog
// ---------------------------------------------------------------------------

// MemoryCatalog is a map-backed Catalog. Entries are indexed by display
// label and by the stored definition's field name, so a lookup matches
// either key. The zero value is an empty catalog.
type MemoryCatalog struct {
	byLabel     map[string]string
	byFieldName map[string]string
}

func NewMemoryCatalog(entries map[string]string) *MemoryCatalog {
	c := &MemoryCatalog{
		byLabel:     make(map[string]string, len(entries)),
		byFieldName: make(map[string]string, len(entries)),
	}
	for label, fieldJSON := range entries {
		c.byLabel[label] = fieldJSON
		if field, err := DecodeField(fieldJSON); err == nil && field.FieldName != "" {
			c.byFieldName[field.FieldName] = fieldJSON
		}
	}
	return c
}

func (c *MemoryCatalog) Lookup(_ context.Context, word string) (Entry, error) {
	if fieldJSON, ok := c.byLabel[word]; ok {
		return Entry{Matched: true, FieldJSON: fieldJSON}, nil
	}
	if fieldJSON, ok := c.byFieldName[word]; ok {
		return Entry{Matched: true, FieldJSON: fieldJSON}, nil
	}
	return Entry{}, nil
}

// ---------------------------------------------------------------------------
// File-backed catalog
// ---------------------------------------------------------------------------

// fileEntry is one record in a catalog YAML file.
type fileEntry struct {
	Label string      `yaml:"label"`
	Field model.Field `yaml:"field"`
}

// LoadFile reads a YAML catalog file into a MemoryCatalog. The file is a
// list of label/field pairs; later entries win on duplicate labels.
func LoadFile(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.ConfigurationError("reading catalog file: %v", err)
	}
	var entries []fileEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, model.ParseError(err, "parsing catalog file %s", path)
	}
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		fieldJSON, err := marshalField(e.Field)
		if err != nil {
			return nil, err
		}
		m[e.Label] = fieldJSON
	}
	return NewMemoryCatalog(m), nil
}
