package ingest

import (
	"context"
	"strings"

	"github.com/tableforge/tableforge/internal/catalog"
	"github.com/tableforge/tableforge/internal/model"
)

// maxLabelWords caps how many labels a single request may carry.
const maxLabelWords = 20

// FromLabels builds a schema from a comma-separated list of field labels.
// Both ASCII and fullwidth commas separate labels. Labels found in the
// catalog use the stored field definition; unknown labels become plain text
// fields named and commented by the label itself.
func FromLabels(ctx context.Context, labels string, cat catalog.Catalog) (model.TableSchema, error) {
	words := splitLabels(labels)
	if len(words) == 0 {
		return model.TableSchema{}, model.ValidationError("no field labels given")
	}
	if len(words) > maxLabelWords {
		return model.TableSchema{}, model.ValidationError("too many field labels: %d, at most %d", len(words), maxLabelWords)
	}

	schema := model.TableSchema{
		TableName:    "my_table",
		TableComment: "generated table",
		MockRowCount: model.DefaultMockRowCount,
		Fields:       make([]model.Field, 0, len(words)),
	}
	for _, word := range words {
		field, err := resolveLabel(ctx, word, cat)
		if err != nil {
			return model.TableSchema{}, err
		}
		schema.Fields = append(schema.Fields, field)
	}
	return schema, nil
}

func resolveLabel(ctx context.Context, word string, cat catalog.Catalog) (model.Field, error) {
	if cat != nil {
		entry, err := cat.Lookup(ctx, word)
		switch {
		case model.IsKind(err, model.KindLookup):
			// Fall through to a synthesized field.
		case err != nil:
			return model.Field{}, err
		case entry.Matched:
			field, err := catalog.DecodeField(entry.FieldJSON)
			if err != nil {
				return model.Field{}, err
			}
			return field, nil
		}
	}
	return model.Field{
		FieldName:    word,
		FieldType:    "text",
		Comment:      word,
		MockStrategy: model.StrategyNone,
	}, nil
}

func splitLabels(labels string) []string {
	parts := strings.FieldsFunc(labels, func(r rune) bool {
		return r == ',' || r == '，'
	})
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if w := strings.TrimSpace(p); w != "" {
			words = append(words, w)
		}
	}
	return words
}
