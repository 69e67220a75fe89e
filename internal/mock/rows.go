package mock

import "github.com/tableforge/tableforge/internal/model"

// BuildRows walks the schema's fields in order, generates each field's value
// list, and zips the lists positionally into rows.
//
// Two rules are load-bearing for downstream SQL construction:
//   - a primary-key field always receives the sequence 1..rowCount, whatever
//     strategy it declares;
//   - a field whose generator returned an empty list contributes no column to
//     any row, rather than a null or empty value.
func BuildRows(schema model.TableSchema, registry *Registry, rowCount int) ([]model.Row, error) {
	rows := make([]model.Row, rowCount)
	for _, field := range schema.Fields {
		values, err := generateField(field, registry, rowCount)
		if err != nil {
			return nil, err
		}
		if len(values) == 0 {
			continue
		}
		for i := range rows {
			rows[i].Append(field.FieldName, values[i])
		}
	}
	return rows, nil
}

func generateField(field model.Field, registry *Registry, rowCount int) ([]string, error) {
	if field.PrimaryKey {
		return sequence(1, rowCount), nil
	}
	gen, err := registry.Resolve(field.MockStrategy)
	if err != nil {
		return nil, err
	}
	return gen.Generate(field, rowCount)
}
