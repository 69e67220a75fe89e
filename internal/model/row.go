package model

import (
	"bytes"
	"encoding/json"
)

// Column is one generated cell: a field name paired with its rendered value.
type Column struct {
	Field string
	Value string
}

// Row is one generated mock row. Columns keep schema field order, which every
// output target (INSERT statements, JSON, object code) must preserve. A field
// whose generator produced no values is simply absent from the row.
type Row struct {
	Columns []Column
}

// Append adds a column to the row.
func (r *Row) Append(field, value string) {
	r.Columns = append(r.Columns, Column{Field: field, Value: value})
}

// Get returns the value for a field and whether the row contains it.
func (r *Row) Get(field string) (string, bool) {
	for _, c := range r.Columns {
		if c.Field == field {
			return c.Value, true
		}
	}
	return "", false
}

// FieldNames returns the column names present in this row, in order.
func (r *Row) FieldNames() []string {
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Field
	}
	return names
}

// MarshalJSON renders the row as a flat JSON object. Keys are written in
// column order rather than the sorted order a map would produce.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Field)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
