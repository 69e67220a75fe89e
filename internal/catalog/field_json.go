package catalog

import (
	"encoding/json"

	"github.com/tableforge/tableforge/internal/model"
)

func marshalField(f model.Field) (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", model.ParseError(err, "encoding catalog field")
	}
	return string(data), nil
}

// DecodeField parses a stored field definition from an Entry.
func DecodeField(fieldJSON string) (model.Field, error) {
	var f model.Field
	if err := json.Unmarshal([]byte(fieldJSON), &f); err != nil {
		return model.Field{}, model.ParseError(err, "decoding catalog field")
	}
	return f, nil
}
