package emitter

import (
	"encoding/json"

	"github.com/tableforge/tableforge/internal/model"
)

// BuildJSON serializes generated rows as a JSON array of flat objects,
// independent of the schema's declared types. Keys keep schema field order.
func BuildJSON(rows []model.Row) (string, error) {
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", model.ParseError(err, "marshal mock rows")
	}
	return string(b), nil
}
