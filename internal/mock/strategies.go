package mock

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/tableforge/tableforge/internal/fake"
	"github.com/tableforge/tableforge/internal/model"
)

// fixedFallback is emitted when the fixed strategy has no params, matching
// the engine's historical fallback literal.
const fixedFallback = "6"

// currentTimestampToken in a default value is replaced by the wall clock at
// generation time, captured once per batch.
const currentTimestampToken = "CURRENT_TIMESTAMP"

const timeLayout = "2006-01-02 15:04:05"

// fixedGenerator repeats the mock params rowCount times.
type fixedGenerator struct{}

func (fixedGenerator) Generate(field model.Field, rowCount int) ([]string, error) {
	value := field.MockParams
	if value == "" {
		value = fixedFallback
	}
	values := make([]string, rowCount)
	for i := range values {
		values[i] = value
	}
	return values, nil
}

// incrementGenerator returns start, start+1, ... with start parsed from the
// mock params, defaulting to 1 when blank or unparsable.
type incrementGenerator struct{}

func (incrementGenerator) Generate(field model.Field, rowCount int) ([]string, error) {
	start := 1
	if s := strings.TrimSpace(field.MockParams); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			start = n
		}
	}
	return sequence(start, rowCount), nil
}

// randomGenerator draws one independent value per row from the synthetic-data
// provider, in the category named by the mock params.
type randomGenerator struct {
	provider fake.Provider
}

func (g randomGenerator) Generate(field model.Field, rowCount int) ([]string, error) {
	category := fake.ParseCategory(field.MockParams)
	values := make([]string, rowCount)
	for i := range values {
		values[i] = g.provider.Value(category)
	}
	return values, nil
}

// dictionaryGenerator draws rowCount values uniformly, with replacement, from
// a JSON array of candidates.
type dictionaryGenerator struct{}

func (dictionaryGenerator) Generate(field model.Field, rowCount int) ([]string, error) {
	var candidates []string
	if err := json.Unmarshal([]byte(field.MockParams), &candidates); err != nil {
		return nil, model.ParseError(err, "field %q: dictionary params is not a JSON string array", field.FieldName)
	}
	if len(candidates) == 0 {
		return nil, model.ParseError(nil, "field %q: dictionary params is empty", field.FieldName)
	}
	values := make([]string, rowCount)
	for i := range values {
		values[i] = candidates[rand.Intn(len(candidates))]
	}
	return values, nil
}

// noneGenerator repeats the field's default value, or produces nothing at all
// when no default is set. The special CURRENT_TIMESTAMP default is replaced
// by one wall-clock value shared by the whole batch.
type noneGenerator struct{}

func (noneGenerator) Generate(field model.Field, rowCount int) ([]string, error) {
	value := field.DefaultValue
	if value == "" {
		return nil, nil
	}
	if strings.EqualFold(value, currentTimestampToken) {
		value = time.Now().Format(timeLayout)
	}
	values := make([]string, rowCount)
	for i := range values {
		values[i] = value
	}
	return values, nil
}

func sequence(start, count int) []string {
	values := make([]string, count)
	for i := range values {
		values[i] = strconv.Itoa(start + i)
	}
	return values
}
