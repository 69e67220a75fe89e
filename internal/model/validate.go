package model

import "strings"

// Profile selects the mock-row-count bounds to enforce. The full generation
// path and the structured-request path historically used different bounds;
// they are kept as two distinct profiles rather than collapsed.
type Profile int

const (
	// ProfileFull bounds the row count to [10,100].
	ProfileFull Profile = iota
	// ProfileRequest bounds the row count to [5,30].
	ProfileRequest
)

// DefaultMockRowCount is applied when a schema does not set MockRowCount.
const DefaultMockRowCount = 20

func (p Profile) bounds() (min, max int) {
	if p == ProfileRequest {
		return 5, 30
	}
	return 10, 100
}

// Validate checks a schema before generation and returns the first violation
// as a ValidationError. A zero MockRowCount is treated as the default and is
// not bounds-checked.
func (s TableSchema) Validate(profile Profile) error {
	if strings.TrimSpace(s.TableName) == "" {
		return ValidationError("table name must not be empty")
	}
	if s.MockRowCount != 0 {
		min, max := profile.bounds()
		if s.MockRowCount < min || s.MockRowCount > max {
			return ValidationError("mock row count %d out of bounds [%d,%d]", s.MockRowCount, min, max)
		}
	}
	if len(s.Fields) == 0 {
		return ValidationError("field list must not be empty")
	}
	seen := make(map[string]struct{}, len(s.Fields))
	for i, f := range s.Fields {
		if strings.TrimSpace(f.FieldName) == "" {
			return ValidationError("field %d: name must not be empty", i)
		}
		if strings.TrimSpace(f.FieldType) == "" {
			return ValidationError("field %q: type must not be empty", f.FieldName)
		}
		if _, dup := seen[f.FieldName]; dup {
			return ValidationError("field %q: duplicate name", f.FieldName)
		}
		seen[f.FieldName] = struct{}{}
	}
	return nil
}

// RowCount returns the effective number of mock rows to generate.
func (s TableSchema) RowCount() int {
	if s.MockRowCount == 0 {
		return DefaultMockRowCount
	}
	return s.MockRowCount
}
