package openapi

import "strings"

// TypeMapping maps a dialect column type to an OpenAPI type/format pair.
type TypeMapping struct {
	Type   string // OpenAPI type: string, integer, number, boolean, object
	Format string // OpenAPI format: int32, int64, float, double, date-time, byte, ...
}

// dbTypeToOpenAPI maps dialect column types to OpenAPI types (case-insensitive
// lookup after normalization).
var dbTypeToOpenAPI = map[string]TypeMapping{
	// Integer types
	"tinyint":   {"integer", "int32"},
	"smallint":  {"integer", "int32"},
	"mediumint": {"integer", "int32"},
	"int":       {"integer", "int32"},
	"integer":   {"integer", "int32"},
	"year":      {"integer", "int32"},
	"bigint":    {"integer", "int64"},

	// Decimal types
	"float":   {"number", "float"},
	"double":  {"number", "double"},
	"decimal": {"number", "double"},
	"numeric": {"number", "double"},

	// String types
	"char":       {"string", ""},
	"varchar":    {"string", ""},
	"tinytext":   {"string", ""},
	"text":       {"string", ""},
	"mediumtext": {"string", ""},
	"longtext":   {"string", ""},
	"enum":       {"string", ""},

	// Date/time types
	"date":      {"string", "date"},
	"datetime":  {"string", "date-time"},
	"timestamp": {"string", "date-time"},
	"time":      {"string", "time"},

	// Boolean
	"boolean": {"boolean", ""},
	"bool":    {"boolean", ""},
	"bit":     {"boolean", ""},

	// Binary
	"binary":     {"string", "byte"},
	"varbinary":  {"string", "byte"},
	"tinyblob":   {"string", "byte"},
	"blob":       {"string", "byte"},
	"mediumblob": {"string", "byte"},
	"longblob":   {"string", "byte"},

	// JSON
	"json": {"object", ""},
}

// MapDBType converts a dialect column type to an OpenAPI type mapping.
// Falls back to {"string", ""} for unknown types.
func MapDBType(dbType string) TypeMapping {
	normalized := strings.ToLower(strings.TrimSpace(dbType))

	// Strip anything after opening paren: "varchar(255)" -> "varchar"
	if idx := strings.IndexByte(normalized, '('); idx >= 0 {
		normalized = normalized[:idx]
	}

	// Strip "unsigned" suffix: "int unsigned" -> "int"
	normalized = strings.TrimSuffix(normalized, " unsigned")
	normalized = strings.TrimSpace(normalized)

	if m, ok := dbTypeToOpenAPI[normalized]; ok {
		return m
	}
	return TypeMapping{Type: "string"}
}
