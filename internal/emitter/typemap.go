package emitter

import (
	"fmt"
	"strings"
)

// javaTypes maps normalized dialect type tokens to Java type keywords.
var javaTypes = map[string]string{
	"tinyint":    "Integer",
	"smallint":   "Integer",
	"mediumint":  "Integer",
	"int":        "Integer",
	"integer":    "Integer",
	"year":       "Integer",
	"bigint":     "Long",
	"timestamp":  "Long",
	"float":      "Float",
	"double":     "Double",
	"decimal":    "BigDecimal",
	"date":       "Date",
	"time":       "Time",
	"datetime":   "Date",
	"char":       "String",
	"varchar":    "String",
	"tinytext":   "String",
	"text":       "String",
	"mediumtext": "String",
	"longtext":   "String",
	"tinyblob":   "byte[]",
	"blob":       "byte[]",
	"mediumblob": "byte[]",
	"longblob":   "byte[]",
	"binary":     "byte[]",
	"varbinary":  "byte[]",
	"bit":        "Boolean",
	"bool":       "Boolean",
	"boolean":    "Boolean",
}

// typescriptTypes maps normalized dialect type tokens to TypeScript types.
var typescriptTypes = map[string]string{
	"tinyint":    "number",
	"smallint":   "number",
	"mediumint":  "number",
	"int":        "number",
	"integer":    "number",
	"year":       "number",
	"bigint":     "number",
	"timestamp":  "number",
	"float":      "number",
	"double":     "number",
	"decimal":    "number",
	"date":       "Date",
	"time":       "Date",
	"datetime":   "Date",
	"char":       "string",
	"varchar":    "string",
	"tinytext":   "string",
	"text":       "string",
	"mediumtext": "string",
	"longtext":   "string",
	"tinyblob":   "Blob",
	"blob":       "Blob",
	"mediumblob": "Blob",
	"longblob":   "Blob",
	"binary":     "Blob",
	"varbinary":  "Blob",
	"bit":        "boolean",
	"bool":       "boolean",
	"boolean":    "boolean",
}

// normalizeType lowers a dialect type token and strips any length or
// precision suffix: "VARCHAR(255)" -> "varchar".
func normalizeType(fieldType string) string {
	t := strings.ToLower(strings.TrimSpace(fieldType))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return t
}

// unmappedMarker is emitted in place of a target type when the dialect token
// has no mapping. Emission is best-effort per field, never a hard failure.
func unmappedMarker(fallback, fieldType string) string {
	return fmt.Sprintf("%s /* unmapped: %s */", fallback, normalizeType(fieldType))
}

// javaType resolves a dialect type token to a Java type keyword.
func javaType(fieldType string) string {
	if t, ok := javaTypes[normalizeType(fieldType)]; ok {
		return t
	}
	return unmappedMarker("Object", fieldType)
}

// typescriptType resolves a dialect type token to a TypeScript type.
func typescriptType(fieldType string) string {
	if t, ok := typescriptTypes[normalizeType(fieldType)]; ok {
		return t
	}
	return unmappedMarker("unknown", fieldType)
}
