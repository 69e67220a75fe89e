package emitter

import (
	"bytes"

	"github.com/dave/jennifer/jen"

	"github.com/tableforge/tableforge/internal/model"
)

// goType resolves a dialect type token to the jen code for a Go type.
// Unmapped tokens fall back to any with an inline marker comment.
func goType(fieldType string) (jen.Code, bool) {
	switch normalizeType(fieldType) {
	case "tinyint", "smallint", "mediumint", "int", "integer", "year":
		return jen.Int(), true
	case "bigint", "timestamp":
		return jen.Int64(), true
	case "float":
		return jen.Float32(), true
	case "double", "decimal":
		return jen.Float64(), true
	case "date", "time", "datetime":
		return jen.Qual("time", "Time"), true
	case "char", "varchar", "tinytext", "text", "mediumtext", "longtext":
		return jen.String(), true
	case "tinyblob", "blob", "mediumblob", "longblob", "binary", "varbinary":
		return jen.Index().Byte(), true
	case "bit", "bool", "boolean":
		return jen.Bool(), true
	default:
		return jen.Any(), false
	}
}

// GoStruct emits a Go struct declaration for the schema, one exported field
// per column with a json tag carrying the original column name.
func GoStruct(schema model.TableSchema) (string, error) {
	f := jen.NewFile("model")
	if schema.TableComment != "" {
		f.Comment(className(schema.TableName) + " is " + schema.TableComment + ".")
	}
	f.Type().Id(className(schema.TableName)).StructFunc(func(g *jen.Group) {
		for _, field := range schema.Fields {
			typ, mapped := goType(field.FieldType)
			stmt := g.Id(goFieldName(field.FieldName)).Add(typ).
				Tag(map[string]string{"json": field.FieldName})
			switch {
			case !mapped:
				stmt.Comment("unmapped: " + normalizeType(field.FieldType))
			case field.Comment != "":
				stmt.Comment(field.Comment)
			}
		}
	})

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", model.ParseError(err, "render go struct")
	}
	return buf.String(), nil
}
