// Package openapi renders a table schema as an OpenAPI 3.1 document with one
// component schema per table, so generated APIs can be documented alongside
// the generated DDL and code.
package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/tableforge/tableforge/internal/model"
)

// TableSpec generates an OpenAPI 3.1 document describing one table as an
// object schema. Required properties are the not-null fields without a
// default; auto-increment fields are marked read-only.
func TableSpec(schema model.TableSchema) *openapi3.T {
	title := schema.TableComment
	if title == "" {
		title = schema.TableName
	}

	doc := &openapi3.T{
		OpenAPI: "3.1.0",
		Info: &openapi3.Info{
			Title:       fmt.Sprintf("%s schema", schema.TableName),
			Description: fmt.Sprintf("Generated schema document for %s.", title),
			Version:     "1.0.0",
		},
	}

	components := openapi3.NewComponents()
	components.Schemas = openapi3.Schemas{
		schema.TableName: fieldsToSchema(schema),
	}
	doc.Components = &components
	doc.Paths = openapi3.NewPaths()
	return doc
}

// TableSpecJSON renders the document as indented JSON for the report.
func TableSpecJSON(schema model.TableSchema) (string, error) {
	b, err := json.MarshalIndent(TableSpec(schema), "", "  ")
	if err != nil {
		return "", model.ParseError(err, "marshal openapi spec")
	}
	return string(b), nil
}

// fieldsToSchema converts the field list to an OpenAPI object schema with one
// property per field, in schema order.
func fieldsToSchema(schema model.TableSchema) *openapi3.SchemaRef {
	props := openapi3.Schemas{}
	var required []string

	for _, field := range schema.Fields {
		m := MapDBType(field.FieldType)
		s := &openapi3.Schema{
			Type:        &openapi3.Types{m.Type},
			Format:      m.Format,
			Description: field.Comment,
		}
		if !field.NotNull && !field.PrimaryKey {
			s.Nullable = true
		}
		if field.AutoIncrement {
			s.ReadOnly = true
		}
		if field.DefaultValue != "" {
			s.Default = field.DefaultValue
		}
		props[field.FieldName] = &openapi3.SchemaRef{Value: s}

		if field.NotNull && field.DefaultValue == "" && !field.AutoIncrement {
			required = append(required, field.FieldName)
		}
	}

	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:        &openapi3.Types{"object"},
			Description: schema.TableComment,
			Properties:  props,
			Required:    required,
		},
	}
}
