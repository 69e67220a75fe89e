// Package sqlgen composes CREATE TABLE and INSERT statements from a table
// schema, a dialect, and generated rows.
package sqlgen

import (
	"fmt"
	"strings"

	"github.com/tableforge/tableforge/internal/dialect"
	"github.com/tableforge/tableforge/internal/model"
)

// Builder renders SQL text for one dialect.
type Builder struct {
	dialect dialect.Dialect
}

// NewBuilder returns a builder bound to the given dialect.
func NewBuilder(d dialect.Dialect) *Builder {
	return &Builder{dialect: d}
}

// CreateTable renders the full CREATE TABLE statement: a comment header, the
// qualified table name, one fragment per field in schema order, and a comment
// footer. The table comment falls back to the table name.
func (b *Builder) CreateTable(schema model.TableSchema) string {
	comment := schema.TableComment
	if comment == "" {
		comment = schema.TableName
	}

	fragments := make([]string, len(schema.Fields))
	for i, field := range schema.Fields {
		fragments[i] = b.CreateField(field)
	}

	var sb strings.Builder
	sb.WriteString("-- ")
	sb.WriteString(comment)
	sb.WriteString("\n")
	sb.WriteString("create table if not exists ")
	sb.WriteString(b.qualifiedTableName(schema))
	sb.WriteString("\n(\n    ")
	sb.WriteString(strings.Join(fragments, ",\n    "))
	sb.WriteString("\n) comment '")
	sb.WriteString(comment)
	sb.WriteString("';")
	return sb.String()
}

// CreateField renders one column definition fragment in the fixed token
// order: name, type, default, nullability, auto_increment, on update,
// comment, primary key.
func (b *Builder) CreateField(field model.Field) string {
	tokens := make([]string, 0, 8)
	tokens = append(tokens, b.dialect.QuoteIdentifier(field.FieldName))
	tokens = append(tokens, field.FieldType)
	if field.DefaultValue != "" {
		tokens = append(tokens, fmt.Sprintf("default '%s'", field.DefaultValue))
	}
	// Primary keys are not nullable even when the schema leaves notNull unset.
	if field.NotNull || field.PrimaryKey {
		tokens = append(tokens, "not null")
	} else {
		tokens = append(tokens, "null")
	}
	if field.AutoIncrement {
		tokens = append(tokens, "auto_increment")
	}
	if field.OnUpdate != "" {
		tokens = append(tokens, "on update "+field.OnUpdate)
	}
	if field.Comment != "" {
		tokens = append(tokens, fmt.Sprintf("comment '%s'", field.Comment))
	}
	if field.PrimaryKey {
		tokens = append(tokens, "primary key")
	}
	return strings.Join(tokens, " ")
}

// Inserts renders one INSERT statement per row, in row order. Each statement
// lists only the columns present in its row, in schema field order. Values
// are emitted exactly as generated, with no quoting or escaping by declared
// type.
func (b *Builder) Inserts(schema model.TableSchema, rows []model.Row) []string {
	table := b.qualifiedTableName(schema)
	statements := make([]string, 0, len(rows))
	for _, row := range rows {
		names := make([]string, 0, len(row.Columns))
		values := make([]string, 0, len(row.Columns))
		for _, field := range schema.Fields {
			value, ok := row.Get(field.FieldName)
			if !ok {
				continue
			}
			names = append(names, b.dialect.QuoteIdentifier(field.FieldName))
			values = append(values, value)
		}
		statements = append(statements, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
			table, strings.Join(names, ", "), strings.Join(values, ", ")))
	}
	return statements
}

func (b *Builder) qualifiedTableName(schema model.TableSchema) string {
	name := b.dialect.QuoteIdentifier(schema.TableName)
	if schema.DBName != "" {
		return b.dialect.QuoteIdentifier(schema.DBName) + "." + name
	}
	return name
}
