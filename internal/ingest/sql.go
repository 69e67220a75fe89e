// Package ingest builds table schemas from external descriptions: SQL DDL
// text, spreadsheet exports, and comma-separated field labels.
package ingest

import (
	"github.com/tableforge/tableforge/internal/model"
)

// FromSQL parses a CREATE TABLE statement and returns the equivalent schema.
// Every field starts with the "none" mock strategy; strategies are assigned by
// the caller afterwards.
func FromSQL(ddl string) (model.TableSchema, error) {
	stmt, err := parseCreateTable(ddl)
	if err != nil {
		return model.TableSchema{}, model.ParseError(err, "invalid CREATE TABLE statement")
	}

	tablePK := make(map[string]bool, len(stmt.PrimaryKeys))
	for _, name := range stmt.PrimaryKeys {
		tablePK[name] = true
	}

	schema := model.TableSchema{
		DBName:       stmt.DBName,
		TableName:    stmt.TableName,
		TableComment: stmt.TableComment,
		MockRowCount: model.DefaultMockRowCount,
		Fields:       make([]model.Field, 0, len(stmt.Columns)),
	}
	for _, col := range stmt.Columns {
		schema.Fields = append(schema.Fields, model.Field{
			FieldName:     col.Name,
			FieldType:     col.Type,
			DefaultValue:  col.Default,
			NotNull:       col.NotNull,
			Comment:       col.Comment,
			PrimaryKey:    col.PrimaryKey || col.Unique || tablePK[col.Name],
			AutoIncrement: col.AutoIncrement,
			OnUpdate:      col.OnUpdate,
			MockStrategy:  model.StrategyNone,
		})
	}
	return schema, nil
}
