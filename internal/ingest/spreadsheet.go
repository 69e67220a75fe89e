package ingest

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/tableforge/tableforge/internal/model"
)

// spreadsheetColumns is the fixed column contract for spreadsheet imports.
// The first data row supplies table metadata in the leading columns; every
// row supplies one field definition in the remaining columns.
var spreadsheetColumns = []string{
	"dbName", "tableName", "tableComment", "mockRowCount",
	"fieldName", "fieldType", "defaultValue", "notNull", "comment",
	"primaryKey", "autoIncrement", "mockStrategy", "mockParams", "onUpdate",
}

const (
	colDBName = iota
	colTableName
	colTableComment
	colMockRowCount
	colFieldName
	colFieldType
	colDefaultValue
	colNotNull
	colComment
	colPrimaryKey
	colAutoIncrement
	colMockStrategy
	colMockParams
	colOnUpdate
)

// FromSpreadsheet reads a CSV export with the spreadsheetColumns header and
// returns the described schema. Missing metadata cells fall back to defaults;
// a fully blank row ends the field list.
func FromSpreadsheet(r io.Reader) (model.TableSchema, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return model.TableSchema{}, model.ValidationError("spreadsheet is empty")
	}
	if err != nil {
		return model.TableSchema{}, model.ParseError(err, "reading spreadsheet header")
	}
	if err := checkHeader(header); err != nil {
		return model.TableSchema{}, err
	}

	schema := model.TableSchema{
		DBName:       "test_db",
		TableName:    "test_table",
		TableComment: "imported table",
		MockRowCount: model.DefaultMockRowCount,
	}

	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.TableSchema{}, model.ParseError(err, "reading spreadsheet row")
		}
		if blankRecord(record) {
			break
		}

		if first {
			first = false
			if v := cell(record, colDBName); v != "" {
				schema.DBName = v
			}
			if v := cell(record, colTableName); v != "" {
				schema.TableName = v
			}
			if v := cell(record, colTableComment); v != "" {
				schema.TableComment = v
			}
			if v := cell(record, colMockRowCount); v != "" {
				n, err := strconv.Atoi(v)
				if err != nil {
					return model.TableSchema{}, model.ValidationError("mockRowCount %q is not a number", v)
				}
				schema.MockRowCount = n
			}
		}

		field, err := recordToField(record)
		if err != nil {
			return model.TableSchema{}, err
		}
		schema.Fields = append(schema.Fields, field)
	}

	if len(schema.Fields) == 0 {
		return model.TableSchema{}, model.ValidationError("spreadsheet has no field rows")
	}
	return schema, nil
}

// checkHeader verifies the header names match spreadsheetColumns positionally.
// A trailing asterisk on a header cell marks a required column and is ignored.
func checkHeader(header []string) error {
	if len(header) < len(spreadsheetColumns) {
		return model.ValidationError("spreadsheet header has %d columns, want %d", len(header), len(spreadsheetColumns))
	}
	for i, want := range spreadsheetColumns {
		got := strings.TrimSuffix(strings.TrimSpace(header[i]), "*")
		if got != want {
			return model.ValidationError("spreadsheet column %d is %q, want %q", i+1, got, want)
		}
	}
	return nil
}

func recordToField(record []string) (model.Field, error) {
	name := cell(record, colFieldName)
	typ := cell(record, colFieldType)
	if name == "" {
		return model.Field{}, model.ValidationError("spreadsheet row is missing fieldName")
	}
	if typ == "" {
		return model.Field{}, model.ValidationError("field %q is missing fieldType", name)
	}
	strategy := model.MockStrategy(strings.ToLower(cell(record, colMockStrategy))).Normalize()
	return model.Field{
		FieldName:     name,
		FieldType:     strings.ToLower(typ),
		DefaultValue:  cell(record, colDefaultValue),
		NotNull:       truthy(cell(record, colNotNull)),
		Comment:       cell(record, colComment),
		PrimaryKey:    truthy(cell(record, colPrimaryKey)),
		AutoIncrement: truthy(cell(record, colAutoIncrement)),
		OnUpdate:      cell(record, colOnUpdate),
		MockStrategy:  strategy,
		MockParams:    cell(record, colMockParams),
	}, nil
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func blankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}
