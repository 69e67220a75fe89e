package emitter

import "github.com/tableforge/tableforge/internal/model"

// JavaEntityData is the structured payload for the Java entity template.
type JavaEntityData struct {
	ClassName    string
	ClassComment string
	Fields       []JavaFieldData
}

// JavaFieldData is one member declaration of the generated entity class.
type JavaFieldData struct {
	Name    string
	Type    string
	Comment string
}

// ObjectCodeData is the payload for the object-literal template: one example
// object per generated row.
type ObjectCodeData struct {
	Objects []ObjectData
}

// ObjectData holds the construction statements for a single row.
type ObjectData struct {
	ClassName  string
	ObjectName string
	Fields     []ObjectFieldData
}

// ObjectFieldData is one setter invocation.
type ObjectFieldData struct {
	SetMethod string
	Value     string
}

// BuildJavaEntityData maps a schema to the Java entity payload. Type mapping
// is best-effort per field: unmapped dialect types produce a marker, never an
// error.
func BuildJavaEntityData(schema model.TableSchema) JavaEntityData {
	data := JavaEntityData{
		ClassName:    className(schema.TableName),
		ClassComment: schema.TableComment,
		Fields:       make([]JavaFieldData, 0, len(schema.Fields)),
	}
	for _, f := range schema.Fields {
		data.Fields = append(data.Fields, JavaFieldData{
			Name:    f.FieldName,
			Type:    javaType(f.FieldType),
			Comment: f.Comment,
		})
	}
	return data
}

// JavaEntity renders the entity class for a schema.
func JavaEntity(r Renderer, schema model.TableSchema) (string, error) {
	return r.Render("javaEntity.tmpl", BuildJavaEntityData(schema))
}

// BuildObjectCodeData maps generated rows to the object-literal payload.
// Every row gets its own freshly allocated ObjectData; reusing one builder
// across rows would alias all rows to the last one.
func BuildObjectCodeData(schema model.TableSchema, rows []model.Row) ObjectCodeData {
	data := ObjectCodeData{Objects: make([]ObjectData, 0, len(rows))}
	for i, row := range rows {
		obj := ObjectData{
			ClassName:  className(schema.TableName),
			ObjectName: objectName(schema.TableName, i+1),
			Fields:     make([]ObjectFieldData, 0, len(row.Columns)),
		}
		for _, col := range row.Columns {
			obj.Fields = append(obj.Fields, ObjectFieldData{
				SetMethod: setterName(col.Field),
				Value:     col.Value,
			})
		}
		data.Objects = append(data.Objects, obj)
	}
	return data
}

// JavaObject renders per-row construction code for the generated rows.
func JavaObject(r Renderer, schema model.TableSchema, rows []model.Row) (string, error) {
	return r.Render("javaObject.tmpl", BuildObjectCodeData(schema, rows))
}
