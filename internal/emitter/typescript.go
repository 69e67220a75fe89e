package emitter

import "github.com/tableforge/tableforge/internal/model"

// TypeScriptTypeData is the structured payload for the TypeScript template.
type TypeScriptTypeData struct {
	ClassName    string
	ClassComment string
	Fields       []TypeScriptFieldData
}

// TypeScriptFieldData is one member of the generated interface.
type TypeScriptFieldData struct {
	Name    string
	Type    string
	Comment string
}

// BuildTypeScriptTypeData maps a schema to the TypeScript payload.
func BuildTypeScriptTypeData(schema model.TableSchema) TypeScriptTypeData {
	data := TypeScriptTypeData{
		ClassName:    className(schema.TableName),
		ClassComment: schema.TableComment,
		Fields:       make([]TypeScriptFieldData, 0, len(schema.Fields)),
	}
	for _, f := range schema.Fields {
		data.Fields = append(data.Fields, TypeScriptFieldData{
			Name:    f.FieldName,
			Type:    typescriptType(f.FieldType),
			Comment: f.Comment,
		})
	}
	return data
}

// TypeScriptType renders the interface declaration for a schema.
func TypeScriptType(r Renderer, schema model.TableSchema) (string, error) {
	return r.Render("typescriptType.tmpl", BuildTypeScriptTypeData(schema))
}
