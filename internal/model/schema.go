package model

// MockStrategy names the per-field algorithm used to synthesize example values.
type MockStrategy string

const (
	StrategyNone       MockStrategy = "none"
	StrategyFixed      MockStrategy = "fixed"
	StrategyIncrement  MockStrategy = "increment"
	StrategyRandom     MockStrategy = "random"
	StrategyRule       MockStrategy = "rule"
	StrategyDictionary MockStrategy = "dictionary"
)

// Normalize maps the zero value to StrategyNone so schemas built without an
// explicit strategy behave like "do not mock".
func (s MockStrategy) Normalize() MockStrategy {
	if s == "" {
		return StrategyNone
	}
	return s
}

// TableSchema is the canonical table description consumed by every generation
// step. It is constructed once per request and flows immutably through
// validation and generation.
type TableSchema struct {
	DBName       string  `json:"dbName,omitempty" yaml:"dbName,omitempty"`
	TableName    string  `json:"tableName" yaml:"tableName"`
	TableComment string  `json:"tableComment,omitempty" yaml:"tableComment,omitempty"`
	MockRowCount int     `json:"mockRowCount,omitempty" yaml:"mockRowCount,omitempty"`
	Fields       []Field `json:"fields" yaml:"fields"`
}

// Field describes a single column. FieldType is a dialect-level type token
// such as "bigint" or "varchar(255)".
type Field struct {
	FieldName     string       `json:"fieldName" yaml:"fieldName"`
	FieldType     string       `json:"fieldType" yaml:"fieldType"`
	DefaultValue  string       `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	NotNull       bool         `json:"notNull" yaml:"notNull"`
	Comment       string       `json:"comment,omitempty" yaml:"comment,omitempty"`
	PrimaryKey    bool         `json:"primaryKey" yaml:"primaryKey"`
	AutoIncrement bool         `json:"autoIncrement" yaml:"autoIncrement"`
	OnUpdate      string       `json:"onUpdate,omitempty" yaml:"onUpdate,omitempty"`
	MockStrategy  MockStrategy `json:"mockStrategy,omitempty" yaml:"mockStrategy,omitempty"`
	MockParams    string       `json:"mockParams,omitempty" yaml:"mockParams,omitempty"`
}

// FieldNames returns the field names in schema order.
func (s TableSchema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.FieldName
	}
	return names
}
