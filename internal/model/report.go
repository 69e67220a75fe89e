package model

import "time"

// GenerateReport aggregates every artifact produced by one generation run.
// A report is either fully populated or not returned at all; the orchestrator
// never hands back a partial report.
type GenerateReport struct {
	ID          string      `json:"id"`
	CreatedAt   time.Time   `json:"createdAt"`
	Schema      TableSchema `json:"tableSchema"`
	CreateSQL   string      `json:"createTableSql"`
	InsertSQL   []string    `json:"insertSql"`
	DataJSON    string      `json:"dataJson"`
	JavaEntity  string      `json:"javaEntityCode"`
	JavaObject  string      `json:"javaObjectCode"`
	TypeScript  string      `json:"typescriptTypeCode"`
	GoStruct    string      `json:"goStructCode"`
	OpenAPISpec string      `json:"openapiSpec"`
	Rows        []Row       `json:"rows"`
}
