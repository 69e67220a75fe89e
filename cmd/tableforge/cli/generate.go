package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tableforge/tableforge/internal/model"
)

func newGenerateCmd() *cobra.Command {
	var (
		schemaFile  string
		outputDir   string
		jsonOutput  bool
		dialectName string
		seed        int64
		rowCount    int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate all artifacts for a table schema",
		Long: `Generate runs the full pipeline for one schema: CREATE TABLE DDL, INSERT
statements with mock rows, JSON sample data, Java entity and object code,
a TypeScript interface, a Go struct, and an OpenAPI component schema.`,
		Example: `  tableforge generate -f user.yaml                # print artifacts to stdout
  tableforge generate -f user.yaml -d out/        # write one file per artifact
  tableforge generate -f user.yaml --json         # full report as JSON
  cat user.yaml | tableforge generate -f -        # read schema from stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(schemaFile)
			if err != nil {
				return err
			}
			if rowCount > 0 {
				schema.MockRowCount = rowCount
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			eng, err := newEngine(cfg, dialectName, seed)
			if err != nil {
				return err
			}

			report, err := eng.GenerateAll(cmd.Context(), schema)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			if outputDir != "" {
				return writeReportFiles(outputDir, report)
			}
			return printReport(cmd, report)
		},
	}

	cmd.Flags().StringVarP(&schemaFile, "file", "f", "", "schema file (YAML or JSON, - for stdin)")
	cmd.Flags().StringVarP(&outputDir, "dir", "d", "", "write one file per artifact into this directory")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full report as JSON")
	cmd.Flags().StringVar(&dialectName, "dialect", "", "SQL dialect (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible mock data")
	cmd.Flags().IntVar(&rowCount, "rows", 0, "mock row count (overrides schema)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func printReport(cmd *cobra.Command, report *model.GenerateReport) error {
	out := cmd.OutOrStdout()
	sections := []struct {
		title   string
		content string
	}{
		{"CREATE TABLE", report.CreateSQL},
		{"INSERT", joinLines(report.InsertSQL)},
		{"JSON data", report.DataJSON},
		{"Java entity", report.JavaEntity},
		{"Java objects", report.JavaObject},
		{"TypeScript", report.TypeScript},
		{"Go struct", report.GoStruct},
		{"OpenAPI", report.OpenAPISpec},
	}
	for _, s := range sections {
		fmt.Fprintf(out, "-- %s --\n%s\n\n", s.title, s.content)
	}
	return nil
}

func writeReportFiles(dir string, report *model.GenerateReport) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	files := map[string]string{
		"create_table.sql": report.CreateSQL,
		"insert.sql":       joinLines(report.InsertSQL),
		"data.json":        report.DataJSON,
		"Entity.java":      report.JavaEntity,
		"Objects.java":     report.JavaObject,
		"types.ts":         report.TypeScript,
		"model.go":         report.GoStruct,
		"openapi.json":     report.OpenAPISpec,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content+"\n"), 0644); err != nil {
			return err
		}
	}
	return nil
}

func joinLines(lines []string) string {
	out := ""
	for i, line := range lines {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}
