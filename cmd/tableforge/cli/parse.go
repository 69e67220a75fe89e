package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Build a schema from SQL DDL, a spreadsheet, or field labels",
		Long: `Parse converts an external table description into a tableforge schema,
printed as YAML. The result can be edited and fed to "tableforge generate".`,
	}

	cmd.AddCommand(newParseSQLCmd())
	cmd.AddCommand(newParseSheetCmd())
	cmd.AddCommand(newParseLabelsCmd())

	return cmd
}

func newParseSQLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sql <file>",
		Short: "Parse a CREATE TABLE statement",
		Example: `  tableforge parse sql schema.sql
  tableforge parse sql schema.sql > user.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ddl, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read DDL file: %w", err)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			eng, err := newEngine(cfg, "", 0)
			if err != nil {
				return err
			}
			schema, err := eng.SchemaFromSQL(string(ddl))
			if err != nil {
				return err
			}
			return printSchema(cmd.OutOrStdout(), schema)
		},
	}
	return cmd
}

func newParseSheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sheet <file>",
		Short:   "Parse a spreadsheet CSV export",
		Example: `  tableforge parse sheet fields.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open spreadsheet: %w", err)
			}
			defer f.Close()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			eng, err := newEngine(cfg, "", 0)
			if err != nil {
				return err
			}
			schema, err := eng.SchemaFromSpreadsheet(f)
			if err != nil {
				return err
			}
			return printSchema(cmd.OutOrStdout(), schema)
		},
	}
	return cmd
}

func newParseLabelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels <label>...",
		Short: "Sketch a schema from field labels",
		Long: `Labels builds a schema from a comma-separated list of field labels. Labels
found in the configured catalog use the stored field definition; unknown
labels become plain text fields.`,
		Example: `  tableforge parse labels "城市,邮箱,备注"
  tableforge parse labels name city email`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			eng, err := newEngine(cfg, "", 0)
			if err != nil {
				return err
			}
			schema, err := eng.SchemaFromLabels(cmd.Context(), strings.Join(args, ","))
			if err != nil {
				return err
			}
			return printSchema(cmd.OutOrStdout(), schema)
		},
	}
	return cmd
}
