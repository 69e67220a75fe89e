package cli

import (
	"github.com/spf13/cobra"

	"github.com/tableforge/tableforge/internal/model"
)

func newFieldCmd() *cobra.Command {
	var (
		fieldType     string
		defaultValue  string
		notNull       bool
		comment       string
		primaryKey    bool
		autoIncrement bool
		onUpdate      string
		dialectName   string
	)

	cmd := &cobra.Command{
		Use:   "field <name>",
		Short: "Render the DDL fragment for a single field",
		Example: `  tableforge field id -t bigint --not-null --auto-increment --primary-key -c 'primary key'
  tableforge field name -t 'varchar(20)' --not-null`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			eng, err := newEngine(cfg, dialectName, 0)
			if err != nil {
				return err
			}
			fragment := eng.CreateFieldFragment(model.Field{
				FieldName:     args[0],
				FieldType:     fieldType,
				DefaultValue:  defaultValue,
				NotNull:       notNull,
				Comment:       comment,
				PrimaryKey:    primaryKey,
				AutoIncrement: autoIncrement,
				OnUpdate:      onUpdate,
			})
			return writeOutput(cmd.OutOrStdout(), "", fragment)
		},
	}

	cmd.Flags().StringVarP(&fieldType, "type", "t", "varchar(255)", "column type")
	cmd.Flags().StringVar(&defaultValue, "default", "", "default value")
	cmd.Flags().BoolVar(&notNull, "not-null", false, "mark the column NOT NULL")
	cmd.Flags().StringVarP(&comment, "comment", "c", "", "column comment")
	cmd.Flags().BoolVar(&primaryKey, "primary-key", false, "mark the column PRIMARY KEY")
	cmd.Flags().BoolVar(&autoIncrement, "auto-increment", false, "mark the column AUTO_INCREMENT")
	cmd.Flags().StringVar(&onUpdate, "on-update", "", "ON UPDATE expression")
	cmd.Flags().StringVar(&dialectName, "dialect", "", "SQL dialect (overrides config)")

	return cmd
}
