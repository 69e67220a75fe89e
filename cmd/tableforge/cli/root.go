// Package cli implements the tableforge command tree.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// Execute creates the root command tree and runs it.
func Execute(version, commit, date string) error {
	rootCmd := newRootCmd(version, commit, date)
	return rootCmd.Execute()
}

func newRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tableforge",
		Short: "Generate DDL, mock data, and typed code from table schemas",
		Long: `Tableforge turns a table schema into everything that hangs off it: CREATE TABLE
DDL, INSERT statements with synthesized mock rows, JSON sample data, Java and
TypeScript types, Go structs, and an OpenAPI component schema.

Schemas can be written by hand, parsed from existing CREATE TABLE statements,
imported from spreadsheet exports, or sketched from a comma-separated list of
field labels.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tableforge.yaml)")

	cobra.OnInitialize(initConfig)

	// Add subcommands
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newFieldCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd(version, commit, date))

	return cmd
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tableforge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.tableforge")
	}

	viper.SetEnvPrefix("TABLEFORGE")
	viper.AutomaticEnv()
	viper.ReadInConfig() // Ignore error - config file is optional
}
