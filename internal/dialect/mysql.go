package dialect

import "strings"

// MySQL implements backtick identifier quoting.
type MySQL struct{}

// Name returns the registry key for the MySQL dialect.
func (MySQL) Name() string { return "mysql" }

// QuoteIdentifier wraps a SQL identifier in backticks, escaping any
// embedded backticks.
func (MySQL) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
