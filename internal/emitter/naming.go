package emitter

import (
	"fmt"

	"github.com/go-openapi/inflect"
)

// className converts a snake_case table name into capitalized-word form,
// e.g. "user_info" -> "UserInfo".
func className(tableName string) string {
	return inflect.Camelize(tableName)
}

// objectName names the i-th (1-based) example object, e.g. "userInfo1".
func objectName(tableName string, i int) string {
	return fmt.Sprintf("%s%d", inflect.CamelizeDownFirst(tableName), i)
}

// setterName builds the Java setter for a field, e.g. "user_name" -> "setUserName".
func setterName(fieldName string) string {
	return "set" + inflect.Camelize(fieldName)
}

// goFieldName converts a column name to an exported Go identifier.
func goFieldName(fieldName string) string {
	return inflect.Camelize(fieldName)
}
