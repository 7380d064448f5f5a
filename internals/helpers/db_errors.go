// file: internals/helpers/db_errors.go
package helper

import "strings"

// IsUniqueViolation spots unique-index violations surfaced by the driver.
// String fallback keeps it compatible with wrapped pgx errors.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}
