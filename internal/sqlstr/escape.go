// Package sqlstr provides the string-literal escaping primitives shared by
// the lookup compiler and the composite-key renderer. Doubling embedded
// single quotes is the only transformation applied; callers that can use
// bind parameters should prefer them over quoted literals.
package sqlstr

import "strings"

// Escape doubles every single quote in s.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Quote escapes s and wraps it in single quotes, yielding a SQL string
// literal.
func Quote(s string) string {
	return "'" + Escape(s) + "'"
}
