// Package sqlgen compiles lookup conditions into backend-specific SQL.
// The dialect differences (operator tokens, case-insensitive emulation,
// transform spelling, placeholder syntax) live behind the Dialect
// interface; the composition rules in compile.go are shared.
package sqlgen

import (
	"fmt"

	"github.com/quillorm/quill/query/lookup"
)

// Dialect is the per-backend capability surface of the compiler.
type Dialect interface {
	// Name returns the provider name ("sqlite", "postgresql", "mysql").
	Name() string

	// Operator returns the dialect's operator token for a lookup type.
	Operator(t lookup.Type) string

	// EmulatesCaseInsensitive reports whether the dialect has no native
	// case-insensitive form of t and needs both the field expression and
	// the literal lower-cased.
	EmulatesCaseInsensitive(t lookup.Type) bool

	// Transform renders one named transform as a function wrapper around
	// expr.
	Transform(name, expr string) string

	// Placeholder returns the bind-parameter marker for 1-based position n.
	Placeholder(n int) string

	// QuoteIdentifier quotes a table or column name.
	QuoteIdentifier(name string) string
}

// New returns the dialect for a provider name, defaulting to SQLite.
func New(provider string) Dialect {
	switch provider {
	case "postgresql", "postgres":
		return Postgres{}
	case "mysql":
		return MySQL{}
	default:
		return SQLite{}
	}
}

// ValueMismatchError reports a lookup whose carried value kind does not
// fit its operator, such as a range lookup without a Range value. These
// cannot be built through the typed field API; they surface only from
// hand-assembled lookups.
type ValueMismatchError struct {
	Type     lookup.Type
	Value    lookup.Value
	Expected string
}

func (e *ValueMismatchError) Error() string {
	return fmt.Sprintf("sqlgen: %s lookup requires %s value, got %T", e.Type, e.Expected, e.Value)
}
