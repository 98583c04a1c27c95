package sqlgen

import (
	"fmt"
	"strings"

	"github.com/quillorm/quill/query/lookup"
)

// Postgres has native case-insensitive pattern operators: ILIKE for the
// I-pattern lookups and ~* for IRegex. IExact is equality, not pattern
// matching, so it is emulated with LOWER() on both sides like the other
// backends; riding ILIKE would let % and _ in the value act as wildcards.
type Postgres struct{}

func (Postgres) Name() string { return "postgresql" }

func (Postgres) Operator(t lookup.Type) string {
	switch t {
	case lookup.Exact, lookup.IExact:
		return "="
	case lookup.Ne:
		return "!="
	case lookup.Contains, lookup.StartsWith, lookup.EndsWith:
		return "LIKE"
	case lookup.IContains, lookup.IStartsWith, lookup.IEndsWith:
		return "ILIKE"
	case lookup.Regex:
		return "~"
	case lookup.IRegex:
		return "~*"
	case lookup.Gt:
		return ">"
	case lookup.Gte:
		return ">="
	case lookup.Lt:
		return "<"
	case lookup.Lte:
		return "<="
	case lookup.Between:
		return "BETWEEN"
	case lookup.In:
		return "IN"
	case lookup.NotIn:
		return "NOT IN"
	case lookup.IsNull:
		return "IS NULL"
	case lookup.IsNotNull:
		return "IS NOT NULL"
	}
	return "="
}

func (Postgres) EmulatesCaseInsensitive(t lookup.Type) bool { return t == lookup.IExact }

func (Postgres) Transform(name, expr string) string {
	switch name {
	case lookup.TransformYear, lookup.TransformMonth, lookup.TransformDay,
		lookup.TransformWeek, lookup.TransformQuarter, lookup.TransformHour,
		lookup.TransformMinute, lookup.TransformSecond:
		return fmt.Sprintf("EXTRACT(%s FROM %s)", strings.ToUpper(name), expr)
	case lookup.TransformWeekday:
		return fmt.Sprintf("EXTRACT(DOW FROM %s)", expr)
	case lookup.TransformDate:
		return fmt.Sprintf("CAST(%s AS DATE)", expr)
	default:
		return genericTransform(name, expr)
	}
}

func (Postgres) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }

func (Postgres) QuoteIdentifier(name string) string { return `"` + name + `"` }
