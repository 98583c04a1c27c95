package sqlgen

import (
	"fmt"

	"github.com/quillorm/quill/query/lookup"
)

// SQLite is the default dialect. It has no native case-insensitive
// operator, so the I-variants compare LOWER(field) against a lower-cased
// literal. Regex lookups use the REGEXP operator, which SQLite resolves
// through a loadable or driver-registered function.
type SQLite struct{}

func (SQLite) Name() string { return "sqlite" }

func (SQLite) Operator(t lookup.Type) string {
	switch t {
	case lookup.Exact, lookup.IExact:
		return "="
	case lookup.Ne:
		return "!="
	case lookup.Contains, lookup.IContains,
		lookup.StartsWith, lookup.IStartsWith,
		lookup.EndsWith, lookup.IEndsWith:
		return "LIKE"
	case lookup.Regex, lookup.IRegex:
		return "REGEXP"
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

func (SQLite) EmulatesCaseInsensitive(t lookup.Type) bool {
	return t.CaseInsensitive()
}

func (SQLite) Transform(name, expr string) string {
	switch name {
	case lookup.TransformYear:
		return sqliteDatePart("%Y", expr)
	case lookup.TransformMonth:
		return sqliteDatePart("%m", expr)
	case lookup.TransformDay:
		return sqliteDatePart("%d", expr)
	case lookup.TransformWeek:
		return sqliteDatePart("%W", expr)
	case lookup.TransformWeekday:
		return sqliteDatePart("%w", expr)
	case lookup.TransformHour:
		return sqliteDatePart("%H", expr)
	case lookup.TransformMinute:
		return sqliteDatePart("%M", expr)
	case lookup.TransformSecond:
		return sqliteDatePart("%S", expr)
	case lookup.TransformQuarter:
		return fmt.Sprintf("((%s + 2) / 3)", sqliteDatePart("%m", expr))
	case lookup.TransformDate:
		return fmt.Sprintf("DATE(%s)", expr)
	default:
		return genericTransform(name, expr)
	}
}

func sqliteDatePart(format, expr string) string {
	return fmt.Sprintf("CAST(STRFTIME('%s', %s) AS INTEGER)", format, expr)
}

func (SQLite) Placeholder(n int) string { return "?" }

func (SQLite) QuoteIdentifier(name string) string { return `"` + name + `"` }
