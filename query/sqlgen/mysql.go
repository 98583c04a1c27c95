package sqlgen

import (
	"fmt"

	"github.com/quillorm/quill/query/lookup"
)

// MySQL uses LIKE with LOWER() emulation for the case-insensitive
// variants (collation-dependent behavior of bare LIKE is not relied on)
// and REGEXP for regex matches. Date parts use the native extraction
// functions.
type MySQL struct{}

func (MySQL) Name() string { return "mysql" }

func (MySQL) Operator(t lookup.Type) string {
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

func (MySQL) EmulatesCaseInsensitive(t lookup.Type) bool {
	return t.CaseInsensitive()
}

func (MySQL) Transform(name, expr string) string {
	switch name {
	case lookup.TransformDay:
		return fmt.Sprintf("DAYOFMONTH(%s)", expr)
	case lookup.TransformWeekday:
		return fmt.Sprintf("WEEKDAY(%s)", expr)
	case lookup.TransformWeek:
		return fmt.Sprintf("WEEK(%s)", expr)
	default:
		return genericTransform(name, expr)
	}
}

func (MySQL) Placeholder(n int) string { return "?" }

func (MySQL) QuoteIdentifier(name string) string { return "`" + name + "`" }
