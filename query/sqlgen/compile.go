package sqlgen

import (
	"strconv"
	"strings"

	"github.com/quillorm/quill/internal/sqlstr"
	"github.com/quillorm/quill/query/lookup"
)

// Compile renders one lookup into a self-contained WHERE-clause fragment
// for the given dialect: no leading WHERE, no surrounding parentheses.
// It is a pure function; compiling the same lookup twice yields identical
// output. String literals embed with internal quotes doubled.
func Compile[M lookup.Model](d Dialect, lk lookup.Lookup[M]) (string, error) {
	expr := FieldExpr(d, lk.Path())
	t := lk.Type()

	// Emulating dialects lower-case the rendered field expression for the
	// I-variants. An explicit lower transform already in the path is not
	// special-cased away; double wrapping is harmless.
	if t.CaseInsensitive() && d.EmulatesCaseInsensitive(t) {
		expr = d.Transform(lookup.TransformLower, expr)
	}

	op := d.Operator(t)

	switch {
	case t.Nullity():
		return expr + " " + op, nil

	case t == lookup.Between:
		r, ok := lk.Value().(lookup.Range)
		if !ok {
			return "", &ValueMismatchError{Type: t, Value: lk.Value(), Expected: "a Range"}
		}
		lo, err := renderLiteral(d, t, r.Low)
		if err != nil {
			return "", err
		}
		hi, err := renderLiteral(d, t, r.High)
		if err != nil {
			return "", err
		}
		return expr + " " + op + " " + lo + " AND " + hi, nil

	case t == lookup.In || t == lookup.NotIn:
		var parts []string
		if arr, ok := lk.Value().(lookup.Array); ok {
			parts = make([]string, len(arr))
			for i, v := range arr {
				lit, err := renderLiteral(d, t, v)
				if err != nil {
					return "", err
				}
				parts[i] = lit
			}
		} else {
			lit, err := renderLiteral(d, t, lk.Value())
			if err != nil {
				return "", err
			}
			parts = []string{lit}
		}
		return expr + " " + op + " (" + strings.Join(parts, ", ") + ")", nil

	default:
		lit, err := renderLiteral(d, t, lk.Value())
		if err != nil {
			return "", err
		}
		return expr + " " + op + " " + lit, nil
	}
}

// FieldExpr renders a field path as a SQL expression. Segments that are
// not recognized transforms join with "." into the column reference;
// transform segments wrap it in path order, so the first transform in the
// path ends up innermost.
func FieldExpr(d Dialect, path []string) string {
	var columns []string
	var wraps []string
	for _, seg := range path {
		if lookup.IsTransform(seg) {
			wraps = append(wraps, seg)
		} else {
			columns = append(columns, seg)
		}
	}
	expr := strings.Join(columns, ".")
	for _, name := range wraps {
		expr = d.Transform(name, expr)
	}
	return expr
}

// renderLiteral renders one scalar value as an inline SQL literal, with
// the pattern wildcarding and case-insensitive lower-casing that the
// lookup type demands.
func renderLiteral(d Dialect, t lookup.Type, v lookup.Value) (string, error) {
	switch x := v.(type) {
	case lookup.String:
		s := string(x)
		if t.CaseInsensitive() && d.EmulatesCaseInsensitive(t) {
			s = strings.ToLower(s)
		}
		if t.Pattern() {
			s = wildcard(t, s)
		}
		return sqlstr.Quote(s), nil
	case lookup.Int:
		return strconv.FormatInt(int64(x), 10), nil
	case lookup.Float:
		return strconv.FormatFloat(float64(x), 'g', -1, 64), nil
	case lookup.Bool:
		if x {
			return "TRUE", nil
		}
		return "FALSE", nil
	case lookup.Null:
		return "NULL", nil
	default:
		// Array and Range are only meaningful in their operator-specific
		// positions, which Compile handles before reaching here.
		return "", &ValueMismatchError{Type: t, Value: v, Expected: "a scalar"}
	}
}

// wildcard wraps a pattern-lookup literal in % anchors: both sides for
// contains, trailing for startswith, leading for endswith.
func wildcard(t lookup.Type, s string) string {
	switch t {
	case lookup.Contains, lookup.IContains:
		return "%" + s + "%"
	case lookup.StartsWith, lookup.IStartsWith:
		return s + "%"
	case lookup.EndsWith, lookup.IEndsWith:
		return "%" + s
	}
	return s
}

// genericTransform is the fallback rendering shared by the dialects: the
// transform name upper-cased as a function call.
func genericTransform(name, expr string) string {
	return strings.ToUpper(name) + "(" + expr + ")"
}
