package sqlgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quillorm/quill/query/lookup"
)

// Query is a SQL statement with its bind arguments.
type Query struct {
	SQL  string
	Args []any
}

// OrderBy is one ORDER BY term.
type OrderBy struct {
	Field     string
	Direction string // "ASC" or "DESC"
}

// Select generates a parameterized SELECT. Filter conditions bind their
// values instead of inlining literals; the textual shape of each condition
// otherwise matches Compile.
func Select[M lookup.Model](d Dialect, table string, columns []string, where []lookup.Lookup[M], orderBy []OrderBy, limit, offset *int) (*Query, error) {
	var parts []string

	if len(columns) == 0 {
		parts = append(parts, "SELECT *")
	} else {
		quoted := make([]string, len(columns))
		for i, col := range columns {
			quoted[i] = d.QuoteIdentifier(col)
		}
		parts = append(parts, "SELECT "+strings.Join(quoted, ", "))
	}

	parts = append(parts, "FROM "+d.QuoteIdentifier(table))

	argIndex := 1
	whereSQL, args, err := Where(d, where, &argIndex)
	if err != nil {
		return nil, err
	}
	if whereSQL != "" {
		parts = append(parts, "WHERE "+whereSQL)
	}

	if len(orderBy) > 0 {
		terms := make([]string, len(orderBy))
		for i, ob := range orderBy {
			dir := "ASC"
			if strings.EqualFold(ob.Direction, "DESC") {
				dir = "DESC"
			}
			terms[i] = d.QuoteIdentifier(ob.Field) + " " + dir
		}
		parts = append(parts, "ORDER BY "+strings.Join(terms, ", "))
	}

	if limit != nil && *limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT %d", *limit))
	}
	if offset != nil && *offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET %d", *offset))
	}

	return &Query{SQL: strings.Join(parts, " "), Args: args}, nil
}

// Insert generates a parameterized INSERT. Postgres gets RETURNING * so
// callers can read generated keys back.
func Insert(d Dialect, table string, columns []string, values []any) *Query {
	var parts []string
	parts = append(parts, "INSERT INTO "+d.QuoteIdentifier(table))

	if len(columns) > 0 {
		quoted := make([]string, len(columns))
		for i, col := range columns {
			quoted[i] = d.QuoteIdentifier(col)
		}
		parts = append(parts, "("+strings.Join(quoted, ", ")+")")
	}

	args := make([]any, 0, len(values))
	if len(values) > 0 {
		placeholders := make([]string, len(values))
		for i, v := range values {
			placeholders[i] = d.Placeholder(i + 1)
			args = append(args, v)
		}
		parts = append(parts, "VALUES ("+strings.Join(placeholders, ", ")+")")
	}

	if d.Name() == "postgresql" {
		parts = append(parts, "RETURNING *")
	}

	return &Query{SQL: strings.Join(parts, " "), Args: args}
}

// Update generates a parameterized UPDATE. SET columns emit in sorted
// order so output is deterministic.
func Update[M lookup.Model](d Dialect, table string, set map[string]any, where []lookup.Lookup[M]) (*Query, error) {
	var parts []string
	var args []any
	argIndex := 1

	parts = append(parts, "UPDATE "+d.QuoteIdentifier(table))

	cols := make([]string, 0, len(set))
	for col := range set {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	assignments := make([]string, len(cols))
	for i, col := range cols {
		assignments[i] = d.QuoteIdentifier(col) + " = " + d.Placeholder(argIndex)
		args = append(args, set[col])
		argIndex++
	}
	parts = append(parts, "SET "+strings.Join(assignments, ", "))

	whereSQL, whereArgs, err := Where(d, where, &argIndex)
	if err != nil {
		return nil, err
	}
	if whereSQL != "" {
		parts = append(parts, "WHERE "+whereSQL)
		args = append(args, whereArgs...)
	}

	return &Query{SQL: strings.Join(parts, " "), Args: args}, nil
}

// Delete generates a parameterized DELETE.
func Delete[M lookup.Model](d Dialect, table string, where []lookup.Lookup[M]) (*Query, error) {
	var parts []string
	parts = append(parts, "DELETE FROM "+d.QuoteIdentifier(table))

	argIndex := 1
	whereSQL, args, err := Where(d, where, &argIndex)
	if err != nil {
		return nil, err
	}
	if whereSQL != "" {
		parts = append(parts, "WHERE "+whereSQL)
	}

	return &Query{SQL: strings.Join(parts, " "), Args: args}, nil
}

// Where renders lookups as one AND-joined parameterized clause,
// advancing *argIndex past the placeholders it consumes.
func Where[M lookup.Model](d Dialect, where []lookup.Lookup[M], argIndex *int) (string, []any, error) {
	if len(where) == 0 {
		return "", nil, nil
	}
	parts := make([]string, 0, len(where))
	var args []any
	for _, lk := range where {
		sql, condArgs, err := boundCondition(d, lk, argIndex)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		args = append(args, condArgs...)
	}
	return strings.Join(parts, " AND "), args, nil
}

// boundCondition is the bind-parameter twin of Compile: same field
// expression and operator selection, placeholders instead of literals.
func boundCondition[M lookup.Model](d Dialect, lk lookup.Lookup[M], argIndex *int) (string, []any, error) {
	expr := FieldExpr(d, lk.Path())
	t := lk.Type()
	if t.CaseInsensitive() && d.EmulatesCaseInsensitive(t) {
		expr = d.Transform(lookup.TransformLower, expr)
	}
	op := d.Operator(t)

	next := func() string {
		ph := d.Placeholder(*argIndex)
		*argIndex++
		return ph
	}

	switch {
	case t.Nullity():
		return expr + " " + op, nil, nil

	case t == lookup.Between:
		r, ok := lk.Value().(lookup.Range)
		if !ok {
			return "", nil, &ValueMismatchError{Type: t, Value: lk.Value(), Expected: "a Range"}
		}
		lo, err := argValue(t, r.Low)
		if err != nil {
			return "", nil, err
		}
		hi, err := argValue(t, r.High)
		if err != nil {
			return "", nil, err
		}
		sql := expr + " " + op + " " + next() + " AND " + next()
		return sql, []any{lo, hi}, nil

	case t == lookup.In || t == lookup.NotIn:
		values := []lookup.Value{lk.Value()}
		if arr, ok := lk.Value().(lookup.Array); ok {
			values = arr
		}
		placeholders := make([]string, len(values))
		args := make([]any, len(values))
		for i, v := range values {
			arg, err := argValue(t, v)
			if err != nil {
				return "", nil, err
			}
			placeholders[i] = next()
			args[i] = arg
		}
		return expr + " " + op + " (" + strings.Join(placeholders, ", ") + ")", args, nil

	default:
		arg, err := argValue(t, lk.Value())
		if err != nil {
			return "", nil, err
		}
		if s, ok := arg.(string); ok {
			if t.CaseInsensitive() && d.EmulatesCaseInsensitive(t) {
				s = strings.ToLower(s)
			}
			if t.Pattern() {
				s = wildcard(t, s)
			}
			arg = s
		}
		return expr + " " + op + " " + next(), []any{arg}, nil
	}
}

// argValue unwraps a tagged value into the form database/sql drivers bind.
func argValue(t lookup.Type, v lookup.Value) (any, error) {
	switch x := v.(type) {
	case lookup.String:
		return string(x), nil
	case lookup.Int:
		return int64(x), nil
	case lookup.Float:
		return float64(x), nil
	case lookup.Bool:
		return bool(x), nil
	case lookup.Null:
		return nil, nil
	default:
		return nil, &ValueMismatchError{Type: t, Value: v, Expected: "a scalar"}
	}
}
