// Package builder assembles complete SELECT statements from the fragments
// the rest of the engine produces: compiled WHERE conditions from
// query/sqlgen and join triples from lookup.TypedJoin. It performs no
// escaping of its own; fragments arrive already rendered.
package builder

import (
	"fmt"
	"strings"

	"github.com/quillorm/quill/query/lookup"
)

// JoinClause is one rendered join: the table joined in, the join kind and
// the ON condition text.
type JoinClause struct {
	Table     string
	Kind      lookup.JoinKind
	Condition string
}

// SelectBuilder accumulates the pieces of a SELECT statement.
type SelectBuilder struct {
	table   string
	columns []string
	joins   []JoinClause
	where   []string
	orderBy []string
	limit   int
	offset  int
}

// NewSelect starts a builder over the given table.
func NewSelect(table string) *SelectBuilder {
	return &SelectBuilder{table: table}
}

// Columns sets the projected columns; without it the statement selects *.
func (b *SelectBuilder) Columns(cols ...string) *SelectBuilder {
	b.columns = append(b.columns, cols...)
	return b
}

// Where appends one compiled condition fragment. Fragments join with AND.
func (b *SelectBuilder) Where(fragment string) *SelectBuilder {
	if fragment != "" {
		b.where = append(b.where, fragment)
	}
	return b
}

// Join appends a join clause from its rendered parts.
func (b *SelectBuilder) Join(table string, kind lookup.JoinKind, condition string) *SelectBuilder {
	b.joins = append(b.joins, JoinClause{Table: table, Kind: kind, Condition: condition})
	return b
}

// OrderBy appends one ordering term.
func (b *SelectBuilder) OrderBy(field, direction string) *SelectBuilder {
	dir := "ASC"
	if strings.EqualFold(direction, "DESC") {
		dir = "DESC"
	}
	b.orderBy = append(b.orderBy, field+" "+dir)
	return b
}

// Limit caps the result count. Zero or negative means no limit.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = n
	return b
}

// Offset skips leading rows. Zero or negative means no offset.
func (b *SelectBuilder) Offset(n int) *SelectBuilder {
	b.offset = n
	return b
}

// Build renders the statement.
func (b *SelectBuilder) Build() string {
	var parts []string

	if len(b.columns) == 0 {
		parts = append(parts, "SELECT *")
	} else {
		parts = append(parts, "SELECT "+strings.Join(b.columns, ", "))
	}
	parts = append(parts, "FROM "+b.table)

	for _, j := range b.joins {
		clause := fmt.Sprintf("%s JOIN %s", j.Kind, j.Table)
		if j.Condition != "" {
			clause += " ON " + j.Condition
		}
		parts = append(parts, clause)
	}

	if len(b.where) > 0 {
		parts = append(parts, "WHERE "+strings.Join(b.where, " AND "))
	}
	if len(b.orderBy) > 0 {
		parts = append(parts, "ORDER BY "+strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT %d", b.limit))
	}
	if b.offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET %d", b.offset))
	}

	return strings.Join(parts, " ")
}

// JoinTyped appends a typed join's rendered triple to the builder. A free
// function because it is generic over the join's model tags.
func JoinTyped[L, R lookup.Model](b *SelectBuilder, j lookup.TypedJoin[L, R]) *SelectBuilder {
	table, kind, condition := j.ToSQL()
	return b.Join(table, kind, condition)
}
