// Package schema holds the model metadata the query engine consumes:
// table and column descriptions, composite primary keys, and the DDL
// fragments derived from them.
package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyFields is returned when a composite key is declared with no
// fields.
var ErrEmptyFields = errors.New("schema: composite primary key requires at least one field")

// DuplicateFieldError reports the first repeated field name in a composite
// key declaration.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("schema: duplicate field %q in composite primary key", e.Field)
}

// MissingFieldError reports the first declared key field absent from a
// supplied value map.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("schema: missing value for primary key field %q", e.Field)
}

// InvalidFieldTypeError reports a key value of a type the key cannot
// render.
type InvalidFieldTypeError struct {
	Field    string
	Expected string
}

func (e *InvalidFieldTypeError) Error() string {
	return fmt.Sprintf("schema: invalid type for primary key field %q, expected %s", e.Field, e.Expected)
}

// CompositePrimaryKey is an ordered multi-column key. Field order is the
// declaration order; duplicates are rejected at construction. Immutable
// once built.
type CompositePrimaryKey struct {
	fields []string
	name   string
}

// NewCompositePrimaryKey builds a key over the given fields, preserving
// first-occurrence order. It returns ErrEmptyFields for an empty list and
// a *DuplicateFieldError naming the first repeated field.
func NewCompositePrimaryKey(fields []string) (*CompositePrimaryKey, error) {
	return NewNamedCompositePrimaryKey(fields, "")
}

// NewNamedCompositePrimaryKey is NewCompositePrimaryKey with a named
// constraint.
func NewNamedCompositePrimaryKey(fields []string, name string) (*CompositePrimaryKey, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyFields
	}
	seen := make(map[string]bool, len(fields))
	ordered := make([]string, 0, len(fields))
	for _, f := range fields {
		if seen[f] {
			return nil, &DuplicateFieldError{Field: f}
		}
		seen[f] = true
		ordered = append(ordered, f)
	}
	return &CompositePrimaryKey{fields: ordered, name: name}, nil
}

// Fields returns a copy of the key's field names in declaration order.
func (k *CompositePrimaryKey) Fields() []string {
	fields := make([]string, len(k.fields))
	copy(fields, k.fields)
	return fields
}

// Name returns the constraint name, or "" for an unnamed key.
func (k *CompositePrimaryKey) Name() string { return k.name }

// ToSQL renders the key as a table-constraint clause:
// "PRIMARY KEY (f1, f2)" or "CONSTRAINT name PRIMARY KEY (f1, f2)".
func (k *CompositePrimaryKey) ToSQL() string {
	clause := "PRIMARY KEY (" + strings.Join(k.fields, ", ") + ")"
	if k.name != "" {
		return "CONSTRAINT " + k.name + " " + clause
	}
	return clause
}

// Validate checks that every declared field has a value, returning a
// *MissingFieldError for the first absent one in declaration order.
func (k *CompositePrimaryKey) Validate(values map[string]PKValue) error {
	for _, f := range k.fields {
		if _, ok := values[f]; !ok {
			return &MissingFieldError{Field: f}
		}
	}
	return nil
}

// ToWhereClause validates the value map and renders an AND-joined equality
// clause in declared field order, each value escaped as a SQL literal.
func (k *CompositePrimaryKey) ToWhereClause(values map[string]PKValue) (string, error) {
	if err := k.Validate(values); err != nil {
		return "", err
	}
	parts := make([]string, len(k.fields))
	for i, f := range k.fields {
		parts[i] = f + " = " + values[f].SQLLiteral()
	}
	return strings.Join(parts, " AND "), nil
}
