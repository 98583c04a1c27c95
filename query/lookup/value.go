// Package lookup defines the typed filter-condition model: field paths
// tagged with their owning model and SQL value type, the closed set of
// lookup operators, and the tagged values they carry. Everything in this
// package is an immutable value type; compilation to SQL lives in
// query/sqlgen.
package lookup

import (
	"reflect"
	"time"
)

// Value is a sealed interface over the kinds of literal a lookup can carry.
// Only String, Int, Float, Bool, Array, Range and Null implement it.
type Value interface {
	lookupValue()
}

// String is a string literal value.
type String string

func (String) lookupValue() {}

// Int is an integer literal value. Always int64.
type Int int64

func (Int) lookupValue() {}

// Float is a floating-point literal value.
type Float float64

func (Float) lookupValue() {}

// Bool is a boolean literal value.
type Bool bool

func (Bool) lookupValue() {}

// Array is an ordered list of values. Only valid with In and NotIn.
type Array []Value

func (Array) lookupValue() {}

// Range is a pair of bounds. Only valid with the Between lookup type.
type Range struct {
	Low  Value
	High Value
}

func (Range) lookupValue() {}

// Null is the SQL NULL value.
type Null struct{}

func (Null) lookupValue() {}

// valueOf maps a scalar carried by a typed field method to its tagged
// Value form. The Scalar constraint admits defined types through its ~
// terms, and those carry a dynamic type the exact switch cannot name, so
// anything it misses falls through to a kind dispatch on the underlying
// type.
func valueOf(v any) Value {
	switch x := v.(type) {
	case string:
		return String(x)
	case int:
		return Int(x)
	case int32:
		return Int(x)
	case int64:
		return Int(x)
	case uint:
		return Int(x)
	case uint32:
		return Int(x)
	case uint64:
		return Int(x)
	case float32:
		return Float(x)
	case float64:
		return Float(x)
	case bool:
		return Bool(x)
	case time.Time:
		return String(x.Format("2006-01-02 15:04:05"))
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.String:
		return String(rv.String())
	case reflect.Int, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint32, reflect.Uint64:
		return Int(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Bool:
		return Bool(rv.Bool())
	}
	return Null{}
}
