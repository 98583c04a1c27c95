package schema

import (
	"strconv"

	"github.com/quillorm/quill/internal/sqlstr"
)

// PKValue is a sealed tagged scalar with one responsibility: rendering
// itself as an escaped SQL literal. Only PKString, PKInt, PKUint and
// PKBool implement it.
type PKValue interface {
	SQLLiteral() string
	pkValue()
}

// PKString renders single-quoted with internal quotes doubled.
type PKString string

func (PKString) pkValue() {}

func (v PKString) SQLLiteral() string { return sqlstr.Quote(string(v)) }

// PKInt renders as a bare base-10 integer.
type PKInt int64

func (PKInt) pkValue() {}

func (v PKInt) SQLLiteral() string { return strconv.FormatInt(int64(v), 10) }

// PKUint renders as a bare base-10 unsigned integer.
type PKUint uint64

func (PKUint) pkValue() {}

func (v PKUint) SQLLiteral() string { return strconv.FormatUint(uint64(v), 10) }

// PKBool renders as TRUE or FALSE.
type PKBool bool

func (PKBool) pkValue() {}

func (v PKBool) SQLLiteral() string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// NewPKValue converts a dynamically typed key value into its tagged form.
// Callers holding record values as map[string]any (the runtime client's
// primary-key path) go through here; unsupported types surface as
// *InvalidFieldTypeError.
func NewPKValue(field string, v any) (PKValue, error) {
	switch x := v.(type) {
	case string:
		return PKString(x), nil
	case int:
		return PKInt(x), nil
	case int32:
		return PKInt(x), nil
	case int64:
		return PKInt(x), nil
	case uint:
		return PKUint(x), nil
	case uint32:
		return PKUint(x), nil
	case uint64:
		return PKUint(x), nil
	case bool:
		return PKBool(x), nil
	default:
		return nil, &InvalidFieldTypeError{Field: field, Expected: "string, integer or bool"}
	}
}
