package lookup

// Type identifies a lookup operator. The set is closed: the compiler
// switches exhaustively over it, so adding an operator is a single-point,
// compile-checked change across token selection, value rendering and
// fragment composition.
type Type int

const (
	// Equality family.
	Exact Type = iota
	IExact
	Ne

	// Pattern family.
	Contains
	IContains
	StartsWith
	IStartsWith
	EndsWith
	IEndsWith
	Regex
	IRegex

	// Ordering family.
	Gt
	Gte
	Lt
	Lte

	// Set family.
	Between
	In
	NotIn

	// Nullity family. The carried value is ignored.
	IsNull
	IsNotNull
)

var typeNames = map[Type]string{
	Exact:       "exact",
	IExact:      "iexact",
	Ne:          "ne",
	Contains:    "contains",
	IContains:   "icontains",
	StartsWith:  "startswith",
	IStartsWith: "istartswith",
	EndsWith:    "endswith",
	IEndsWith:   "iendswith",
	Regex:       "regex",
	IRegex:      "iregex",
	Gt:          "gt",
	Gte:         "gte",
	Lt:          "lt",
	Lte:         "lte",
	Between:     "range",
	In:          "in",
	NotIn:       "notin",
	IsNull:      "isnull",
	IsNotNull:   "isnotnull",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// CaseInsensitive reports whether t compares after lower-casing both
// operands (the I-prefixed variants).
func (t Type) CaseInsensitive() bool {
	switch t {
	case IExact, IContains, IStartsWith, IEndsWith, IRegex:
		return true
	}
	return false
}

// Pattern reports whether t matches through the dialect's pattern operator
// and therefore wildcard-wraps its value.
func (t Type) Pattern() bool {
	switch t {
	case Contains, IContains, StartsWith, IStartsWith, EndsWith, IEndsWith:
		return true
	}
	return false
}

// Nullity reports whether t is a null test that renders no value.
func (t Type) Nullity() bool {
	return t == IsNull || t == IsNotNull
}
