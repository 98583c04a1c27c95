package lookup

// Lookup is one filter condition: a field path, an operator and a carried
// value. It is constructed by the fluent methods on Field and its typed
// wrappers, is immutable, and is consumed exactly once by the compiler.
// The model tag M keeps conditions for different models from being mixed
// in a single query's filter list.
type Lookup[M Model] struct {
	path []string
	typ  Type
	val  Value
}

// NewLookup builds a lookup directly from its parts. The field methods are
// the preferred construction path; this exists for metadata-driven callers
// (the schema layer) that have already validated their paths.
func NewLookup[M Model](path []string, t Type, v Value) Lookup[M] {
	p := make([]string, len(path))
	copy(p, path)
	return Lookup[M]{path: p, typ: t, val: v}
}

// Path returns a copy of the field path.
func (l Lookup[M]) Path() []string {
	path := make([]string, len(l.path))
	copy(path, l.path)
	return path
}

// Type returns the lookup operator.
func (l Lookup[M]) Type() Type { return l.typ }

// Value returns the carried value. For null tests the value is Null and is
// ignored by the compiler.
func (l Lookup[M]) Value() Value { return l.val }
